/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

// Flight is one starting group. An empty string is an empty slot.
type Flight []string

// Players returns the non-empty slots in order.
func (f Flight) Players() []string {
	out := make([]string, 0, len(f))
	for _, p := range f {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Partition slices items into flights of flightSize. When the count is not a
// multiple of flightSize the missing slots are filled with empty placeholders:
// PadTrailing puts them all in the last flight, PadLeading puts one at the end
// of each of the first flights.
func Partition(items []string, flightSize int, pad PadDirection) []Flight {
	if flightSize <= 0 || len(items) == 0 {
		return nil
	}

	slots := append([]string(nil), items...)
	if rem := len(items) % flightSize; rem != 0 {
		emptySlots := flightSize - rem
		if pad == PadLeading {
			for k := 0; k < emptySlots; k++ {
				slots = insertAt(slots, k*flightSize+flightSize-1, "")
			}
		} else {
			for k := 0; k < emptySlots; k++ {
				slots = append(slots, "")
			}
		}
	}

	flights := make([]Flight, 0, len(slots)/flightSize)
	for i := 0; i < len(slots); i += flightSize {
		flights = append(flights, Flight(slots[i:i+flightSize:i+flightSize]))
	}

	return flights
}

// insertAt inserts v before index i; an index past the end appends.
func insertAt(s []string, i int, v string) []string {
	if i >= len(s) {
		return append(s, v)
	}
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
