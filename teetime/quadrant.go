/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

// CalculateQuadrantLimits returns the index that splits a single tee roster
// of totalPlayers into its lower block [0, limit) and its upper block
// [limit, totalPlayers).
func CalculateQuadrantLimits(totalPlayers, flightSize int) int {
	if totalPlayers <= 0 || flightSize <= 0 {
		return 0
	}
	upperFlights := ceilDiv(totalPlayers, 2*flightSize)
	lowerFlights := ceilDiv(totalPlayers, flightSize) - upperFlights

	return flightSize * lowerFlights
}

// Limits are the boundaries of a double tee start.
//
// Limit1 splits the women between the left and the right tee. Limit2 ends
// the men's lower block and Limit3 splits the men's upper block between the
// left and the right tee.
type Limits struct {
	FlightSize       int `json:"flight_size"`
	LowerFlights     int `json:"lower_flights"`
	LeftFlightsMen   int `json:"left_flights_men"`
	LeftFlightsWomen int `json:"left_flights_women"`
	Limit1           int `json:"limit1"`
	Limit2           int `json:"limit2"`
	Limit3           int `json:"limit3"`
}

// CalculateQuadrantLimitsNT computes the double tee limits for a 36 hole
// competition.
func CalculateQuadrantLimitsNT(menCount, womenCount, flightSize int) Limits {
	totalFlights := ceilDiv(menCount, flightSize) +
		ceilDiv(womenCount, flightSize)

	return buildLimits(menCount, womenCount, flightSize,
		calculateLowerFlights(totalFlights))
}

// CalculateQuadrantLimitsNT54 computes the double tee limits for a 54 hole
// competition, where the parity of the lower block also depends on how the
// field divides into pairs of flights.
func CalculateQuadrantLimitsNT54(menCount, womenCount, flightSize int) Limits {
	totalFlights := ceilDiv(menCount, flightSize) +
		ceilDiv(womenCount, flightSize)

	return buildLimits(menCount, womenCount, flightSize,
		calculateLowerFlightsAdjusted(totalFlights, menCount+womenCount,
			flightSize))
}

func limitsFor(cfg Config) Limits {
	if cfg.Format == Holes54 {
		return CalculateQuadrantLimitsNT54(cfg.MenCount, cfg.WomenCount,
			cfg.FlightSize)
	}
	return CalculateQuadrantLimitsNT(cfg.MenCount, cfg.WomenCount,
		cfg.FlightSize)
}

func buildLimits(menCount, womenCount, flightSize, lowerFlights int) Limits {
	if flightSize <= 0 {
		return Limits{}
	}
	total := menCount + womenCount

	upperFlightsMen := max(0, ceilDiv(menCount, flightSize)-lowerFlights)
	leftFlightsMen := ceilDiv(upperFlightsMen, 2)
	leftFlightsWomen := ceilDiv(ceilDiv(womenCount, flightSize), 2)

	l := Limits{
		FlightSize:       flightSize,
		LowerFlights:     lowerFlights,
		LeftFlightsMen:   leftFlightsMen,
		LeftFlightsWomen: leftFlightsWomen,
	}
	l.Limit1 = min(flightSize*leftFlightsWomen, total)
	l.Limit2 = min(flightSize*lowerFlights, total)
	l.Limit3 = min(l.Limit2+flightSize*leftFlightsMen, total)

	return l
}

// calculateLowerFlights is half of the flights, rounded up to an even number
// so the lower block divides evenly between the two tees.
func calculateLowerFlights(totalFlights int) int {
	lower := ceilDiv(totalFlights, 2)
	if lower%2 != 0 {
		lower++
	}
	return lower
}

// calculateLowerFlightsAdjusted evens out an odd lower block by looking at
// how many players are left over once the field is cut into spans of
// 2*flightSize (threesomes) or 4*flightSize (foursomes): an exact fit gives a
// flight back to the upper block, anything else takes one more.
func calculateLowerFlightsAdjusted(totalFlights, playerCount,
	flightSize int) int {

	lower := ceilDiv(totalFlights, 2)
	if lower%2 == 0 {
		return lower
	}

	span := 2 * flightSize
	if flightSize == 4 {
		span = 4 * flightSize
	}
	if playerCount%span == 0 {
		return lower - 1
	}
	return lower + 1
}

// Quadrants are the six sub-groups of a double tee start.
type Quadrants struct {
	WomenLeft     []string
	WomenRight    []string
	MenLowerLeft  []string
	MenLowerRight []string
	MenUpperLeft  []string
	MenUpperRight []string
}

// Split cuts the roster along the limits. The men of the lower block are
// shared between the tees by the flights they actually fill, the left tee
// taking the odd one.
func (l Limits) Split(r Roster) Quadrants {
	lowerMen := min(max(l.Limit2, 0), len(r.Men))
	lowerMid := l.FlightSize * ceilDiv(ceilDiv(lowerMen, l.FlightSize), 2)

	return Quadrants{
		WomenLeft:     span(r.Women, 0, l.Limit1),
		WomenRight:    span(r.Women, l.Limit1, len(r.Women)),
		MenLowerLeft:  span(r.Men, 0, lowerMid),
		MenLowerRight: span(r.Men, lowerMid, l.Limit2),
		MenUpperLeft:  span(r.Men, l.Limit2, l.Limit3),
		MenUpperRight: span(r.Men, l.Limit3, len(r.Men)),
	}
}

// span is s[from:to] with both bounds clamped to the slice.
func span(s []string, from, to int) []string {
	from = min(max(from, 0), len(s))
	to = min(max(to, from), len(s))
	return s[from:to:to]
}

func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
