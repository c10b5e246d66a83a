/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"strconv"
)

// Roster holds the two ordered name sequences. Index order is seeding order
// and is preserved through partitioning.
type Roster struct {
	Men   []string `json:"men"`
	Women []string `json:"women"`
}

// PlaceholderRoster numbers each category from 1.
func PlaceholderRoster(menCount, womenCount int) Roster {
	return Roster{
		Men:   placeholders(menCount),
		Women: placeholders(womenCount),
	}
}

// Fits reports whether the roster carries exactly the configured counts.
func (r Roster) Fits(menCount, womenCount int) bool {
	return len(r.Men) == menCount && len(r.Women) == womenCount
}

// Fit returns a roster with exactly menCount men and womenCount women.
// Missing entries become placeholder numbers, extra entries are dropped.
func (r Roster) Fit(menCount, womenCount int) Roster {
	return Roster{
		Men:   fitNames(r.Men, menCount),
		Women: fitNames(r.Women, womenCount),
	}
}

func fitNames(names []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(names) {
			out[i] = names[i]
		} else {
			out[i] = strconv.Itoa(i + 1)
		}
	}
	return out
}

func placeholders(n int) []string {
	return fitNames(nil, n)
}

// forConfig returns the roster the renderer works on.
func (r Roster) forConfig(cfg Config) Roster {
	if cfg.Display == DisplayNumbered {
		return PlaceholderRoster(cfg.MenCount, cfg.WomenCount)
	}
	return r.Fit(cfg.MenCount, cfg.WomenCount)
}
