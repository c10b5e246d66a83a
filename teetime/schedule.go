/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

type Tee int

const (
	Tee1  Tee = 1
	Tee10 Tee = 10
)

// Quadrant names the sub-group a flight was drawn from. It only drives
// presentation (row tinting).
type Quadrant string

const (
	QuadrantMenLower   Quadrant = "men-lower"
	QuadrantMenUpper   Quadrant = "men-upper"
	QuadrantWomen      Quadrant = "women"
	QuadrantWomenLower Quadrant = "women-lower"
	QuadrantWomenUpper Quadrant = "women-upper"
	QuadrantMen        Quadrant = "men"
)

type ScheduleRow struct {
	FlightNumber int      `json:"flight"`
	Tee          Tee      `json:"tee"`
	Players      Flight   `json:"players"`
	Time         Clock    `json:"time"`
	Quadrant     Quadrant `json:"quadrant"`
}

type LineKind string

const (
	LineFlight    LineKind = "flight"
	LineSeparator LineKind = "separator"
)

// Line is one row of the rendered table. On a double tee both sides share
// the same start time; a side is nil when its tee has no flight left in the
// block.
type Line struct {
	Kind  LineKind     `json:"kind"`
	Block int          `json:"block"`
	Left  *ScheduleRow `json:"left,omitempty"`
	Right *ScheduleRow `json:"right,omitempty"`
}

// Time is the start time shared by both sides of the line.
func (l Line) Time() (Clock, bool) {
	if l.Left != nil {
		return l.Left.Time, true
	}
	if l.Right != nil {
		return l.Right.Time, true
	}
	return 0, false
}

type Schedule struct {
	Config       Config `json:"config"`
	Lines        []Line `json:"lines"`
	CrossingTime Clock  `json:"crossing_time"`
}

// Rows returns every flight of the schedule at the given tee in call order.
func (s *Schedule) Rows(tee Tee) []ScheduleRow {
	var out []ScheduleRow
	for _, l := range s.Lines {
		for _, r := range []*ScheduleRow{l.Left, l.Right} {
			if r != nil && r.Tee == tee {
				out = append(out, *r)
			}
		}
	}
	return out
}

// FlightCount is the number of flights over both tees.
func (s *Schedule) FlightCount() int {
	return len(s.Rows(Tee1)) + len(s.Rows(Tee10))
}
