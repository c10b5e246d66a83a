/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"slices"
)

// Compute validates cfg and lays out the start list for roster. It is a pure
// function of its inputs.
func Compute(cfg Config, roster Roster) (*Schedule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rd := &renderer{cfg: cfg, cursor: cfg.StartTime}
	r := roster.forConfig(cfg)
	if cfg.Layout == LayoutDouble {
		rd.double(r)
	} else {
		rd.single(r)
	}

	return &Schedule{
		Config:       cfg,
		Lines:        rd.lines,
		CrossingTime: rd.crossingTime(),
	}, nil
}

type taggedFlight struct {
	quadrant Quadrant
	flight   Flight
}

// block is a numbering unit: left flights are numbered from 1, right flights
// continue after the last left one.
type block struct {
	left  []taggedFlight
	right []taggedFlight
}

func (b block) empty() bool {
	return len(b.left) == 0 && len(b.right) == 0
}

type renderer struct {
	cfg    Config
	cursor Clock
	block  int
	lines  []Line

	lastTime  Clock
	haveLast  bool
	crossBase Clock
	haveCross bool
}

func (rd *renderer) partition(names []string, q Quadrant) []taggedFlight {
	flights := Partition(names, rd.cfg.FlightSize, rd.cfg.Padding)
	out := make([]taggedFlight, len(flights))
	for i, f := range flights {
		out[i] = taggedFlight{quadrant: q, flight: f}
	}
	return out
}

// next hands out the current start time and moves the cursor on by one gap.
func (rd *renderer) next() Clock {
	t := rd.cursor
	rd.cursor = AddTime(rd.cursor, rd.cfg.Gap)
	rd.lastTime = t
	rd.haveLast = true
	return t
}

// single lays everything out on tee 1 in one time block. The primary
// category is split in two around the secondary one; round 2 runs the groups
// in reverse so the last group out in round 1 goes first.
func (rd *renderer) single(r Roster) {
	primary, secondary := r.Men, r.Women
	lowerQ, secondQ, upperQ := QuadrantMenLower, QuadrantWomen, QuadrantMenUpper
	if rd.cfg.Symmetry == Asymmetric {
		primary, secondary = r.Women, r.Men
		lowerQ, secondQ, upperQ = QuadrantWomenLower, QuadrantMen,
			QuadrantWomenUpper
	}

	limit := CalculateQuadrantLimits(len(primary), rd.cfg.FlightSize)
	groups := [][]taggedFlight{
		rd.partition(span(primary, 0, limit), lowerQ),
		rd.partition(secondary, secondQ),
		rd.partition(span(primary, limit, len(primary)), upperQ),
	}
	if rd.cfg.Round == RoundSecond {
		slices.Reverse(groups)
	}

	number := 1
	for _, g := range groups {
		for _, tf := range g {
			rd.lines = append(rd.lines, Line{
				Kind:  LineFlight,
				Block: rd.block,
				Left: &ScheduleRow{
					FlightNumber: number,
					Tee:          Tee1,
					Players:      tf.flight,
					Time:         rd.next(),
					Quadrant:     tf.quadrant,
				},
			})
			number++
		}
	}
}

// double lays the field out on tees 1 and 10 in two time blocks separated by
// a blank line.
func (rd *renderer) double(r Roster) {
	q := limitsFor(rd.cfg).Split(r)

	women := block{
		left:  rd.partition(q.WomenLeft, QuadrantWomen),
		right: rd.partition(q.WomenRight, QuadrantWomen),
	}
	lower := block{
		left:  rd.partition(q.MenLowerLeft, QuadrantMenLower),
		right: rd.partition(q.MenLowerRight, QuadrantMenLower),
	}
	upper := block{
		left:  rd.partition(q.MenUpperLeft, QuadrantMenUpper),
		right: rd.partition(q.MenUpperRight, QuadrantMenUpper),
	}

	// each wave is a run of blocks with no changeover between them
	var waves [][]block
	if rd.cfg.Format == Holes54 {
		if rd.cfg.Round == RoundSecond {
			waves = [][]block{{upper}, {women, lower}}
		} else {
			waves = [][]block{{women, lower}, {upper}}
		}
	} else {
		// 36 holes: the women lead block A on each tee
		lower = block{
			left:  append(slices.Clip(women.left), lower.left...),
			right: append(slices.Clip(women.right), lower.right...),
		}
		if rd.cfg.Round == RoundSecond {
			waves = [][]block{{upper}, {lower}}
		} else {
			waves = [][]block{{lower}, {upper}}
		}
	}

	started := false
	for _, wave := range waves {
		wave = slices.DeleteFunc(wave, block.empty)
		if len(wave) == 0 {
			continue
		}
		if started {
			rd.separator()
		}
		started = true
		for _, b := range wave {
			rd.emit(b)
		}
	}
}

func (rd *renderer) emit(b block) {
	n := max(len(b.left), len(b.right))
	for i := 0; i < n; i++ {
		line := Line{Kind: LineFlight, Block: rd.block}
		t := rd.next()
		if i < len(b.left) {
			line.Left = &ScheduleRow{
				FlightNumber: i + 1,
				Tee:          Tee1,
				Players:      b.left[i].flight,
				Time:         t,
				Quadrant:     b.left[i].quadrant,
			}
		}
		if i < len(b.right) {
			line.Right = &ScheduleRow{
				FlightNumber: len(b.left) + i + 1,
				Tee:          Tee10,
				Players:      b.right[i].flight,
				Time:         t,
				Quadrant:     b.right[i].quadrant,
			}
		}
		rd.lines = append(rd.lines, line)
	}
	rd.block++
}

func (rd *renderer) separator() {
	if !rd.haveCross && rd.haveLast {
		rd.crossBase = rd.lastTime
		rd.haveCross = true
	}
	rd.lines = append(rd.lines, Line{Kind: LineSeparator, Block: rd.block})
	rd.cursor = AddTime(rd.cursor, rd.cfg.secondBlockOffset())
}

// crossingTime is when the last flight of the first block reaches the turn.
func (rd *renderer) crossingTime() Clock {
	base := rd.cfg.StartTime
	if rd.haveCross {
		base = rd.crossBase
	} else if rd.haveLast {
		base = rd.lastTime
	}
	return AddTime(base, HalfTime(rd.cfg.RoundDuration))
}
