/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Header returns the column titles of the rendered table.
func (s *Schedule) Header() []string {
	players := make([]string, s.Config.FlightSize)
	for i := range players {
		players[i] = fmt.Sprintf("Player %d", i+1)
	}

	hdr := []string{"Flight", "Tee"}
	hdr = append(hdr, players...)
	hdr = append(hdr, "Time")
	if s.Config.Layout == LayoutDouble {
		hdr = append(hdr, players...)
		hdr = append(hdr, "Tee", "Flight")
	}
	return hdr
}

// Table returns the schedule as a header row followed by one row per line.
// Separator lines are rows of empty cells.
func (s *Schedule) Table() [][]string {
	width := len(s.Header())
	out := make([][]string, 0, len(s.Lines)+1)
	out = append(out, s.Header())

	for _, l := range s.Lines {
		row := make([]string, 0, width)
		if l.Kind == LineSeparator {
			out = append(out, make([]string, width))
			continue
		}
		t, _ := l.Time()
		row = append(row, s.sideCells(l.Left, false)...)
		row = append(row, t.String())
		if s.Config.Layout == LayoutDouble {
			row = append(row, s.sideCells(l.Right, true)...)
		}
		out = append(out, row)
	}

	return out
}

// sideCells renders number, tee and players of one side. The right side of a
// double tee line is mirrored.
func (s *Schedule) sideCells(r *ScheduleRow, mirrored bool) []string {
	cells := make([]string, 0, s.Config.FlightSize+2)
	if r == nil {
		return make([]string, s.Config.FlightSize+2)
	}
	num := strconv.Itoa(r.FlightNumber)
	tee := strconv.Itoa(int(r.Tee))
	players := make([]string, s.Config.FlightSize)
	copy(players, r.Players)

	if mirrored {
		cells = append(cells, players...)
		return append(cells, tee, num)
	}
	cells = append(cells, num, tee)
	return append(cells, players...)
}

// BuildScheduleOutput formats the schedule as an aligned plain text table.
func BuildScheduleOutput(s *Schedule) string {
	var sb strings.Builder
	for _, line := range FormatTable(s.Table()) {
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nCrossing time: %v\n", s.CrossingTime))

	return sb.String()
}

// FormatTable pads every cell to its column's display width. Names with
// accents or wide runes are measured by display width, not bytes.
func FormatTable(table [][]string) []string {
	var widths []int
	for _, row := range table {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([]string, 0, len(table))
	for _, row := range table {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		out = append(out, strings.Join(cells, "  "))
	}
	return out
}
