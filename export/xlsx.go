/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package export writes computed schedules out as spreadsheets.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/teetimes/teetime"
)

const SheetName = "Tee times"

var ErrEmptySchedule = errors.New("export: nil schedule")

// WriteXLSX writes s to w as a single sheet workbook: a title row, the table
// header and one row per schedule line. Flight rows are filled with their
// quadrant's tint; separator rows stay blank.
func WriteXLSX(w io.Writer, s *teetime.Schedule, title string) error {
	f, err := Build(s, title)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}

// Build returns the workbook WriteXLSX would write. The caller owns the
// returned file and must Close it.
func Build(s *teetime.Schedule, title string) (*excelize.File, error) {
	if s == nil {
		return nil, ErrEmptySchedule
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("export.Build: %w", err)
	}
	sb := &sheetBuilder{f: f, s: s, styles: make(map[string]int)}
	if err := sb.build(title); err != nil {
		f.Close()
		return nil, fmt.Errorf("export.Build: %w", err)
	}

	return f, nil
}

type sheetBuilder struct {
	f      *excelize.File
	s      *teetime.Schedule
	styles map[string]int
}

func (sb *sheetBuilder) build(title string) error {
	table := sb.s.Table()
	hdr := table[0]
	lastCol := colName(len(hdr) - 1)
	fs := sb.s.Config.FlightSize

	if err := sb.setColWidths(hdr); err != nil {
		return err
	}

	titleStyle, err := sb.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if title == "" {
		title = fmt.Sprintf("Tee times: round %v", sb.s.Config.Round)
	}
	sb.f.SetCellValue(SheetName, "A1", title)
	if err := sb.f.MergeCell(SheetName, "A1", lastCol+"1"); err != nil {
		return err
	}
	sb.f.SetCellStyle(SheetName, "A1", "A1", titleStyle)

	hdrStyle, err := sb.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#375623"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	for c, v := range hdr {
		sb.f.SetCellValue(SheetName, cell(c, 2), v)
	}
	sb.f.SetCellStyle(SheetName, "A2", lastCol+"2", hdrStyle)

	for i, l := range sb.s.Lines {
		row := i + 3
		for c, v := range table[i+1] {
			if v == "" {
				continue
			}
			sb.f.SetCellValue(SheetName, cell(c, row), v)
		}
		if l.Kind == teetime.LineSeparator {
			continue
		}
		// left side and the shared time column follow the left flight
		if err := sb.tint(l.Left, 0, fs+2, row); err != nil {
			return err
		}
		if sb.s.Config.Layout == teetime.LayoutDouble {
			if err := sb.tint(l.Right, fs+3, len(hdr)-1, row); err != nil {
				return err
			}
		}
	}

	footer := len(sb.s.Lines) + 4
	sb.f.SetCellValue(SheetName, cell(0, footer),
		fmt.Sprintf("Crossing time: %v", sb.s.CrossingTime))

	return nil
}

func (sb *sheetBuilder) setColWidths(hdr []string) error {
	for c, title := range hdr {
		width := 20.0
		switch title {
		case "Flight", "Tee", "Time":
			width = 8
		}
		if err := sb.f.SetColWidth(SheetName, colName(c), colName(c),
			width); err != nil {
			return err
		}
	}
	return nil
}

func (sb *sheetBuilder) tint(r *teetime.ScheduleRow, from, to, row int) error {
	if r == nil {
		return nil
	}
	color := teetime.Tint(sb.s.Config, r.Quadrant)
	if color == "" {
		return nil
	}
	style, ok := sb.styles[color]
	if !ok {
		var err error
		style, err = sb.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		sb.styles[color] = style
	}

	return sb.f.SetCellStyle(SheetName, cell(from, row), cell(to, row), style)
}

// colName maps a 0-based column index to its spreadsheet letter.
func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}
