/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/teetimes/teetime"
)

func compute(t *testing.T, in teetime.Settings) *teetime.Schedule {
	t.Helper()
	cfg, err := teetime.Resolve(in)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	s, err := teetime.Compute(cfg, teetime.Roster{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return s
}

func reopen(t *testing.T, s *teetime.Schedule, title string) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, s, title); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func fill(t *testing.T, f *excelize.File, axis string) string {
	t.Helper()
	idx, err := f.GetCellStyle(SheetName, axis)
	if err != nil {
		t.Fatalf("GetCellStyle(%v): %v", axis, err)
	}
	style, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("GetStyle(%v): %v", idx, err)
	}
	return strings.ToUpper(strings.Join(style.Fill.Color, ","))
}

func TestWriteXLSXSingleTee(t *testing.T) {
	s := compute(t, teetime.Settings{MenCount: teetime.Int(12)})
	f := reopen(t, s, "Club championship")

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if rows[0][0] != "Club championship" {
		t.Errorf("title = %q", rows[0][0])
	}
	want := s.Table()
	for i, wantRow := range want {
		got := rows[i+1]
		if strings.Join(got, "|") != strings.Join(wantRow, "|") {
			t.Errorf("row %v = %q; want %q", i+2, got, wantRow)
		}
	}
	if c := fill(t, f, "A3"); !strings.Contains(c, "DDEBF7") {
		t.Errorf("first flight fill = %q; want men-lower tint", c)
	}
	footer := rows[len(rows)-1][0]
	if footer != "Crossing time: "+s.CrossingTime.String() {
		t.Errorf("footer = %q", footer)
	}
}

func TestWriteXLSXDoubleTee54(t *testing.T) {
	s := compute(t, teetime.Settings{MenCount: teetime.Int(30), WomenCount: teetime.Int(10),
		FlightSize: teetime.Int(4), Layout: "double", Format: "54"})
	f := reopen(t, s, "")

	title, err := f.GetCellValue(SheetName, "A1")
	if err != nil || title != "Tee times: round 1" {
		t.Errorf("default title = %q (%v)", title, err)
	}
	// the women block opens round 1 and is left plain
	if s.Lines[0].Left.Quadrant != teetime.QuadrantWomen {
		t.Fatalf("first line is %v", s.Lines[0].Left.Quadrant)
	}
	if c := fill(t, f, "A3"); c != "" {
		t.Errorf("women flight fill = %q; want none", c)
	}

	for i, l := range s.Lines {
		if l.Kind != teetime.LineSeparator {
			continue
		}
		axis := cell(0, i+3)
		v, _ := f.GetCellValue(SheetName, axis)
		if v != "" || fill(t, f, axis) != "" {
			t.Errorf("separator row %v not blank", i+3)
		}
	}
}

func TestWriteXLSXNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, nil, ""); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("WriteXLSX(nil) = %v", err)
	}
}
