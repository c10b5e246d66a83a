/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"slices"
	"strings"
	"testing"
)

func TestTableSingleTee(t *testing.T) {
	s := mustCompute(t, testConfig(t, Settings{MenCount: Int(12)}), Roster{})
	tbl := s.Table()

	wantHdr := []string{"Flight", "Tee", "Player 1", "Player 2", "Player 3",
		"Time"}
	if !slices.Equal(tbl[0], wantHdr) {
		t.Errorf("header = %q; want %q", tbl[0], wantHdr)
	}
	if len(tbl) != 5 {
		t.Fatalf("got %d table rows; want 5", len(tbl))
	}
	want := []string{"2", "1", "4", "5", "6", "08:10"}
	if !slices.Equal(tbl[2], want) {
		t.Errorf("row 2 = %q; want %q", tbl[2], want)
	}
}

func TestTableDoubleTee(t *testing.T) {
	s := mustCompute(t, testConfig(t, Settings{MenCount: Int(30), WomenCount: Int(10),
		FlightSize: Int(4), Layout: "double", Display: "named"}),
		namedRoster(30, 10))
	tbl := s.Table()

	if got := len(tbl[0]); got != 2+4+1+4+2 {
		t.Fatalf("header has %d columns", got)
	}
	if tbl[0][len(tbl[0])-1] != "Flight" || tbl[0][len(tbl[0])-2] != "Tee" {
		t.Errorf("header does not mirror the right tee: %q", tbl[0])
	}
	first := tbl[1]
	want := []string{"1", "1", "W001", "W002", "W003", "W004", "08:00",
		"W009", "W010", "", "", "10", "6"}
	if !slices.Equal(first, want) {
		t.Errorf("first row = %q; want %q", first, want)
	}

	var sep, short []string
	for _, row := range tbl[1:] {
		if row[0] == "" && row[6] == "" {
			sep = row
		}
		if row[0] != "" && row[len(row)-1] == "" {
			short = row
		}
	}
	if sep == nil || strings.Join(sep, "") != "" {
		t.Errorf("no blank separator row in %q", tbl)
	}
	if short == nil || short[11] != "" {
		t.Errorf("expected a row with an empty right tee, got %q", short)
	}
}

func TestBuildScheduleOutput(t *testing.T) {
	s := mustCompute(t, testConfig(t, Settings{MenCount: Int(4), FlightSize: Int(4),
		Display: "named"}), Roster{Men: []string{"Nicolò", "Zoë", "Li", "Ana"}})
	out := BuildScheduleOutput(s)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "Flight  Tee  Player 1") {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if !strings.Contains(lines[1], "Nicolò    Zoë") {
		t.Errorf("names not aligned by display width: %q", lines[1])
	}
	if !strings.Contains(out, "Crossing time: 10:15") {
		t.Errorf("missing crossing time in %q", out)
	}
}

func TestBuildScheduleOutputStyled(t *testing.T) {
	s := mustCompute(t, testConfig(t, Settings{MenCount: Int(24), Layout: "double"}),
		Roster{})
	plain := BuildScheduleOutput(s)
	styled := BuildScheduleOutputStyled(s)

	// without a colour profile lipgloss renders plain text, so the styled
	// output must carry the same cells
	for _, want := range strings.Fields(plain) {
		if !strings.Contains(styled, want) {
			t.Errorf("styled output lost %q", want)
		}
	}
}

func TestTint(t *testing.T) {
	nt := testConfig(t, Settings{MenCount: Int(24), WomenCount: Int(6), Layout: "double"})
	nt54 := testConfig(t, Settings{MenCount: Int(24), WomenCount: Int(6),
		Layout: "double", Format: "54"})

	if Tint(nt, QuadrantWomen) == "" {
		t.Error("36-hole women flights should be tinted")
	}
	if Tint(nt54, QuadrantWomen) != "" {
		t.Error("54-hole women flights should be plain")
	}
	if Tint(nt, QuadrantMenLower) == Tint(nt, QuadrantMenUpper) {
		t.Error("lower and upper blocks share a tint")
	}
}
