/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "8:05", want: 485},
		{in: " 23:59 ", want: 23*60 + 59},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1205", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseClock(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q): expected error, got %v", c.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q): unexpected error: %v", c.in, err)
			}
			if got != c.want {
				t.Errorf("ParseClock(%q) = %d; want %d", c.in, got, c.want)
			}
		})
	}
}

func TestAddTime(t *testing.T) {
	cases := []struct{ t, delta, want string }{
		{"23:55", "00:10", "00:05"},
		{"08:00", "00:10", "08:10"},
		{"00:00", "00:00", "00:00"},
		{"12:30", "11:30", "00:00"},
		{"22:00", "04:30", "02:30"},
	}
	for _, c := range cases {
		got := AddTime(MustParseClock(c.t), MustParseClock(c.delta))
		if got.String() != c.want {
			t.Errorf("AddTime(%v, %v) = %v; want %v", c.t, c.delta, got, c.want)
		}
	}
}

func TestHalfTime(t *testing.T) {
	cases := []struct{ in, want string }{
		{"04:30", "02:15"},
		{"04:35", "02:17"},
		{"00:01", "00:00"},
		{"05:00", "02:30"},
	}
	for _, c := range cases {
		got := HalfTime(MustParseClock(c.in))
		if got.String() != c.want {
			t.Errorf("HalfTime(%v) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestClockText(t *testing.T) {
	var c Clock
	if err := c.UnmarshalText([]byte("07:45")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "07:45" {
		t.Errorf("MarshalText = %q; want 07:45", b)
	}
	if err := c.UnmarshalText([]byte("7.45")); err == nil {
		t.Error("expected error for 7.45")
	}
}
