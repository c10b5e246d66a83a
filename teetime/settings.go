/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"strings"
)

// Settings is the user supplied form of a Config as it arrives from a form,
// command line flags, an API request or the preferences file. Empty fields
// take their default value in Resolve. The counts are pointers so that an
// explicit zero is told apart from a field that was never set.
type Settings struct {
	MenCount      *int   `json:"men_count,omitempty" toml:"men_count,omitempty"`
	WomenCount    *int   `json:"women_count,omitempty" toml:"women_count,omitempty"`
	FlightSize    *int   `json:"flight_size,omitempty" toml:"flight_size,omitempty"`
	Layout        string `json:"layout,omitempty" toml:"layout,omitempty"`
	Symmetry      string `json:"symmetry,omitempty" toml:"symmetry,omitempty"`
	Format        string `json:"format,omitempty" toml:"format,omitempty"`
	Round         string `json:"round,omitempty" toml:"round,omitempty"`
	StartTime     string `json:"start_time,omitempty" toml:"start_time,omitempty"`
	Gap           string `json:"gap,omitempty" toml:"gap,omitempty"`
	RoundDuration string `json:"round_duration,omitempty" toml:"round_duration,omitempty"`
	Compact       string `json:"compact,omitempty" toml:"compact,omitempty"`
	Display       string `json:"display,omitempty" toml:"display,omitempty"`
	Padding       string `json:"padding,omitempty" toml:"padding,omitempty"`
}

// DefaultSettings returns the values used for every empty field.
func DefaultSettings() Settings {
	return Settings{
		FlightSize:    Int(3),
		Layout:        string(LayoutSingle),
		Symmetry:      string(Symmetric),
		Format:        string(Holes36),
		Round:         string(RoundFirst),
		StartTime:     "08:00",
		Gap:           "00:10",
		RoundDuration: "04:30",
		Compact:       string(EarlyLate),
		Display:       string(DisplayNumbered),
	}
}

// Int returns a pointer to v for the count fields of Settings.
func Int(v int) *int {
	return &v
}

// ToInt returns the value p points to, or 0 when p is nil.
func ToInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Merge returns s with every unset field taken from base. A count set to
// zero is kept.
func (s Settings) Merge(base Settings) Settings {
	out := s
	if out.MenCount == nil {
		out.MenCount = base.MenCount
	}
	if out.WomenCount == nil {
		out.WomenCount = base.WomenCount
	}
	if out.FlightSize == nil {
		out.FlightSize = base.FlightSize
	}
	pick := func(v, b string) string {
		if strings.TrimSpace(v) == "" {
			return b
		}
		return v
	}
	out.Layout = pick(out.Layout, base.Layout)
	out.Symmetry = pick(out.Symmetry, base.Symmetry)
	out.Format = pick(out.Format, base.Format)
	out.Round = pick(out.Round, base.Round)
	out.StartTime = pick(out.StartTime, base.StartTime)
	out.Gap = pick(out.Gap, base.Gap)
	out.RoundDuration = pick(out.RoundDuration, base.RoundDuration)
	out.Compact = pick(out.Compact, base.Compact)
	out.Display = pick(out.Display, base.Display)
	out.Padding = pick(out.Padding, base.Padding)

	return out
}

// Resolve fills defaults, parses and validates s. Fields that do not apply to
// the chosen layout are normalised so that equivalent settings resolve to the
// same Config.
func Resolve(s Settings) (Config, error) {
	s = s.Merge(DefaultSettings())

	cfg := Config{
		MenCount:   ToInt(s.MenCount),
		WomenCount: ToInt(s.WomenCount),
		FlightSize: ToInt(s.FlightSize),
		Layout:     TeeLayout(normalizeEnum(s.Layout)),
		Symmetry:   Symmetry(normalizeEnum(s.Symmetry)),
		Format:     CompetitionFormat(normalizeFormat(s.Format)),
		Round:      Round(normalizeEnum(s.Round)),
		Compact:    CompactMode(normalizeEnum(s.Compact)),
		Display:    DisplayMode(normalizeEnum(s.Display)),
		Padding:    PadDirection(normalizeEnum(s.Padding)),
	}

	var err error
	if cfg.StartTime, err = ParseClock(s.StartTime); err != nil {
		return Config{}, newConfigError("start_time", s.StartTime, err.Error())
	}
	if cfg.Gap, err = ParseClock(s.Gap); err != nil {
		return Config{}, newConfigError("gap", s.Gap, err.Error())
	}
	if cfg.RoundDuration, err = ParseClock(s.RoundDuration); err != nil {
		return Config{}, newConfigError("round_duration", s.RoundDuration,
			err.Error())
	}

	if cfg.Layout == LayoutDouble {
		cfg.Symmetry = Symmetric
		if cfg.Padding == "" {
			cfg.Padding = PadLeading
		}
	} else if cfg.Layout == LayoutSingle {
		cfg.Format = Holes36
		if cfg.Padding == "" {
			cfg.Padding = PadTrailing
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}

// normalizeFormat accepts "36", "54" as well as "holes-36" style spellings.
func normalizeFormat(s string) string {
	s = normalizeEnum(s)
	s = strings.TrimPrefix(s, "holes")
	s = strings.TrimPrefix(s, "-")
	return strings.TrimSuffix(s, "h")
}
