/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"errors"
	"fmt"
)

type TeeLayout string

const (
	LayoutSingle TeeLayout = "single"
	LayoutDouble TeeLayout = "double"
)

// Symmetry decides which category leads a single tee start. It has no effect
// on double tee layouts; a distinct symmetric double tee layout is not
// supported.
type Symmetry string

const (
	Symmetric  Symmetry = "symmetric"
	Asymmetric Symmetry = "asymmetric"
)

type CompetitionFormat string

const (
	Holes36 CompetitionFormat = "36"
	Holes54 CompetitionFormat = "54"
)

type Round string

const (
	RoundFirst  Round = "1"
	RoundSecond Round = "2"
)

type CompactMode string

const (
	// EarlyLate starts the second block half a round after the first one.
	EarlyLate CompactMode = "early-late"
	// EarlyOnly starts the second block right after the changeover.
	EarlyOnly CompactMode = "early-only"
)

type DisplayMode string

const (
	DisplayNamed    DisplayMode = "named"
	DisplayNumbered DisplayMode = "numbered"
)

// PadDirection selects where Partition places empty slots.
type PadDirection string

const (
	PadLeading  PadDirection = "leading"
	PadTrailing PadDirection = "trailing"
)

const (
	// changeover is the fixed pause between the two time blocks of a double
	// tee start.
	changeover Clock = 10
	// compactFlightLimit is the number of flights up to which the compact
	// mode is honoured.
	compactFlightLimit = 32
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports the configuration field that failed validation.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func newConfigError(field string, value any, reason string) *ConfigError {
	return &ConfigError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}

// Config is a fully resolved configuration for one computation.
type Config struct {
	MenCount      int               `json:"men_count"`
	WomenCount    int               `json:"women_count"`
	FlightSize    int               `json:"flight_size"`
	Layout        TeeLayout         `json:"layout"`
	Symmetry      Symmetry          `json:"symmetry"`
	Format        CompetitionFormat `json:"format"`
	Round         Round             `json:"round"`
	StartTime     Clock             `json:"start_time"`
	Gap           Clock             `json:"gap"`
	RoundDuration Clock             `json:"round_duration"`
	Compact       CompactMode       `json:"compact"`
	Display       DisplayMode       `json:"display"`
	Padding       PadDirection      `json:"padding"`
}

// Validate rejects a configuration the engine cannot compute. Nothing is
// clamped.
func (c Config) Validate() error {
	if c.MenCount < 0 {
		return newConfigError("men_count", c.MenCount, "must not be negative")
	}
	if c.WomenCount < 0 {
		return newConfigError("women_count", c.WomenCount,
			"must not be negative")
	}
	if c.FlightSize != 3 && c.FlightSize != 4 {
		return newConfigError("flight_size", c.FlightSize, "must be 3 or 4")
	}
	switch c.Layout {
	case LayoutSingle, LayoutDouble:
	default:
		return newConfigError("layout", c.Layout, "unknown tee layout")
	}
	switch c.Symmetry {
	case Symmetric, Asymmetric:
	default:
		return newConfigError("symmetry", c.Symmetry, "unknown symmetry")
	}
	switch c.Format {
	case Holes36, Holes54:
	default:
		return newConfigError("format", c.Format,
			"unknown competition format")
	}
	switch c.Round {
	case RoundFirst, RoundSecond:
	default:
		return newConfigError("round", c.Round, "unknown round")
	}
	switch c.Compact {
	case EarlyLate, EarlyOnly:
	default:
		return newConfigError("compact", c.Compact, "unknown compact mode")
	}
	switch c.Display {
	case DisplayNamed, DisplayNumbered:
	default:
		return newConfigError("display", c.Display, "unknown display mode")
	}
	switch c.Padding {
	case PadLeading, PadTrailing:
	default:
		return newConfigError("padding", c.Padding, "unknown pad direction")
	}
	if c.StartTime < 0 || c.StartTime >= minutesPerDay {
		return newConfigError("start_time", int(c.StartTime), "out of range")
	}
	if c.Gap <= 0 || c.Gap >= minutesPerDay {
		return newConfigError("gap", c.Gap, "must be greater than 00:00")
	}
	if c.RoundDuration < 0 || c.RoundDuration >= minutesPerDay {
		return newConfigError("round_duration", int(c.RoundDuration),
			"out of range")
	}

	return nil
}

// TotalPlayers is the size of the combined roster.
func (c Config) TotalPlayers() int {
	return c.MenCount + c.WomenCount
}

// secondBlockOffset is the extra time inserted between the first and the
// second block of a double tee start.
func (c Config) secondBlockOffset() Clock {
	offset := changeover
	if c.Compact == EarlyLate &&
		c.TotalPlayers() <= compactFlightLimit*c.FlightSize {
		offset += HalfTime(c.RoundDuration)
	}
	return offset
}
