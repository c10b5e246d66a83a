/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

// ParseDateOr parses s in any of the common date layouts. An empty string,
// "null" or "today" yields fallback.
func ParseDateOr(s string, fallback time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null", "today":
		return fallback, nil
	}
	t, err := dateparse.ParseIn(strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Truncate shortens s to at most max bytes without splitting a rune, ending
// it with suffix when anything was cut.
func Truncate(s string, max int, suffix string) string {
	if len(s) <= max {
		return s
	}
	cut := max - len(suffix)
	if cut < 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + suffix
}
