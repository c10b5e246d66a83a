/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/ephemeris"
)

type countingFetcher struct {
	mu    sync.Mutex
	calls map[string]int
}

func (f *countingFetcher) Lookup(_ context.Context, area string,
	date time.Time) (ephemeris.SunTimes, error) {

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[area+date.Format("2006-01")]++
	if area == "RM" {
		return ephemeris.SunTimes{}, errors.New("boom")
	}
	return ephemeris.SunTimes{Area: area}, nil
}

func TestSeed(t *testing.T) {
	f := &countingFetcher{calls: make(map[string]int)}
	dates := seedDates(time.Date(2026, time.November, 17, 0, 0, 0, 0, time.UTC), 3)

	n := seed(context.Background(), f, zap.NewNop(), dates, 4, 0)

	areas := len(ephemeris.Areas())
	if len(f.calls) != areas*3 {
		t.Errorf("got %d distinct lookups; want %d", len(f.calls), areas*3)
	}
	for k, c := range f.calls {
		if c != 1 {
			t.Errorf("%v looked up %d times", k, c)
		}
	}
	if n != (areas-1)*3 {
		t.Errorf("seeded %d; want %d", n, (areas-1)*3)
	}
}

func TestSeedDates(t *testing.T) {
	got := seedDates(time.Date(2026, time.November, 30, 12, 0, 0, 0, time.UTC), 3)
	want := []string{"2026-11-01", "2026-12-01", "2027-01-01"}
	for i, d := range got {
		if d.Format(time.DateOnly) != want[i] {
			t.Errorf("date %d = %v; want %v", i, d, want[i])
		}
	}
}
