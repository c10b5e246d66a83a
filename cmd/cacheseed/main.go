/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/teetimes/ephemeris"
	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/internal/config"
)

// this program exists just to seed the http cache with sun tables for every
// known area

func main() {
	fs := flag.NewFlagSet("cacheseed", flag.ExitOnError)
	cfgPath := fs.String("config", "", "config file")
	months := fs.Int("months", 3, "number of months to seed starting with the current one")
	workers := fs.Int("workers", 2, "concurrent fetches")
	pause := fs.Duration("pause", 2*time.Second, "delay after each fetch")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cacheseed: %v\n", err)
		os.Exit(1)
	}
	logger, err := internal.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cacheseed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	client := ephemeris.NewClient(ctx,
		ephemeris.WithBaseURL(cfg.Ephemeris.BaseURL),
		ephemeris.WithCacheBucket(cfg.Cache.Bucket),
		ephemeris.WithLogger(logger))

	n := seed(ctx, client, logger, seedDates(time.Now(), *months), *workers,
		*pause)
	logger.Info("cacheseed: done", zap.Int("seeded", n))
}

// seedDates returns the first day of each of the n months starting with
// now's month.
func seedDates(now time.Time, n int) []time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, first.AddDate(0, i, 0))
	}
	return out
}

type sunFetcher interface {
	Lookup(ctx context.Context, area string,
		date time.Time) (ephemeris.SunTimes, error)
}

// seed fetches every area for every date and returns how many lookups
// succeeded. Failures are logged and skipped.
func seed(ctx context.Context, client sunFetcher, logger *zap.Logger,
	dates []time.Time, workers int, pause time.Duration) int {

	results := make(chan bool)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))

	go func() {
		for _, area := range ephemeris.Areas() {
			for _, d := range dates {
				g.Go(func() error {
					_, err := client.Lookup(gctx, area, d)
					time.Sleep(pause) // avoid pegging the origin
					if err != nil {
						// best effort
						logger.Warn("cacheseed: lookup failed",
							zap.String("area", area),
							zap.String("month", d.Format("2006-01")),
							zap.Error(err))
					} else {
						logger.Debug("cacheseed: seeded", zap.String("area", area),
							zap.String("month", d.Format("2006-01")))
					}
					results <- err == nil
					return nil
				})
			}
		}
		g.Wait()
		close(results)
	}()

	seeded := 0
	for ok := range results {
		if ok {
			seeded++
		}
	}
	return seeded
}
