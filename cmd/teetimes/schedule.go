/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mikeb26/teetimes/ephemeris"
	"github.com/mikeb26/teetimes/export"
	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/prefs"
	"github.com/mikeb26/teetimes/roster"
	"github.com/mikeb26/teetimes/teetime"
)

type scheduleOpts struct {
	settings   teetime.Settings
	men        int
	women      int
	flightSize int
	rosterPath string
	xlsxPath   string
	title      string
	bothRounds bool
	area       string
	date       string
	color      string
	save       bool
}

func newScheduleCmd(root *rootOpts) *cobra.Command {
	opts := &scheduleOpts{}
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the tee sheet for a round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchedule(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	s := &opts.settings
	f.IntVar(&opts.men, "men", 0, "number of men")
	f.IntVar(&opts.women, "women", 0, "number of women")
	f.IntVar(&opts.flightSize, "flight-size", 0, "players per flight (3 or 4)")
	f.StringVar(&s.Layout, "layout", "", "tee layout (single, double)")
	f.StringVar(&s.Symmetry, "symmetry", "", "single tee order (symmetric, asymmetric)")
	f.StringVar(&s.Format, "format", "", "double tee competition format (36, 54)")
	f.StringVar(&s.Round, "round", "", "round (1, 2)")
	f.StringVar(&s.StartTime, "start", "", "first start time HH:MM")
	f.StringVar(&s.Gap, "gap", "", "interval between starts HH:MM")
	f.StringVar(&s.RoundDuration, "duration", "", "expected round duration HH:MM")
	f.StringVar(&s.Compact, "compact", "", "compact mode (early-late, early-only)")
	f.StringVar(&s.Display, "display", "", "player display (named, numbered)")
	f.StringVar(&s.Padding, "padding", "", "empty slot placement (leading, trailing)")

	f.StringVar(&opts.rosterPath, "roster", "", "roster spreadsheet (.xlsx)")
	f.StringVar(&opts.xlsxPath, "xlsx", "", "also write the schedule to this .xlsx file")
	f.StringVar(&opts.title, "title", "", "title of the exported sheet")
	f.BoolVar(&opts.bothRounds, "both-rounds", false, "compute round 1 and round 2")
	f.StringVar(&opts.area, "area", "", "province code for sunrise/sunset (e.g. RM)")
	f.StringVar(&opts.date, "date", "", "competition date (default: today)")
	f.StringVar(&opts.color, "color", "auto", "tint rows (auto, always, never)")
	f.BoolVar(&opts.save, "save", false, "remember these settings for next time")

	return cmd
}

// explicitSettings keeps only the values whose flags were set on the command
// line so saved preferences can fill in the rest. A count given as 0 is kept.
func explicitSettings(cmd *cobra.Command, s teetime.Settings) teetime.Settings {
	changed := cmd.Flags().Changed
	var out teetime.Settings
	pick := func(flag string, dst *string, v string) {
		if changed(flag) {
			*dst = v
		}
	}
	if changed("men") {
		out.MenCount = s.MenCount
	}
	if changed("women") {
		out.WomenCount = s.WomenCount
	}
	if changed("flight-size") {
		out.FlightSize = s.FlightSize
	}
	pick("layout", &out.Layout, s.Layout)
	pick("symmetry", &out.Symmetry, s.Symmetry)
	pick("format", &out.Format, s.Format)
	pick("round", &out.Round, s.Round)
	pick("start", &out.StartTime, s.StartTime)
	pick("gap", &out.Gap, s.Gap)
	pick("duration", &out.RoundDuration, s.RoundDuration)
	pick("compact", &out.Compact, s.Compact)
	pick("display", &out.Display, s.Display)
	pick("padding", &out.Padding, s.Padding)

	return out
}

func runSchedule(cmd *cobra.Command, root *rootOpts, opts *scheduleOpts) error {
	ctx := cmd.Context()
	logger := root.logger
	out := cmd.OutOrStdout()

	saved, err := prefs.Load(root.prefsPath)
	if err != nil {
		return err
	}
	opts.settings.MenCount = teetime.Int(opts.men)
	opts.settings.WomenCount = teetime.Int(opts.women)
	opts.settings.FlightSize = teetime.Int(opts.flightSize)
	explicit := explicitSettings(cmd, opts.settings)
	settings := saved.Apply(explicit)

	r := teetime.Roster{}
	if opts.rosterPath != "" {
		r = loadRoster(logger, opts.rosterPath)
		if !cmd.Flags().Changed("men") && len(r.Men) > 0 {
			settings.MenCount = teetime.Int(len(r.Men))
		}
		if !cmd.Flags().Changed("women") && len(r.Women) > 0 {
			settings.WomenCount = teetime.Int(len(r.Women))
		}
		if !cmd.Flags().Changed("display") {
			settings.Display = string(teetime.DisplayNamed)
		}
	}

	rounds := []string{settings.Round}
	if opts.bothRounds {
		rounds = []string{string(teetime.RoundFirst), string(teetime.RoundSecond)}
	}
	schedules, err := computeRounds(ctx, settings, r, rounds)
	if err != nil {
		return err
	}
	for _, s := range schedules {
		if s.Config.Display == teetime.DisplayNamed &&
			!r.Fits(s.Config.MenCount, s.Config.WomenCount) {
			logger.Warn("teetimes.schedule: roster does not match counts; fitting",
				zap.Int("men", len(r.Men)), zap.Int("women", len(r.Women)),
				zap.Int("men_count", s.Config.MenCount),
				zap.Int("women_count", s.Config.WomenCount))
			break
		}
	}

	styled := useColor(opts.color, out)
	for i, s := range schedules {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Round %v\n\n", s.Config.Round)
		if styled {
			fmt.Fprint(out, teetime.BuildScheduleOutputStyled(s))
		} else {
			fmt.Fprint(out, teetime.BuildScheduleOutput(s))
		}
	}

	area := opts.area
	if area == "" {
		area = saved.Area
	}
	if area != "" {
		date, err := internal.ParseDateOr(opts.date, time.Now())
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		sun := newSunClient(ctx, root).LookupOrDefault(ctx, area, date)
		fmt.Fprintln(out, formatSun(sun))
	}

	if opts.xlsxPath != "" {
		if err := writeXLSX(opts.xlsxPath, opts.title, schedules); err != nil {
			return err
		}
	}

	if opts.save {
		saved.Settings = explicit.Merge(saved.Settings)
		if opts.area != "" {
			saved.Area = opts.area
		}
		if err := prefs.Save(root.prefsPath, saved); err != nil {
			return err
		}
		logger.Info("teetimes.schedule: saved preferences",
			zap.String("path", root.prefsPath))
	}

	return nil
}

// computeRounds resolves and computes each round concurrently, returning the
// schedules in the order of rounds.
func computeRounds(ctx context.Context, base teetime.Settings,
	r teetime.Roster, rounds []string) ([]*teetime.Schedule, error) {

	out := make([]*teetime.Schedule, len(rounds))
	g, _ := errgroup.WithContext(ctx)
	for i, round := range rounds {
		g.Go(func() error {
			s := base
			s.Round = round
			cfg, err := teetime.Resolve(s)
			if err != nil {
				return err
			}
			out[i], err = teetime.Compute(cfg, r)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// loadRoster falls back to placeholder names when the file cannot be read.
func loadRoster(logger *zap.Logger, path string) teetime.Roster {
	r, err := roster.LoadFile(path)
	if err != nil {
		logger.Warn("teetimes.schedule: unable to read roster; using numbers",
			zap.String("path", path), zap.Error(err))
		return teetime.Roster{}
	}
	return r
}

func writeXLSX(path, title string, schedules []*teetime.Schedule) error {
	for _, s := range schedules {
		p := path
		if len(schedules) > 1 {
			ext := filepath.Ext(path)
			p = fmt.Sprintf("%v-round%v%v", strings.TrimSuffix(path, ext),
				s.Config.Round, ext)
		}
		fp, err := os.Create(p)
		if err != nil {
			return err
		}
		if err := export.WriteXLSX(fp, s, title); err != nil {
			fp.Close()
			return err
		}
		if err := fp.Close(); err != nil {
			return err
		}
	}
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newSunClient(ctx context.Context, root *rootOpts) *ephemeris.Client {
	return ephemeris.NewClient(ctx, ephemeris.WithCacheBucket(root.cacheBucket),
		ephemeris.WithLogger(root.logger))
}

func formatSun(st ephemeris.SunTimes) string {
	s := fmt.Sprintf("%v %v  sunrise %v  sunset %v", st.Area, st.Date,
		st.Sunrise, st.Sunset)
	if st.Placeholder {
		s += "  (estimated)"
	}
	return s
}
