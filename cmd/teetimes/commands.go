/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/ephemeris"
	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/prefs"
	"github.com/mikeb26/teetimes/roster"
)

func newRosterCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <file.xlsx>",
		Short: "Show the competitors read from a roster spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Women (%d):\n", len(r.Women))
			for i, n := range r.Women {
				fmt.Fprintf(out, "  %3d. %v\n", i+1, n)
			}
			fmt.Fprintf(out, "Men (%d):\n", len(r.Men))
			for i, n := range r.Men {
				fmt.Fprintf(out, "  %3d. %v\n", i+1, n)
			}
			root.logger.Debug("teetimes.roster: loaded",
				zap.String("path", args[0]))
			return nil
		},
	}
}

func newSunCmd(root *rootOpts) *cobra.Command {
	var area, date string
	var all bool
	cmd := &cobra.Command{
		Use:   "sun",
		Short: "Show sunrise and sunset for a province",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ephemeris.Areas(), " "))
				return nil
			}
			if area == "" {
				saved, err := prefs.Load(root.prefsPath)
				if err != nil {
					return err
				}
				area = saved.Area
			}
			if area == "" {
				return fmt.Errorf("no --area given and none saved")
			}
			d, err := internal.ParseDateOr(date, time.Now())
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			ctx := cmd.Context()
			st := newSunClient(ctx, root).LookupOrDefault(ctx, area, d)
			fmt.Fprintln(cmd.OutOrStdout(), formatSun(st))
			return nil
		},
	}
	cmd.Flags().StringVar(&area, "area", "", "province code (e.g. RM)")
	cmd.Flags().StringVar(&date, "date", "", "date (default: today)")
	cmd.Flags().BoolVar(&all, "list", false, "list known province codes")

	return cmd
}

func newPrefsCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect or clear saved preferences",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved, err := prefs.Load(root.prefsPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %v\n", root.prefsPath)
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(saved)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return prefs.Reset(root.prefsPath)
		},
	})

	return cmd
}
