/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/prefs"
)

type rootOpts struct {
	logLevel    string
	prefsPath   string
	cacheBucket string

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	rootCmd := &cobra.Command{
		Use:           "teetimes",
		Short:         "Build golf competition tee sheets",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := internal.NewLogger(opts.logLevel, "console")
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				opts.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.prefsPath, "prefs", prefs.Path(), "preferences file")
	pf.StringVar(&opts.cacheBucket, "cache-bucket", "",
		"S3 bucket caching sun table pages (default: in memory)")

	rootCmd.AddCommand(newScheduleCmd(opts))
	rootCmd.AddCommand(newRosterCmd(opts))
	rootCmd.AddCommand(newSunCmd(opts))
	rootCmd.AddCommand(newPrefsCmd(opts))

	return rootCmd
}
