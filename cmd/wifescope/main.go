// Package main provides the wifescope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "wifescope",
		Short: "Rescoring and rating tools for Etterna replays",
		Long: `Wifescope rescores Etterna replays under any judge and wife version,
computes chart and player ratings, and builds skill timelines from score
histories.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search for .wifescope/config.yaml)")

	rootCmd.AddCommand(
		newRescoreCmd(&configPath),
		newRatingCmd(&configPath),
		newTimelineCmd(&configPath),
		newJudgesCmd(),
		newPatternCmd(),
	)
	return rootCmd
}
