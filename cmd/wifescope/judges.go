package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wifescope/wifescope/pkg/judge"
)

func newJudgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "judges",
		Short: "List the judge presets and their timing windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJudges(cmd.OutOrStdout())
		},
	}
}

func runJudges(w io.Writer) error {
	fmt.Fprintf(w, "%-5s %6s %6s %6s %6s %6s %6s %6s %6s %6s\n",
		"judge", "marv", "perf", "great", "good", "bad", "hold", "roll", "mine", "scale")
	for _, j := range judge.Presets() {
		fmt.Fprintf(w, "%-5s %6.1f %6.1f %6.1f %6.1f %6.1f %6.1f %6.1f %6.1f %6.2f\n",
			j.Name,
			ms(j.Marvelous), ms(j.Perfect), ms(j.Great), ms(j.Good), ms(j.Bad),
			ms(j.Hold), ms(j.Roll), ms(j.Mine), j.TimingScale)
	}
	return nil
}

func ms(seconds float32) float32 {
	return seconds * 1000
}
