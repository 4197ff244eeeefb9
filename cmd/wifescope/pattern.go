package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wifescope/wifescope/pkg/pattern"
)

func newPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern <pattern>...",
		Short: "Normalize note patterns and guess their keymode",
		Long: `Parses patterns written in community notation, e.g. "[12]3[24]" or "ldur",
and prints each one back with digit lanes, its row and note counts and the
keymode it was most likely written for.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPattern(cmd.OutOrStdout(), args)
		},
	}
}

func runPattern(w io.Writer, args []string) error {
	for _, arg := range args {
		p := pattern.Parse(arg)
		keymode, ok := p.Keymode()
		if !ok {
			return fmt.Errorf("pattern %q has no notes", arg)
		}
		notes := 0
		for _, row := range p.Rows {
			notes += row.NumNotes()
		}
		fmt.Fprintf(w, "%s\t%dk\t%d rows\t%d notes\n", p, keymode, len(p.Rows), notes)
	}
	return nil
}
