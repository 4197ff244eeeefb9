package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wifescope/wifescope/pkg/skillset"
	"github.com/wifescope/wifescope/pkg/surface"
)

func newRatingCmd(configPath *string) *cobra.Command {
	var (
		player bool
		pre070 bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "rating STREAM JUMPSTREAM HANDSTREAM STAMINA JACKSPEED CHORDJACK TECHNICAL",
		Short: "Compute the overall rating from seven skillset ratings",
		Long: `Computes the overall rating of a chart (or, with --player, of a player)
from its seven skillset ratings, in the order stream, jumpstream, handstream,
stamina, jackspeed, chordjack, technical.`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runRating(cmd.OutOrStdout(), args, player, pre070 || cfg.Scoring.Pre070, output)
		},
	}

	cmd.Flags().BoolVar(&player, "player", false, "Treat the values as a player's skillsets")
	cmd.Flags().BoolVar(&pre070, "pre-070", false, "Use the calculation from before Etterna 0.70")
	cmd.Flags().StringVar(&output, "output", "text", "Output format: text, markdown, json or msgpack")

	return cmd
}

func runRating(w io.Writer, args []string, player, pre070 bool, output string) error {
	renderer, err := surface.ForFormat(output)
	if err != nil {
		return err
	}

	ss, err := parseSkillsets7(args)
	if err != nil {
		return err
	}

	var overall float32
	kind := "chart"
	switch {
	case player && pre070:
		overall, kind = ss.PlayerOverallPre070(), "player"
	case player:
		overall, kind = ss.PlayerOverall(), "player"
	case pre070:
		overall = ss.ChartOverallPre070()
	default:
		overall = ss.ChartOverall()
	}

	return renderer.RenderRating(w, &surface.Rating{
		Kind:      kind,
		Pre070:    pre070,
		Skillsets: ss.WithOverall(overall),
	})
}

func parseSkillsets7(args []string) (skillset.Skillsets7, error) {
	var ss skillset.Skillsets7
	if len(args) != len(ss) {
		return ss, fmt.Errorf("expected %d skillset ratings, got %d", len(ss), len(args))
	}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return ss, fmt.Errorf("skillset %s: %w", skillset.All7()[i], err)
		}
		ss[i] = float32(v)
	}
	return ss, nil
}
