package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wifescope/wifescope/internal/replaystore"
	"github.com/wifescope/wifescope/pkg/skillset"
	"github.com/wifescope/wifescope/pkg/surface"
)

func newTimelineCmd(configPath *string) *cobra.Command {
	var opts timelineOpts

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Compute a player's rating after each day of scores",
		Long: `Reads a score history and prints the player's ratings after every group of
scores. The history is a JSON array of {"key": ..., "skillsets": {...}}
objects, chronologically ordered, where scores sharing a key (usually the
day they were set) are adjacent. Keys ending in .msgpack are read as msgpack.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = *configPath
			opts.workersSet = cmd.Flags().Changed("workers")
			return runTimeline(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.scoresKey, "scores", "", "Score history path, s3://bucket/key or gs://bucket/key (required)")
	cmd.Flags().BoolVar(&opts.pre070, "pre-070", false, "Use the calculation from before Etterna 0.70")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent snapshot workers (default from config, then GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.output, "output", "text", "Output format: text, markdown, json or msgpack")
	_ = cmd.MarkFlagRequired("scores")

	return cmd
}

type timelineOpts struct {
	configPath string
	scoresKey  string
	pre070     bool
	workers    int
	workersSet bool
	output     string
}

func runTimeline(ctx context.Context, stdout io.Writer, opts timelineOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	renderer, err := surface.ForFormat(opts.output)
	if err != nil {
		return err
	}

	data, err := replaystore.Fetch(ctx, cfg.Storage, opts.scoresKey, true)
	if err != nil {
		return err
	}
	entries, err := decodeScoreHistory(opts.scoresKey, data)
	if err != nil {
		return err
	}

	workers := cfg.Timeline.Workers
	if opts.workersSet {
		workers = opts.workers
	}
	timeline := skillset.TimelineFromSlice(entries, skillset.TimelineOptions{
		Pre070:  opts.pre070 || cfg.Scoring.Pre070,
		Workers: workers,
	})

	if err := renderer.RenderTimeline(stdout, &timeline); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// decodeScoreHistory picks JSON or msgpack by the key's extension, ignoring
// a trailing compression extension.
func decodeScoreHistory(key string, data []byte) ([]skillset.Entry[string], error) {
	base := strings.TrimSuffix(strings.TrimSuffix(key, ".zst"), ".gz")

	var entries []skillset.Entry[string]
	var err error
	if path.Ext(base) == ".msgpack" {
		err = surface.DecodeMsgpack(bytes.NewReader(data), &entries)
	} else {
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding score history %s: %w", key, err)
	}
	return entries, nil
}
