package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wifescope/wifescope/internal/replaystore"
	"github.com/wifescope/wifescope/pkg/analysis"
	"github.com/wifescope/wifescope/pkg/chart"
	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/replay"
	"github.com/wifescope/wifescope/pkg/scoring"
	"github.com/wifescope/wifescope/pkg/surface"
	"github.com/wifescope/wifescope/pkg/timing"
	"github.com/wifescope/wifescope/pkg/wife"
)

func newRescoreCmd(configPath *string) *cobra.Command {
	var opts rescoreOpts

	cmd := &cobra.Command{
		Use:   "rescore",
		Short: "Rescore a replay under a different judge, wife version or scoring system",
		Long: `Reads a ReplayV2 file and computes its wifescore, judgements, combos and
deviation statistics. With --bpms the notes are placed on the chart's timeline
and the chosen scoring system rematches hits to notes; without it the hits
recorded in the replay are kept as they are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = *configPath
			return runRescore(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.replayKey, "replay", "", "Replay path, s3://bucket/key or gs://bucket/key (required)")
	cmd.Flags().StringVar(&opts.bpms, "bpms", "", `Chart #BPMS value, e.g. "0=120,32=180"`)
	cmd.Flags().StringVar(&opts.judge, "judge", "", "Judge J1..J9 (default from config, J4)")
	cmd.Flags().StringVar(&opts.wife, "wife", "", "Wife version: wife2 or wife3 (default from config)")
	cmd.Flags().StringVar(&opts.scorer, "scorer", "", "Scoring system: matching or naive (default from config)")
	cmd.Flags().StringVar(&opts.rate, "rate", "1.0", "Music rate the replay was played at")
	cmd.Flags().StringVar(&opts.output, "output", "text", "Output format: text, markdown, json or msgpack")
	cmd.Flags().StringVar(&opts.saveKey, "save", "", "Also store the JSON report at this key")
	cmd.Flags().StringVar(&opts.chartkey, "chartkey", "", "Chartkey to record in the report")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", `Difficulty to record in the report, e.g. "IN" or "Challenge"`)
	_ = cmd.MarkFlagRequired("replay")

	return cmd
}

type rescoreOpts struct {
	configPath string
	replayKey  string
	bpms       string
	judge      string
	wife       string
	scorer     string
	rate       string
	output     string
	saveKey    string
	chartkey   string
	difficulty string
}

func runRescore(ctx context.Context, stdout, stderr io.Writer, opts rescoreOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	renderer, err := surface.ForFormat(opts.output)
	if err != nil {
		return err
	}

	j, err := judge.ByName(firstNonEmpty(opts.judge, cfg.Scoring.Judge))
	if err != nil {
		return err
	}
	w, err := wife.ByName(firstNonEmpty(opts.wife, cfg.Scoring.Wife))
	if err != nil {
		return err
	}
	system, err := scoring.ByName(firstNonEmpty(opts.scorer, cfg.Scoring.System))
	if err != nil {
		return err
	}
	rate, err := chart.ParseRate(opts.rate)
	if err != nil {
		return err
	}

	var key chart.Chartkey
	if opts.chartkey != "" {
		if key, err = chart.ParseChartkey(opts.chartkey); err != nil {
			return err
		}
	}
	var difficulty string
	if opts.difficulty != "" {
		d, ok := chart.DifficultyFromShort(opts.difficulty)
		if !ok {
			if d, ok = chart.DifficultyFromLong(opts.difficulty); !ok {
				return fmt.Errorf("unknown difficulty %q", opts.difficulty)
			}
		}
		difficulty = d.String()
	}

	var info *timing.Info
	if opts.bpms != "" {
		if info, err = timing.ParseBPMs(opts.bpms); err != nil {
			return fmt.Errorf("parsing --bpms: %w", err)
		}
	}

	data, err := replaystore.Fetch(ctx, cfg.Storage, opts.replayKey, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Read %s (%s)\n", opts.replayKey, chart.FileSize(len(data)))

	r, err := replay.Parse(data)
	if err != nil {
		return err
	}

	engine := &analysis.Engine{Judge: j, Wife: w, System: system, Rate: rate.Float32()}
	report, err := engine.Analyze(r, info)
	if err != nil {
		return err
	}
	report.Chartkey = key
	report.Difficulty = difficulty

	if opts.saveKey != "" {
		var buf bytes.Buffer
		if err := (&surface.JSONRenderer{}).RenderReport(&buf, report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		if err := replaystore.Save(ctx, cfg.Storage, opts.saveKey, buf.Bytes()); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Report saved: %s\n", opts.saveKey)
	}

	if err := renderer.RenderReport(stdout, report); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}
