package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/wifescope/wifescope/pkg/analysis"
	"github.com/wifescope/wifescope/pkg/skillset"
)

// MarkdownRenderer produces Markdown suitable for pasting into forums and
// chat.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) RenderReport(w io.Writer, report *analysis.Report) error {
	_, err := io.WriteString(w, buildReportMarkdown(report))
	return err
}

func buildReportMarkdown(report *analysis.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %.2f%% (%s) on %s %s\n\n", report.Wifescore, report.Grade, report.Wife, report.Judge)
	if report.Chartkey != "" {
		fmt.Fprintf(&sb, "Chart `%s`", report.Chartkey)
		if report.Difficulty != "" {
			fmt.Fprintf(&sb, " (%s)", report.Difficulty)
		}
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "_Scored with the %s system._\n\n", report.System)

	full := report.Judgements
	tj := full.TapJudgements
	sb.WriteString("| Judgement | Count |\n|-----------|-------|\n")
	fmt.Fprintf(&sb, "| Marvelous | %d |\n", tj.Marvelouses)
	fmt.Fprintf(&sb, "| Perfect | %d |\n", tj.Perfects)
	fmt.Fprintf(&sb, "| Great | %d |\n", tj.Greats)
	fmt.Fprintf(&sb, "| Good | %d |\n", tj.Goods)
	fmt.Fprintf(&sb, "| Bad | %d |\n", tj.Bads)
	fmt.Fprintf(&sb, "| Miss | %d |\n", tj.Misses)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "- Mines hit: %d\n", full.HitMines)
	fmt.Fprintf(&sb, "- Holds: %d OK, %d dropped, %d missed\n", full.OkHolds, full.NgHolds, full.MissedHolds)
	fmt.Fprintf(&sb, "- Longest combo: %d\n", report.LongestCombo)
	if len(report.MissesBySnap) > 0 {
		fmt.Fprintf(&sb, "- Misses by snap: %s\n", snapMisses(report.MissesBySnap))
	}
	fmt.Fprintf(&sb, "- Mean deviation: %+.1fms (SD %.1fms)\n", report.MeanDeviation*1000, report.DeviationSD*1000)
	if fc := report.FastestCombo; fc != nil {
		fmt.Fprintf(&sb, "- Fastest combo: %d notes at %.2f NPS\n", fc.Length, fc.Speed)
	}
	if fc := report.FastestComboWife; fc != nil {
		fmt.Fprintf(&sb, "- Fastest combo, accuracy weighted: %.2f NPS\n", fc.Speed)
	}
	return sb.String()
}

func (r *MarkdownRenderer) RenderRating(w io.Writer, rating *Rating) error {
	title := "Chart"
	if rating.Kind == "player" {
		title = "Player"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s rating: %.2f\n\n", title, rating.Skillsets.Get(skillset.Overall))
	sb.WriteString("| Skillset | Rating |\n|----------|--------|\n")
	for _, ss := range skillset.All7() {
		fmt.Fprintf(&sb, "| %s | %.2f |\n", ss, rating.Skillsets.Get(ss))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *MarkdownRenderer) RenderTimeline(w io.Writer, timeline *skillset.Timeline[string]) error {
	var sb strings.Builder
	sb.WriteString("| Key |")
	for _, ss := range skillset.All8() {
		fmt.Fprintf(&sb, " %s |", ss)
	}
	sb.WriteString("\n|-----|")
	sb.WriteString(strings.Repeat("------|", 8))
	sb.WriteString("\n")
	for _, c := range timeline.Changes {
		fmt.Fprintf(&sb, "| %s |", c.Key)
		for _, ss := range skillset.All8() {
			fmt.Fprintf(&sb, " %.2f |", c.Skillsets.Get(ss))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
