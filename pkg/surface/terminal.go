package surface

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/wifescope/wifescope/pkg/analysis"
	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/skillset"
	"github.com/wifescope/wifescope/pkg/wife"
)

// TerminalRenderer renders results as colored terminal output. Colors follow
// fatih/color's detection (NO_COLOR, non-tty output) unless ForceColor is set.
type TerminalRenderer struct {
	ForceColor bool
}

func (r *TerminalRenderer) paint(c *color.Color, s string) string {
	if r.ForceColor {
		c.EnableColor()
	}
	return c.Sprint(s)
}

func (r *TerminalRenderer) bold(s string) string {
	return r.paint(color.New(color.Bold), s)
}

func (r *TerminalRenderer) dim(s string) string {
	return r.paint(color.New(color.Faint), s)
}

func (r *TerminalRenderer) judgement(t judge.TapJudgement, s string) string {
	red, green, blue := t.Color()
	return r.paint(color.RGB(int(red), int(green), int(blue)), s)
}

func gradeColor(g wife.Grade) *color.Color {
	switch g {
	case wife.GradeAAAAA, wife.GradeAAAA, wife.GradeAAA:
		return color.New(color.FgHiCyan, color.Bold)
	case wife.GradeAA:
		return color.New(color.FgYellow, color.Bold)
	case wife.GradeA:
		return color.New(color.FgGreen)
	case wife.GradeB:
		return color.New(color.FgBlue)
	case wife.GradeC:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgRed)
	}
}

func (r *TerminalRenderer) RenderReport(w io.Writer, report *analysis.Report) error {
	fmt.Fprintf(w, "%s %s\n",
		r.bold(fmt.Sprintf("%s %s (%s): %.2f%%", report.Wife, report.Judge, report.System, report.Wifescore)),
		r.paint(gradeColor(report.Grade), string(report.Grade)))
	if report.Chartkey != "" {
		fmt.Fprintf(w, "Chart: %s", report.Chartkey)
		if report.Difficulty != "" {
			fmt.Fprintf(w, " (%s)", report.Difficulty)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	full := report.Judgements
	tj := full.TapJudgements
	counts := []struct {
		t judge.TapJudgement
		n uint32
	}{
		{judge.Marvelous, tj.Marvelouses},
		{judge.Perfect, tj.Perfects},
		{judge.Great, tj.Greats},
		{judge.Good, tj.Goods},
		{judge.Bad, tj.Bads},
		{judge.Miss, tj.Misses},
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %s %6d\n", r.judgement(c.t, fmt.Sprintf("%-10s", c.t)), c.n)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Mines hit: %d   Holds: %d OK, %d dropped, %d missed\n",
		full.HitMines, full.OkHolds, full.NgHolds, full.MissedHolds)
	fmt.Fprintf(w, "Longest combo: %d\n", report.LongestCombo)
	if len(report.MissesBySnap) > 0 {
		fmt.Fprintf(w, "Misses by snap: %s\n", snapMisses(report.MissesBySnap))
	}
	fmt.Fprintf(w, "Mean deviation: %+.1fms   %s\n",
		report.MeanDeviation*1000, r.dim(fmt.Sprintf("SD %.1fms", report.DeviationSD*1000)))

	if fc := report.FastestCombo; fc != nil {
		fmt.Fprintf(w, "Fastest combo: %d notes at %.2f NPS %s\n",
			fc.Length, fc.Speed, r.dim(fmt.Sprintf("(%.1fs to %.1fs)", fc.StartSecond, fc.EndSecond)))
	}
	if fc := report.FastestComboWife; fc != nil {
		fmt.Fprintf(w, "Fastest combo, accuracy weighted: %.2f NPS %s\n",
			fc.Speed, r.dim(fmt.Sprintf("(%.1fs to %.1fs)", fc.StartSecond, fc.EndSecond)))
	}
	return nil
}

func (r *TerminalRenderer) RenderRating(w io.Writer, rating *Rating) error {
	title := "Chart rating"
	if rating.Kind == "player" {
		title = "Player rating"
	}
	if rating.Pre070 {
		title += " (pre-0.70)"
	}
	fmt.Fprintf(w, "%s: %s\n", title, r.bold(fmt.Sprintf("%.2f", rating.Skillsets.Get(skillset.Overall))))
	for _, ss := range skillset.All7() {
		fmt.Fprintf(w, "  %-11s %6.2f\n", ss, rating.Skillsets.Get(ss))
	}
	return nil
}

func (r *TerminalRenderer) RenderTimeline(w io.Writer, timeline *skillset.Timeline[string]) error {
	if len(timeline.Changes) == 0 {
		fmt.Fprintln(w, "No scores.")
		return nil
	}

	fmt.Fprint(w, r.bold(fmt.Sprintf("%-12s", "key")))
	for _, ss := range skillset.All8() {
		fmt.Fprint(w, r.bold(fmt.Sprintf(" %10s", ss.Key())))
	}
	fmt.Fprintln(w)

	var prev skillset.Skillsets8
	for i, c := range timeline.Changes {
		fmt.Fprintf(w, "%-12s", c.Key)
		for _, ss := range skillset.All8() {
			cell := fmt.Sprintf("%10.2f", c.Skillsets.Get(ss))
			if i > 0 && c.Skillsets.Get(ss) > prev.Get(ss) {
				cell = r.paint(color.New(color.FgGreen), cell)
			}
			fmt.Fprintf(w, " %s", cell)
		}
		fmt.Fprintln(w)
		prev = c.Skillsets
	}
	return nil
}
