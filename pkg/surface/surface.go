// Package surface defines output rendering for wifescope results.
// Implementations handle different output targets: terminal, Markdown, JSON
// and msgpack.
package surface

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/wifescope/wifescope/pkg/analysis"
	"github.com/wifescope/wifescope/pkg/chart"
	"github.com/wifescope/wifescope/pkg/skillset"
)

// Renderer produces formatted output from wifescope results.
type Renderer interface {
	// RenderReport writes a replay analysis.
	RenderReport(w io.Writer, report *analysis.Report) error
	// RenderRating writes an overall rating with its skillsets.
	RenderRating(w io.Writer, rating *Rating) error
	// RenderTimeline writes a skill timeline.
	RenderTimeline(w io.Writer, timeline *skillset.Timeline[string]) error
}

// Rating is the result of the rating command.
type Rating struct {
	Kind      string              `json:"kind"` // chart or player
	Pre070    bool                `json:"pre_070"`
	Skillsets skillset.Skillsets8 `json:"skillsets"`
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"text", "markdown", "json", "msgpack"}

// ForFormat returns the renderer for an --output value.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return &TerminalRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "msgpack":
		return &MsgpackRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// snapMisses lists missed notes per snap, finest snaps last: "4th 1, 16th 2".
func snapMisses(misses map[chart.Snap]uint32) string {
	parts := make([]string, 0, len(misses))
	for _, snap := range slices.Sorted(maps.Keys(misses)) {
		parts = append(parts, fmt.Sprintf("%s %d", snap, misses[snap]))
	}
	return strings.Join(parts, ", ")
}
