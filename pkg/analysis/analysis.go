// Package analysis runs a judge, wife algorithm and scoring system over a
// replay and collects the results into a Report.
package analysis

import (
	"errors"
	"fmt"

	"github.com/wifescope/wifescope/pkg/chart"
	"github.com/wifescope/wifescope/pkg/combo"
	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/replay"
	"github.com/wifescope/wifescope/pkg/scoring"
	"github.com/wifescope/wifescope/pkg/timing"
	"github.com/wifescope/wifescope/pkg/wife"
)

// Bounds of the note window used for the fastest combo search.
const (
	FastestComboMinNotes = 100
	FastestComboMaxNotes = 100
)

// DefaultKeymode is used when a replay carries no note beyond the fourth
// column.
const DefaultKeymode = 4

var ErrNilReplay = errors.New("nil replay")

// Engine holds the settings a replay is evaluated with.
type Engine struct {
	Judge  *judge.Judge
	Wife   wife.Wife
	System scoring.System
	// Rate scales the fastest combo speeds. Zero means 1.00x.
	Rate float32
}

// Report is the outcome of analyzing one replay.
type Report struct {
	Chartkey         chart.Chartkey        `json:"chartkey,omitempty"`
	Difficulty       string                `json:"difficulty,omitempty"`
	Judge            string                `json:"judge"`
	Wife             string                `json:"wife"`
	System           string                `json:"system"`
	Wifescore        float32               `json:"wifescore"`
	Grade            wife.Grade            `json:"grade"`
	Judgements       judge.FullJudgements  `json:"judgements"`
	LongestCombo     uint32                `json:"longest_combo"`
	MeanDeviation    float32               `json:"mean_deviation"`
	DeviationSD      float32               `json:"deviation_sd"`
	FastestCombo     *combo.Info           `json:"fastest_combo,omitempty"`
	FastestComboWife *combo.Info           `json:"fastest_combo_wife,omitempty"`
	MissesBySnap     map[chart.Snap]uint32 `json:"misses_by_snap,omitempty"`
}

// Analyze evaluates r. Without timing info the wifescore is computed from
// the replay's own note hits, so the scoring system recorded in the replay
// is kept. With timing info the lanes are rebuilt and the engine's scoring
// system runs over them, and the fastest combos are searched.
func (e *Engine) Analyze(r *replay.Replay, info *timing.Info) (*Report, error) {
	if r == nil {
		return nil, ErrNilReplay
	}

	report := &Report{
		Judge:         e.Judge.Name,
		Wife:          e.Wife.Name(),
		Judgements: r.Judgements(e.Judge),
		LongestCombo: r.LongestCombo(func(h judge.Hit) bool {
			return !h.IsCB(e.Judge)
		}),
		MeanDeviation: r.MeanDeviation(),
		DeviationSD:   r.DeviationStdDev(),
	}
	if misses := r.MissesBySnap(); len(misses) > 0 {
		report.MissesBySnap = misses
	}

	var (
		ws  wife.Wifescore
		err error
	)
	if info == nil {
		report.System = "replay"
		ws, err = scoring.RescoreFromNoteHits(r.Hits(), r.MineHits, r.HoldDrops, e.Judge, e.Wife)
	} else {
		report.System = e.System.Name()
		ws, err = scoring.Rescore(r.Lanes(info, keymode(r)), r.MineHits, r.HoldDrops, e.Judge, e.System, e.Wife)
		e.fastestCombos(report, r, info)
	}
	if err != nil {
		return nil, fmt.Errorf("analyzing replay: %w", err)
	}
	report.Wifescore = ws.Percent()
	report.Grade = ws.Grade()

	return report, nil
}

func (e *Engine) fastestCombos(report *Report, r *replay.Replay, info *timing.Info) {
	seconds, hits := r.NoteSeconds(info)
	areCBs := make([]bool, len(hits))
	wifePts := make([]float32, len(hits))
	for i, h := range hits {
		areCBs[i] = h.IsCB(e.Judge)
		wifePts[i] = wife.Calc(e.Wife, h, e.Judge)
	}

	rate := e.Rate
	if rate == 0 {
		rate = 1
	}

	nps := combo.FastestComboInScore(seconds, areCBs, FastestComboMinNotes, FastestComboMaxNotes, nil, rate)
	wps := combo.FastestComboInScore(seconds, areCBs, FastestComboMinNotes, FastestComboMaxNotes, wifePts, rate)
	if nps.Length > 0 {
		report.FastestCombo = &nps
	}
	if wps.Length > 0 {
		report.FastestComboWife = &wps
	}
}

func keymode(r *replay.Replay) int {
	km := DefaultKeymode
	for _, n := range r.Notes {
		km = max(km, int(n.Column)+1)
	}
	return km
}
