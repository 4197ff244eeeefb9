// Package replay reads Etterna ReplayV2 files and derives the inputs the
// scorers and analytics need from them.
package replay

import (
	"bufio"
	"bytes"
	"cmp"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"gonum.org/v1/gonum/stat"

	"github.com/wifescope/wifescope/pkg/chart"
	"github.com/wifescope/wifescope/pkg/combo"
	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/scoring"
	"github.com/wifescope/wifescope/pkg/timing"
)

// MissDeviation is the deviation Etterna writes for a missed note.
const MissDeviation = 1.0

// noteTypes maps the optional fourth column to chart note types.
var noteTypes = map[int]chart.NoteType{
	1: chart.Tap,
	2: chart.HoldHead,
	3: chart.HoldTail,
	4: chart.Mine,
	5: chart.Lift,
	6: chart.Keysound,
	7: chart.Fake,
}

// Note is a single tap or hold head from a replay.
type Note struct {
	Tick      uint32  `json:"tick"`
	Deviation float32 `json:"deviation"`
	Column    uint8   `json:"column"`
	Hold      bool    `json:"hold,omitempty"`
}

// Hit converts the note's deviation into a judge.Hit.
func (n Note) Hit() judge.Hit {
	if n.Deviation >= MissDeviation {
		return judge.MissedHit()
	}
	return judge.HitAt(n.Deviation)
}

// Snap is the subdivision the note's row falls on.
func (n Note) Snap() chart.Snap {
	return chart.SnapFromRow(n.Tick)
}

// Replay is the parsed content of a ReplayV2 file. Notes are kept in file
// order, which Etterna writes chronologically.
type Replay struct {
	Notes     []Note `json:"notes"`
	MineHits  uint32 `json:"mine_hits"`
	HoldDrops uint32 `json:"hold_drops"`
}

// Parse reads a ReplayV2 file. Each line is "tick deviation column [type]";
// a line starting with "H" records a dropped hold. Lines that cannot be
// parsed are skipped.
func Parse(data []byte) (*Replay, error) {
	r := &Replay{Notes: make([]Note, 0, len(data)/16)}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == 'H' {
			r.HoldDrops++
			continue
		}

		note, code, ok := parseLine(line)
		if !ok {
			continue
		}
		noteType, known := noteTypes[code]
		if !known {
			log.Printf("replay: unexpected note type %d at tick %d", code, note.Tick)
			continue
		}
		switch noteType {
		case chart.HoldHead:
			note.Hold = true
			r.Notes = append(r.Notes, note)
		case chart.Tap:
			r.Notes = append(r.Notes, note)
		case chart.Mine:
			r.MineHits++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading replay: %w", err)
	}
	return r, nil
}

func parseLine(line string) (Note, int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Note{}, 0, false
	}

	tick64, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Note{}, 0, false
	}
	tick, err := safecast.Conv[uint32](tick64)
	if err != nil {
		return Note{}, 0, false
	}
	dev, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return Note{}, 0, false
	}
	col64, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Note{}, 0, false
	}
	column, err := safecast.Conv[uint8](col64)
	if err != nil {
		return Note{}, 0, false
	}

	code := 1
	if len(fields) >= 4 {
		if code, err = strconv.Atoi(fields[3]); err != nil {
			return Note{}, 0, false
		}
	}

	return Note{Tick: tick, Deviation: float32(dev), Column: column}, code, true
}

// Hits returns one hit per note, in file order.
func (r *Replay) Hits() []judge.Hit {
	hits := make([]judge.Hit, len(r.Notes))
	for i, n := range r.Notes {
		hits[i] = n.Hit()
	}
	return hits
}

// TapJudgements counts the replay's notes per judgement under j.
func (r *Replay) TapJudgements(j *judge.Judge) judge.TapJudgements {
	return judge.CountTapJudgements(r.Hits(), j)
}

// Judgements counts taps under j together with mine hits and hold outcomes.
// A hold whose head was missed counts as missed, not dropped; drops beyond
// the remaining holds are capped.
func (r *Replay) Judgements(j *judge.Judge) judge.FullJudgements {
	full := judge.FullJudgements{
		TapJudgements: r.TapJudgements(j),
		HitMines:      r.MineHits,
	}
	var heads uint32
	for _, n := range r.Notes {
		if !n.Hold {
			continue
		}
		heads++
		if n.Hit().Missed {
			full.MissedHolds++
		}
	}
	full.NgHolds = min(r.HoldDrops, heads-full.MissedHolds)
	full.OkHolds = heads - full.MissedHolds - full.NgHolds
	return full
}

// LongestCombo returns the longest run of notes accepted by filter, in
// chronological order. Pass a combo breaker test to get the classic combo.
func (r *Replay) LongestCombo(filter func(judge.Hit) bool) uint32 {
	sorted := r.chronological()
	return combo.LongestTrueSequence(func(yield func(bool) bool) {
		for _, n := range sorted {
			if !yield(filter(n.Hit())) {
				return
			}
		}
	})
}

// MeanDeviation returns the mean deviation of all non-missed notes in
// seconds, or zero without any.
func (r *Replay) MeanDeviation() float32 {
	devs := r.hitDeviations()
	if len(devs) == 0 {
		return 0
	}
	return float32(stat.Mean(devs, nil))
}

// DeviationStdDev returns the sample standard deviation of all non-missed
// note deviations in seconds, or zero with fewer than two of them.
func (r *Replay) DeviationStdDev() float32 {
	devs := r.hitDeviations()
	if len(devs) < 2 {
		return 0
	}
	return float32(stat.StdDev(devs, nil))
}

func (r *Replay) hitDeviations() []float64 {
	devs := make([]float64, 0, len(r.Notes))
	for _, n := range r.Notes {
		if n.Deviation < MissDeviation {
			devs = append(devs, float64(n.Deviation))
		}
	}
	return devs
}

// NoteSeconds returns the chronologically sorted note positions in seconds
// along with each note's hit.
func (r *Replay) NoteSeconds(info *timing.Info) ([]float32, []judge.Hit) {
	sorted := r.chronological()
	ticks := make([]uint32, len(sorted))
	hits := make([]judge.Hit, len(sorted))
	for i, n := range sorted {
		ticks[i] = n.Tick
		hits[i] = n.Hit()
	}
	return info.TicksToSeconds(ticks), hits
}

// Lanes rebuilds the per-column note and hit timestamps for the scoring
// systems. Missed notes contribute a note but no hit. Notes in columns
// beyond keymode are dropped with a warning.
func (r *Replay) Lanes(info *timing.Info, keymode int) []scoring.Lane {
	lanes := make([]scoring.Lane, keymode)
	byColumn := make([][]Note, keymode)
	for _, n := range r.chronological() {
		if int(n.Column) >= keymode {
			log.Printf("replay: column %d out of range for %dk, skipping note at tick %d", n.Column, keymode, n.Tick)
			continue
		}
		byColumn[n.Column] = append(byColumn[n.Column], n)
	}

	for col, notes := range byColumn {
		ticks := make([]uint32, len(notes))
		for i, n := range notes {
			ticks[i] = n.Tick
		}
		noteSeconds := info.TicksToSeconds(ticks)

		hitSeconds := make([]float32, 0, len(notes))
		for i, n := range notes {
			if n.Deviation < MissDeviation {
				hitSeconds = append(hitSeconds, noteSeconds[i]+n.Deviation)
			}
		}
		slices.Sort(hitSeconds)

		lanes[col] = scoring.Lane{NoteSeconds: noteSeconds, HitSeconds: hitSeconds}
	}
	return lanes
}

func (r *Replay) chronological() []Note {
	if slices.IsSortedFunc(r.Notes, compareTick) {
		return r.Notes
	}
	sorted := slices.Clone(r.Notes)
	slices.SortStableFunc(sorted, compareTick)
	return sorted
}

func compareTick(a, b Note) int {
	return cmp.Compare(a.Tick, b.Tick)
}

// MissesBySnap counts missed notes per snap. Ticks are rows at 48 per beat.
func (r *Replay) MissesBySnap() map[chart.Snap]uint32 {
	misses := make(map[chart.Snap]uint32)
	for _, n := range r.Notes {
		if n.Hit().Missed {
			misses[n.Snap()]++
		}
	}
	return misses
}
