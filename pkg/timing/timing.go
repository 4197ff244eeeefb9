// Package timing converts chart positions into seconds using a simfile's
// BPM changes.
package timing

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// TicksPerBeat is the tick resolution used in replay files.
const TicksPerBeat = 48

var (
	ErrMissingEquals     = errors.New("bpm entry has no equals sign")
	ErrInvalidBeat       = errors.New("invalid beat")
	ErrInvalidBPM        = errors.New("invalid bpm")
	ErrFirstChangeNotAt0 = errors.New("first bpm change is not at beat 0")
	ErrNaN               = errors.New("bpm or beat is NaN")
)

type bpmChange struct {
	beat float64
	bpm  float64
}

// Info holds a chart's BPM changes in chronological order.
type Info struct {
	firstBPM float64
	changes  []bpmChange
}

// ParseBPMs parses a simfile #BPMS value such as "0.000=120.000,32.000=180.000".
// Entries may come in any order, but one of them must be at beat 0.
func ParseBPMs(s string) (*Info, error) {
	var changes []bpmChange
	for _, pair := range strings.Split(s, ",") {
		beatStr, bpmStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%q: %w", pair, ErrMissingEquals)
		}
		beat, err := strconv.ParseFloat(strings.TrimSpace(beatStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidBeat, beatStr, err)
		}
		bpm, err := strconv.ParseFloat(strings.TrimSpace(bpmStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidBPM, bpmStr, err)
		}
		if math.IsNaN(beat) || math.IsNaN(bpm) {
			return nil, ErrNaN
		}
		changes = append(changes, bpmChange{beat: beat, bpm: bpm})
	}

	slices.SortStableFunc(changes, func(a, b bpmChange) int {
		return cmp.Compare(a.beat, b.beat)
	})
	if changes[0].beat != 0 {
		return nil, fmt.Errorf("%w: found beat %v", ErrFirstChangeNotAt0, changes[0].beat)
	}

	return &Info{firstBPM: changes[0].bpm, changes: changes[1:]}, nil
}

// TicksToSeconds converts sorted tick positions into seconds from the start
// of the chart. It panics if ticks are unsorted.
func (info *Info) TicksToSeconds(ticks []uint32) []float32 {
	if !slices.IsSorted(ticks) {
		panic("timing: ticks are not sorted ascending")
	}

	seconds := make([]float32, 0, len(ticks))
	var cursorBeat, cursorSecond float64
	beatTime := 60 / info.firstBPM

	i := 0
	// A tick lying exactly on a change is converted with the new tempo.
	convertUpTo := func(limit float64) {
		for ; i < len(ticks); i++ {
			beat := float64(ticks[i]) / TicksPerBeat
			if beat >= limit {
				return
			}
			seconds = append(seconds, float32(cursorSecond+(beat-cursorBeat)*beatTime))
		}
	}

	for _, c := range info.changes {
		convertUpTo(c.beat)
		cursorSecond += beatTime * (c.beat - cursorBeat)
		cursorBeat = c.beat
		beatTime = 60 / c.bpm
	}
	convertUpTo(math.Inf(1))

	return seconds
}

// BPMAt returns the tempo in effect at the given beat.
func (info *Info) BPMAt(beat float64) float64 {
	bpm := info.firstBPM
	for _, c := range info.changes {
		if c.beat > beat {
			break
		}
		bpm = c.bpm
	}
	return bpm
}
