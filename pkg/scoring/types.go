// Package scoring implements per-lane scoring systems and rescoring of
// replays under a different judge or wife algorithm.
package scoring

import (
	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/wife"
)

// Lane holds the note and hit timestamps of a single column, in seconds.
// Both slices must be sorted ascending.
type Lane struct {
	NoteSeconds []float32 `json:"note_seconds"`
	HitSeconds  []float32 `json:"hit_seconds"`
}

// Result is the output of evaluating a scoring system on one lane.
type Result struct {
	WifescoreSum   float32 `json:"wifescore_sum"`
	NumJudgedNotes uint64  `json:"num_judged_notes"`
}

// Add accumulates another lane's result.
func (r *Result) Add(other Result) {
	r.WifescoreSum += other.WifescoreSum
	r.NumJudgedNotes += other.NumJudgedNotes
}

// System assigns hits to notes within one lane and sums up the wife points.
// Implementations panic if either slice of the lane is unsorted.
type System interface {
	// Name returns the machine-readable identifier: "naive", "matching".
	Name() string
	// Evaluate scores every note and hit of the lane.
	Evaluate(lane Lane, j *judge.Judge, w wife.Wife) Result
}

func mustBeSorted(lane Lane) {
	if !isSorted(lane.NoteSeconds) {
		panic("scoring: note seconds are not sorted ascending")
	}
	if !isSorted(lane.HitSeconds) {
		panic("scoring: hit seconds are not sorted ascending")
	}
}

func isSorted(s []float32) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
