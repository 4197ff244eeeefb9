package scoring

import (
	"errors"
	"fmt"

	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/wife"
)

// ErrNoJudgedNotes is returned when the lanes contain no notes and no hits.
var ErrNoJudgedNotes = errors.New("no judged notes")

// Rescore evaluates every lane with the given system and combines the lane
// results with the mine hit and hold drop penalties into a wifescore.
//
// Rescore panics if any lane is unsorted.
func Rescore(lanes []Lane, mineHits, holdDrops uint32, j *judge.Judge, s System, w wife.Wife) (wife.Wifescore, error) {
	var total Result
	for _, lane := range lanes {
		mustBeSorted(lane)
		total.Add(s.Evaluate(lane, j, w))
	}

	if total.NumJudgedNotes == 0 {
		return wife.Wifescore{}, ErrNoJudgedNotes
	}

	total.WifescoreSum += w.MineHitWeight() * float32(mineHits)
	total.WifescoreSum += w.HoldDropWeight() * float32(holdDrops)

	ws, err := wife.FromProportion(total.WifescoreSum / float32(total.NumJudgedNotes))
	if err != nil {
		return wife.Wifescore{}, fmt.Errorf("rescoring with %s/%s: %w", s.Name(), w.Name(), err)
	}
	return ws, nil
}

// RescoreFromNoteHits computes a wifescore from a replay's note hits. The
// scoring system is already baked into the hits, so only the judge and wife
// algorithm can change. This is the preferred API for plain judge conversion.
func RescoreFromNoteHits(hits []judge.Hit, mineHits, holdDrops uint32, j *judge.Judge, w wife.Wife) (wife.Wifescore, error) {
	return wife.Apply(w, hits, mineHits, holdDrops, j)
}
