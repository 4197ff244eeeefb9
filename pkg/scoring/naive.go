package scoring

import (
	"math"
	"sort"

	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/wife"
)

// NaiveScorer maps hits to notes in input order, the way most mania rhythm
// games do. It replicates Etterna's in-game wifescore exactly.
//
// Each hit claims the nearest unclaimed note within the bad window. Notes
// left unclaimed are misses. Hits that find no note are ignored.
type NaiveScorer struct{}

func (s *NaiveScorer) Name() string { return "naive" }

func (s *NaiveScorer) Evaluate(lane Lane, j *judge.Judge, w wife.Wife) Result {
	mustBeSorted(lane)

	notes := lane.NoteSeconds
	claimed := make([]bool, len(notes))

	var sum float32
	for _, hit := range lane.HitSeconds {
		best := -1
		bestDeviation := float32(math.Inf(1))

		start := sort.Search(len(notes), func(i int) bool { return hit-notes[i] <= j.Bad })
		for i := start; i < len(notes); i++ {
			deviation := abs32(hit - notes[i])
			if deviation > j.Bad {
				if notes[i] >= hit {
					break
				}
				continue
			}
			if claimed[i] {
				continue
			}
			// Strict comparison keeps the earliest of two equidistant notes.
			if deviation < bestDeviation {
				best = i
				bestDeviation = deviation
			}
		}

		if best < 0 {
			continue
		}
		claimed[best] = true
		sum += w.CalcDeviation(bestDeviation, j)
	}

	for _, c := range claimed {
		if !c {
			sum += w.MissWeight()
		}
	}

	return Result{
		WifescoreSum:   sum,
		NumJudgedNotes: uint64(len(notes)),
	}
}
