package scoring

import (
	"cmp"
	"slices"
	"sort"

	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/wife"
)

// MatchingScorer finds the assignment of hits to notes that favours the
// closest pairs, independent of the order hits arrive in. Mashing is
// punished: every hit that is left without a note counts as an extra judged
// note worth the miss weight.
//
// Candidate pairs within the bad window are claimed greedily by ascending
// deviation. Ties go to the earlier hit, then the earlier note.
type MatchingScorer struct{}

type candidate struct {
	hit, note int
	deviation float32
}

func (s *MatchingScorer) Name() string { return "matching" }

func (s *MatchingScorer) Evaluate(lane Lane, j *judge.Judge, w wife.Wife) Result {
	mustBeSorted(lane)

	notes, hits := lane.NoteSeconds, lane.HitSeconds

	var candidates []candidate
	for h, hit := range hits {
		start := sort.Search(len(notes), func(i int) bool { return hit-notes[i] <= j.Bad })
		for n := start; n < len(notes); n++ {
			deviation := abs32(hit - notes[n])
			if deviation > j.Bad {
				if notes[n] >= hit {
					break
				}
				continue
			}
			candidates = append(candidates, candidate{hit: h, note: n, deviation: deviation})
		}
	}

	// Candidates were generated in (hit, note) order; a stable sort keeps it for ties.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.deviation, b.deviation)
	})

	hitClaimed := make([]bool, len(hits))
	noteClaimed := make([]bool, len(notes))

	var sum float32
	for _, c := range candidates {
		if hitClaimed[c.hit] || noteClaimed[c.note] {
			continue
		}
		hitClaimed[c.hit] = true
		noteClaimed[c.note] = true
		sum += w.CalcDeviation(c.deviation, j)
	}

	judged := uint64(len(notes))
	for _, claimed := range noteClaimed {
		if !claimed {
			sum += w.MissWeight()
		}
	}
	for _, claimed := range hitClaimed {
		if !claimed {
			sum += w.MissWeight()
			judged++
		}
	}

	return Result{
		WifescoreSum:   sum,
		NumJudgedNotes: judged,
	}
}
