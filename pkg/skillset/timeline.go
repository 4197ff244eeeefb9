package skillset

import (
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wifescope/wifescope/pkg/rating"
)

// Change is one snapshot of a player's ratings, taken after the last score
// of the group identified by Key.
type Change[K comparable] struct {
	Key       K          `json:"key"`
	Skillsets Skillsets8 `json:"skillsets"`
}

// Timeline is a player's ratings over time, one change per group.
type Timeline[K comparable] struct {
	Changes []Change[K] `json:"changes"`
}

// TimelineOptions configures CalculateTimeline.
type TimelineOptions struct {
	// Pre070 selects the rating formulas used before Etterna 0.70.
	Pre070 bool
	// Workers bounds the number of group snapshots computed concurrently.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

type boundary[K comparable] struct {
	key K
	end int
}

// CalculateTimeline computes a player's ratings after each group of scores.
// Entries are (group key, score skillsets) pairs; scores sharing a key must be
// contiguous, usually because they were set on the same day. Each snapshot
// covers every score up to and including the end of its group.
func CalculateTimeline[K comparable](entries iter.Seq2[K, Skillsets7], opts TimelineOptions) Timeline[K] {
	var columns [7][]float32
	var boundaries []boundary[K]

	var prev K
	n := 0
	for key, ss := range entries {
		if n > 0 && key != prev {
			boundaries = append(boundaries, boundary[K]{key: prev, end: n})
		}
		for i, v := range ss {
			columns[i] = append(columns[i], v)
		}
		prev = key
		n++
	}
	if n > 0 {
		boundaries = append(boundaries, boundary[K]{key: prev, end: n})
	}

	skillsetRating := rating.PlayerSkillset
	overall := Skillsets7.PlayerOverall
	if opts.Pre070 {
		skillsetRating = rating.PlayerSkillsetPre070
		overall = Skillsets7.PlayerOverallPre070
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	changes := make([]Change[K], len(boundaries))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, b := range boundaries {
		g.Go(func() error {
			var ratings Skillsets7
			for ss := range ratings {
				ratings[ss] = skillsetRating(columns[ss][:b.end])
			}
			changes[i] = Change[K]{Key: b.key, Skillsets: ratings.WithOverall(overall(ratings))}
			return nil
		})
	}
	// Tasks never fail.
	_ = g.Wait()

	return Timeline[K]{Changes: changes}
}

// Entry is one score in a player's history: its group key and skillsets.
type Entry[K comparable] struct {
	Key       K          `json:"key"`
	Skillsets Skillsets7 `json:"skillsets"`
}

// TimelineFromSlice is CalculateTimeline over a slice of entries.
func TimelineFromSlice[K comparable](entries []Entry[K], opts TimelineOptions) Timeline[K] {
	return CalculateTimeline[K](func(yield func(K, Skillsets7) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Skillsets) {
				return
			}
		}
	}, opts)
}

// Final returns the last snapshot, or false for an empty timeline.
func (t Timeline[K]) Final() (Change[K], bool) {
	if len(t.Changes) == 0 {
		return Change[K]{}, false
	}
	return t.Changes[len(t.Changes)-1], true
}

// Keys lists the group keys in order.
func (t Timeline[K]) Keys() []K {
	keys := make([]K, 0, len(t.Changes))
	for _, c := range t.Changes {
		keys = append(keys, c.Key)
	}
	return keys
}
