package skillset_test

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wifescope/wifescope/pkg/rating"
	"github.com/wifescope/wifescope/pkg/skillset"
)

func uniform(v float32) skillset.Skillsets7 {
	return skillset.Skillsets7{v, v, v, v, v, v, v}
}

func history() []skillset.Entry[string] {
	return []skillset.Entry[string]{
		{Key: "day1", Skillsets: uniform(20)},
		{Key: "day1", Skillsets: uniform(21)},
		{Key: "day1", Skillsets: uniform(22)},
		{Key: "day2", Skillsets: uniform(25)},
		{Key: "day2", Skillsets: uniform(26)},
	}
}

func TestTimelineGrouping(t *testing.T) {
	tl := skillset.TimelineFromSlice(history(), skillset.TimelineOptions{})

	if diff := cmp.Diff([]string{"day1", "day2"}, tl.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	day1 := rating.PlayerSkillset([]float32{20, 21, 22})
	all := rating.PlayerSkillset([]float32{20, 21, 22, 25, 26})
	if got := tl.Changes[0].Skillsets.Get(skillset.Stream); got != day1 {
		t.Errorf("day1 stream = %v, want %v", got, day1)
	}
	if got := tl.Changes[1].Skillsets.Get(skillset.Technical); got != all {
		t.Errorf("day2 technical = %v, want prefix rating over all 5 scores %v", got, all)
	}

	final, ok := tl.Final()
	if !ok {
		t.Fatal("expected a final change")
	}
	want := final.Skillsets.Skillsets7().PlayerOverall()
	if final.Skillsets.Get(skillset.Overall) != want {
		t.Errorf("overall = %v, want %v", final.Skillsets.Get(skillset.Overall), want)
	}
}

func TestTimelinePre070(t *testing.T) {
	tl := skillset.TimelineFromSlice(history(), skillset.TimelineOptions{Pre070: true})
	final, _ := tl.Final()

	want := rating.PlayerSkillsetPre070([]float32{20, 21, 22, 25, 26})
	if got := final.Skillsets.Get(skillset.Jackspeed); got != want {
		t.Errorf("jackspeed = %v, want %v", got, want)
	}
	if got := final.Skillsets.Get(skillset.Overall); got != final.Skillsets.Skillsets7().PlayerOverallPre070() {
		t.Errorf("overall = %v, want the mean of the skillsets", got)
	}
}

func TestTimelineNonContiguousKeys(t *testing.T) {
	entries := []skillset.Entry[int]{
		{Key: 1, Skillsets: uniform(10)},
		{Key: 2, Skillsets: uniform(11)},
		{Key: 1, Skillsets: uniform(12)},
	}
	tl := skillset.TimelineFromSlice(entries, skillset.TimelineOptions{})
	if diff := cmp.Diff([]int{1, 2, 1}, tl.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestTimelineEmpty(t *testing.T) {
	tl := skillset.TimelineFromSlice[string](nil, skillset.TimelineOptions{})
	if len(tl.Changes) != 0 {
		t.Errorf("expected no changes, got %d", len(tl.Changes))
	}
	if _, ok := tl.Final(); ok {
		t.Error("Final() on empty timeline should report false")
	}
}

func TestTimelineWorkersDoNotChangeResult(t *testing.T) {
	var entries []skillset.Entry[int]
	for i := range 60 {
		entries = append(entries, skillset.Entry[int]{
			Key:       i / 4,
			Skillsets: skillset.Skillsets7{float32(10 + i%7), float32(12 + i%5), 15, float32(9 + i%11), 14, 13, float32(8 + i%3)},
		})
	}

	serial := skillset.TimelineFromSlice(entries, skillset.TimelineOptions{Workers: 1})
	parallel := skillset.TimelineFromSlice(entries, skillset.TimelineOptions{Workers: 8})
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("parallel timeline differs (-serial +parallel):\n%s", diff)
	}
	if len(serial.Changes) != 15 {
		t.Errorf("got %d changes, want 15", len(serial.Changes))
	}
}

func TestCalculateTimelineFromIterator(t *testing.T) {
	var seq iter.Seq2[string, skillset.Skillsets7] = func(yield func(string, skillset.Skillsets7) bool) {
		for _, e := range history() {
			if !yield(e.Key, e.Skillsets) {
				return
			}
		}
	}
	got := skillset.CalculateTimeline(seq, skillset.TimelineOptions{Workers: 2})
	want := skillset.TimelineFromSlice(history(), skillset.TimelineOptions{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
