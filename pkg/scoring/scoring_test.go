package scoring_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/scoring"
	"github.com/wifescope/wifescope/pkg/wife"
)

func wife3(deviation float32) float32 {
	return wife.Calc(wife.Wife3{}, judge.HitAt(deviation), judge.J4)
}

func lanescore(s scoring.System, lane scoring.Lane) float32 {
	r := s.Evaluate(lane, judge.J4, wife.Wife3{})
	return r.WifescoreSum / float32(r.NumJudgedNotes)
}

func TestScoringSystems(t *testing.T) {
	tests := []struct {
		name         string
		lane         scoring.Lane
		wantNaive    float32
		wantMatching float32
	}{
		{
			name: "perfect play",
			lane: scoring.Lane{
				NoteSeconds: []float32{1, 2, 3, 4},
				HitSeconds:  []float32{1, 2, 3, 4},
			},
			wantNaive:    wife3(0),
			wantMatching: wife3(0),
		},
		{
			name: "one missed note",
			lane: scoring.Lane{
				NoteSeconds: []float32{1, 2, 3, 4},
				HitSeconds:  []float32{0.9, 3.1, 4.1},
			},
			wantNaive:    (wife3(0.1) + wife3(1) + wife3(0.1) + wife3(0.1)) / 4,
			wantMatching: (wife3(0.1) + wife3(1) + wife3(0.1) + wife3(0.1)) / 4,
		},
		{
			name: "early hit steals a note",
			lane: scoring.Lane{
				NoteSeconds: []float32{0.10, 0.20, 0.30, 0.40},
				HitSeconds:  []float32{0.09, 0.10, 0.30, 0.40},
			},
			wantNaive:    (wife3(0.01) + wife3(0.10) + wife3(0) + wife3(0)) / 4,
			wantMatching: (wife3(0) + wife3(0.11) + wife3(0) + wife3(0)) / 4,
		},
		{
			name: "mashing before the notes",
			lane: scoring.Lane{
				NoteSeconds: []float32{0.05, 0.10, 0.15, 0.20},
				HitSeconds:  []float32{0.01, 0.02, 0.03, 0.04, 0.05, 0.10, 0.15, 0.20},
			},
			wantNaive:    (wife3(0.04) + wife3(0.08) + wife3(0.12) + wife3(0.16)) / 4,
			wantMatching: (wife3(0)*4 + wife3(1)*4) / 8,
		},
		{
			name: "hits all too early",
			lane: scoring.Lane{
				NoteSeconds: []float32{0.05, 0.10, 0.15, 0.20},
				HitSeconds:  []float32{0.01, 0.02, 0.03, 0.04},
			},
			wantNaive:    (wife3(0.04) + wife3(0.08) + wife3(0.12) + wife3(0.16)) / 4,
			wantMatching: (wife3(0.01) + wife3(0.07) + wife3(0.13) + wife3(1) + wife3(1)) / 5,
		},
		{
			name: "no hits",
			lane: scoring.Lane{
				NoteSeconds: []float32{0.05, 0.10, 0.15, 0.20},
			},
			wantNaive:    wife3(1),
			wantMatching: wife3(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lanescore(&scoring.NaiveScorer{}, tt.lane); math.Abs(float64(got-tt.wantNaive)) > 1e-5 {
				t.Errorf("naive = %v, want %v", got, tt.wantNaive)
			}
			if got := lanescore(&scoring.MatchingScorer{}, tt.lane); math.Abs(float64(got-tt.wantMatching)) > 1e-5 {
				t.Errorf("matching = %v, want %v", got, tt.wantMatching)
			}
		})
	}
}

func TestNaiveIgnoresStrayTaps(t *testing.T) {
	lane := scoring.Lane{
		NoteSeconds: []float32{1},
		HitSeconds:  []float32{0.5, 1, 1.5},
	}
	r := (&scoring.NaiveScorer{}).Evaluate(lane, judge.J4, wife.Wife3{})
	if r.NumJudgedNotes != 1 {
		t.Errorf("NumJudgedNotes = %d, want 1", r.NumJudgedNotes)
	}
	if r.WifescoreSum != 1 {
		t.Errorf("WifescoreSum = %v, want 1", r.WifescoreSum)
	}
}

func TestNaiveEquidistantPrefersEarlierNote(t *testing.T) {
	// The first hit sits exactly halfway between both notes. If it claims the
	// earlier note, the second hit can still reach the later one.
	lane := scoring.Lane{
		NoteSeconds: []float32{1.0, 1.125},
		HitSeconds:  []float32{1.0625, 1.25},
	}
	r := (&scoring.NaiveScorer{}).Evaluate(lane, judge.J4, wife.Wife3{})
	want := wife3(0.0625) + wife3(0.125)
	if r.WifescoreSum != want {
		t.Errorf("WifescoreSum = %v, want %v", r.WifescoreSum, want)
	}
}

func TestUnsortedLanePanics(t *testing.T) {
	for _, s := range scoring.DefaultSystems() {
		t.Run(s.Name(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on unsorted hits")
				}
			}()
			s.Evaluate(scoring.Lane{NoteSeconds: []float32{1, 2}, HitSeconds: []float32{2, 1}}, judge.J4, wife.Wife3{})
		})
	}
}

func TestRescore(t *testing.T) {
	lanes := []scoring.Lane{
		{NoteSeconds: []float32{1, 2}, HitSeconds: []float32{1, 2}},
		{NoteSeconds: []float32{1.5}, HitSeconds: nil},
		{},
		{NoteSeconds: []float32{3}, HitSeconds: []float32{3}},
	}
	w := wife.Wife3{}

	ws, err := scoring.Rescore(lanes, 1, 1, judge.J4, &scoring.NaiveScorer{}, w)
	if err != nil {
		t.Fatal(err)
	}
	want := (3 + w.MissWeight() + w.MineHitWeight() + w.HoldDropWeight()) / 4
	if math.Abs(float64(ws.Proportion()-want)) > 1e-5 {
		t.Errorf("Rescore = %v, want %v", ws.Proportion(), want)
	}
}

func TestRescoreEmpty(t *testing.T) {
	_, err := scoring.Rescore([]scoring.Lane{{}, {}}, 0, 0, judge.J4, &scoring.MatchingScorer{}, wife.Wife3{})
	if !errors.Is(err, scoring.ErrNoJudgedNotes) {
		t.Errorf("error = %v, want ErrNoJudgedNotes", err)
	}
}

func TestRescoreStricterJudge(t *testing.T) {
	lanes := []scoring.Lane{
		{NoteSeconds: []float32{1, 2, 3}, HitSeconds: []float32{1.01, 1.98, 3.03}},
	}
	j4, err := scoring.Rescore(lanes, 0, 0, judge.J4, &scoring.MatchingScorer{}, wife.Wife3{})
	if err != nil {
		t.Fatal(err)
	}
	j7, err := scoring.Rescore(lanes, 0, 0, judge.J7, &scoring.MatchingScorer{}, wife.Wife3{})
	if err != nil {
		t.Fatal(err)
	}
	if j7.Compare(j4) >= 0 {
		t.Errorf("J7 %v should score below J4 %v", j7, j4)
	}
}

func TestRescoreFromNoteHits(t *testing.T) {
	hits := []judge.Hit{judge.HitAt(0), judge.HitAt(-0.001), judge.MissedHit(), judge.HitAt(0.003)}
	ws, err := scoring.RescoreFromNoteHits(hits, 0, 0, judge.J4, wife.Wife3{})
	if err != nil {
		t.Fatal(err)
	}
	if want := float32(3-2.75) / 4; math.Abs(float64(ws.Proportion()-want)) > 1e-6 {
		t.Errorf("RescoreFromNoteHits = %v, want %v", ws.Proportion(), want)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"naive", "Matching"} {
		if _, err := scoring.ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := scoring.ByName("hungarian"); err == nil {
		t.Error("expected error for unknown system")
	}
}
