package combo_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/wifescope/wifescope/pkg/combo"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func ones(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func TestFastestNoteSubset(t *testing.T) {
	tests := []struct {
		name       string
		seconds    []float32
		minNotes   uint32
		maxNotes   uint32
		wantLength uint32
		wantSpeed  float32
	}{
		{"short window", []float32{0, 3, 5, 6, 8}, 2, 99, 2, 0.6666666},
		{"longer minimum", []float32{0, 3, 5, 6, 8}, 3, 99, 3, 0.6},
		// The six note window is faster than any five note window.
		{"longer window wins", []float32{0, 0, 1, 2, 3, 4, 4}, 5, 6, 6, 1.5},
		{"capped window", []float32{0, 0, 1, 2, 3, 4, 4}, 5, 5, 5, 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := combo.FastestNoteSubset(tt.seconds, tt.minNotes, tt.maxNotes)
			weighted := combo.FastestNoteSubsetWifePts(tt.seconds, tt.minNotes, tt.maxNotes, ones(len(tt.seconds)))

			if diff := cmp.Diff(plain, weighted, approx); diff != "" {
				t.Errorf("unit wife points should not change the result (-plain +weighted):\n%s", diff)
			}
			if plain.Length != tt.wantLength {
				t.Errorf("Length = %d, want %d", plain.Length, tt.wantLength)
			}
			if !cmp.Equal(plain.Speed, tt.wantSpeed, approx) {
				t.Errorf("Speed = %v, want %v", plain.Speed, tt.wantSpeed)
			}
		})
	}
}

func TestFastestNoteSubsetTooShort(t *testing.T) {
	got := combo.FastestNoteSubset([]float32{1, 2, 3}, 3, 10)
	if got != (combo.Info{}) {
		t.Errorf("got %+v, want zero Info", got)
	}
}

func TestFastestNoteSubsetWifePtsWeighting(t *testing.T) {
	seconds := []float32{0, 1, 2, 3, 4}
	pts := []float32{0.5, 0.5, 0.5, 0.5, 0.5}
	got := combo.FastestNoteSubsetWifePts(seconds, 4, 4, pts)
	if !cmp.Equal(got.Speed, float32(0.5), approx) {
		t.Errorf("Speed = %v, want 0.5", got.Speed)
	}
}

func TestFastestComboInScore(t *testing.T) {
	// Two combos: a slow one and a fast one after the combo breaker at index 4.
	seconds := []float32{0, 1, 2, 3, 3.5, 4, 4.25, 4.5, 4.75, 5}
	cbs := make([]bool, len(seconds))
	cbs[4] = true

	got := combo.FastestComboInScore(seconds, cbs, 2, 10, nil, 1)
	want := combo.Info{StartSecond: 4, EndSecond: 5, Length: 4, Speed: 4}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	rated := combo.FastestComboInScore(seconds, cbs, 2, 10, nil, 1.5)
	if !cmp.Equal(rated.Speed, float32(6), approx) {
		t.Errorf("rate-scaled speed = %v, want 6", rated.Speed)
	}

	weighted := combo.FastestComboInScore(seconds, cbs, 2, 10, ones(len(seconds)), 1)
	if diff := cmp.Diff(got, weighted, approx); diff != "" {
		t.Errorf("unit wife points changed the result (-plain +weighted):\n%s", diff)
	}
}

func TestPreconditionsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"unsorted", func() { combo.FastestNoteSubset([]float32{2, 1}, 1, 2) }},
		{"max below min", func() { combo.FastestNoteSubset([]float32{1, 2}, 3, 2) }},
		{"wife pts length", func() { combo.FastestNoteSubsetWifePts([]float32{1, 2}, 1, 2, []float32{1}) }},
		{"cb length", func() { combo.FastestComboInScore([]float32{1, 2}, []bool{false}, 1, 2, nil, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestLongestTrueSequence(t *testing.T) {
	tests := []struct {
		in   []bool
		want uint32
	}{
		{nil, 0},
		{[]bool{false, false}, 0},
		{[]bool{true, true, false, true, true, true, false, true}, 3},
		{[]bool{true, true, true, true}, 4},
	}
	for _, tt := range tests {
		if got := combo.LongestTrueSequence(slices.Values(tt.in)); got != tt.want {
			t.Errorf("LongestTrueSequence(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
