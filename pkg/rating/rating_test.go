package rating_test

import (
	"math"
	"testing"

	"github.com/wifescope/wifescope/pkg/rating"
)

var skillsets = [7]float32{21, 24, 23, 14, 17, 25, 24}

func TestEntryPoints(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"ScoreOverall", rating.ScoreOverall(skillsets), 25.27470016},
		{"PlayerSkillset", rating.PlayerSkillset(skillsets[:]), 21.94499779},
		{"PlayerSkillsetPre070", rating.PlayerSkillsetPre070(skillsets[:]), 21.73599815},
		{"PlayerOverall", rating.PlayerOverall(skillsets), 23.51249886},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(float64(tt.got-tt.want)) > 1e-5 {
				t.Errorf("got %.8f, want %.8f", tt.got, tt.want)
			}
		})
	}
}

func TestCalcMatchesEntryPoints(t *testing.T) {
	if got, want := rating.Calc(skillsets[:], 1.11, 0.25), rating.ScoreOverall(skillsets); got != want {
		t.Errorf("Calc(1.11, 0.25) = %v, ScoreOverall = %v", got, want)
	}
}

func TestCalcIsOrderIndependent(t *testing.T) {
	reversed := make([]float32, len(skillsets))
	for i, v := range skillsets {
		reversed[len(skillsets)-1-i] = v
	}
	a := rating.PlayerSkillset(skillsets[:])
	b := rating.PlayerSkillset(reversed)
	// Summation order may shift the result by at most one final resolution step.
	if math.Abs(float64(a-b)) > 0.011 {
		t.Errorf("rating depends on order: %v vs %v", a, b)
	}
}

func TestCalcIsMonotonic(t *testing.T) {
	base := rating.PlayerSkillset(skillsets[:])

	better := skillsets
	better[3] = 30
	if got := rating.PlayerSkillset(better[:]); got < base {
		t.Errorf("raising a value lowered the rating: %v < %v", got, base)
	}

	more := append(skillsets[:], 26)
	if got := rating.PlayerSkillset(more); got < base {
		t.Errorf("adding a score lowered the rating: %v < %v", got, base)
	}
}

func TestCalcEmpty(t *testing.T) {
	// Nothing ever exceeds the budget, so only the final bias remains.
	got := rating.Calc(nil, 1, 0.1)
	want := float32(10.24 / 2048 * 2)
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("Calc(nil) = %v, want %v", got, want)
	}
}

func TestCalcTerminatesOnInfinity(t *testing.T) {
	values := []float32{20, float32(math.Inf(1))}
	got := rating.PlayerSkillset(values)
	if math.IsNaN(float64(got)) || got <= 0 {
		t.Errorf("PlayerSkillset with +Inf = %v, want a large positive rating", got)
	}
}

func TestCalcIgnoresNaN(t *testing.T) {
	withNaN := append(skillsets[:], float32(math.NaN()))
	if got, want := rating.PlayerSkillset(withNaN), rating.PlayerSkillset(skillsets[:]); got != want {
		t.Errorf("NaN changed the rating: %v vs %v", got, want)
	}
}
