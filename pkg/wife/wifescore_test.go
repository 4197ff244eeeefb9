package wife_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wifescope/wifescope/pkg/wife"
)

func TestFromProportion(t *testing.T) {
	tests := []struct {
		name    string
		p       float32
		wantErr bool
	}{
		{"max", 1.0, false},
		{"zero", 0, false},
		{"negative", -5, false},
		{"above max", 1.0001, true},
		{"nan", float32(math.NaN()), true},
		{"positive infinity", float32(math.Inf(1)), true},
		{"negative infinity", float32(math.Inf(-1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wife.FromProportion(tt.p)
			if tt.wantErr && !errors.Is(err, wife.ErrInvalidWifescore) {
				t.Errorf("FromProportion(%v) error = %v, want ErrInvalidWifescore", tt.p, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("FromProportion(%v) unexpected error: %v", tt.p, err)
			}
		})
	}
}

func TestFromPercent(t *testing.T) {
	ws, err := wife.FromPercent(93.5)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(ws.Proportion(), 0.935) {
		t.Errorf("Proportion() = %v", ws.Proportion())
	}
	if _, err := wife.FromPercent(100.5); err == nil {
		t.Error("expected error above 100%")
	}
}

func TestWifescoreString(t *testing.T) {
	if got := wife.MustFromProportion(0.93124).String(); got != "93.12%" {
		t.Errorf("String() = %q, want 93.12%%", got)
	}
	if got := wife.MustFromProportion(1).String(); got != "100.00%" {
		t.Errorf("String() = %q, want 100.00%%", got)
	}
}

func TestCompare(t *testing.T) {
	a := wife.MustFromProportion(0.9)
	b := wife.MustFromProportion(0.95)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare does not order wifescores")
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		p    float32
		want wife.Grade
	}{
		{1.0, wife.GradeAAAAA},
		{0.99997, wife.GradeAAAAA},
		{0.9996, wife.GradeAAAA},
		{0.998, wife.GradeAAA},
		{0.95, wife.GradeAA},
		{0.85, wife.GradeA},
		{0.75, wife.GradeB},
		{0.65, wife.GradeC},
		{0.3, wife.GradeD},
		{-1, wife.GradeD},
	}
	for _, tt := range tests {
		if got := wife.MustFromProportion(tt.p).Grade(); got != tt.want {
			t.Errorf("Grade(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
