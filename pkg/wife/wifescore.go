package wife

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWifescore is returned for NaN, infinite or above-maximum proportions.
var ErrInvalidWifescore = errors.New("invalid wifescore")

// Wifescore is an accuracy value in the range (-Inf, 1.0]. Negative values
// are legal: heavy mine hits can push a score below zero.
type Wifescore struct {
	proportion float32
}

// FromProportion validates a score on the 0..1 scale.
func FromProportion(p float32) (Wifescore, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) || p > 1.0 {
		return Wifescore{}, fmt.Errorf("%w: %v", ErrInvalidWifescore, p)
	}
	return Wifescore{proportion: p}, nil
}

// FromPercent validates a score on the 0..100 scale.
func FromPercent(p float32) (Wifescore, error) {
	return FromProportion(p / 100)
}

// MustFromProportion is like FromProportion but panics on invalid input.
func MustFromProportion(p float32) Wifescore {
	ws, err := FromProportion(p)
	if err != nil {
		panic(err)
	}
	return ws
}

func (w Wifescore) Proportion() float32 { return w.proportion }
func (w Wifescore) Percent() float32    { return w.proportion * 100 }

// Compare returns -1, 0 or +1. Wifescores are never NaN so the order is total.
func (w Wifescore) Compare(other Wifescore) int {
	switch {
	case w.proportion < other.proportion:
		return -1
	case w.proportion > other.proportion:
		return 1
	default:
		return 0
	}
}

func (w Wifescore) String() string {
	return fmt.Sprintf("%.2f%%", w.Percent())
}

// Grade is the letter grade for a wifescore.
type Grade string

const (
	GradeD     Grade = "D"
	GradeC     Grade = "C"
	GradeB     Grade = "B"
	GradeA     Grade = "A"
	GradeAA    Grade = "AA"
	GradeAAA   Grade = "AAA"
	GradeAAAA  Grade = "AAAA"
	GradeAAAAA Grade = "AAAAA"
)

// Grade maps the wifescore to the grade shown on the evaluation screen.
func (w Wifescore) Grade() Grade {
	p := w.proportion
	switch {
	case p >= 0.99996:
		return GradeAAAAA
	case p >= 0.99955:
		return GradeAAAA
	case p >= 0.997:
		return GradeAAA
	case p >= 0.93:
		return GradeAA
	case p >= 0.80:
		return GradeA
	case p >= 0.70:
		return GradeB
	case p >= 0.60:
		return GradeC
	default:
		return GradeD
	}
}
