// Package wife implements Etterna's Wife accuracy curves, which turn a hit
// deviation into a per-note score between the miss weight and 1.
package wife

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/wifescope/wifescope/pkg/judge"
)

// Wife is a wifescore algorithm: a curve over hit deviations plus the
// penalties for misses, mine hits and dropped holds. All weights are
// expressed relative to a maximum of 1 per note.
type Wife interface {
	// Name returns the machine identifier: "wife2", "wife3".
	Name() string
	MissWeight() float32
	MineHitWeight() float32
	HoldDropWeight() float32
	// CalcDeviation scores a hit deviation in seconds. The sign is ignored.
	// The bad window is not consulted; see Calc.
	CalcDeviation(deviation float32, j *judge.Judge) float32
}

// ErrNoHits is returned by Apply when there is nothing to average over.
var ErrNoHits = errors.New("no hits to score")

// Calc scores a single hit. Misses, and hits outside the judge's bad window,
// receive the miss weight.
func Calc(w Wife, hit judge.Hit, j *judge.Judge) float32 {
	if hit.Missed || hit.IsMiss(j) {
		return w.MissWeight()
	}
	return w.CalcDeviation(hit.Deviation, j)
}

// Apply averages the scores of all hits, then folds in the mine hit and hold
// drop penalties. Misses must be present in hits.
func Apply(w Wife, hits []judge.Hit, mineHits, holdDrops uint32, j *judge.Judge) (Wifescore, error) {
	if len(hits) == 0 {
		return Wifescore{}, ErrNoHits
	}

	var sum float32
	for _, h := range hits {
		sum += Calc(w, h, j)
	}
	sum += float32(mineHits) * w.MineHitWeight()
	sum += float32(holdDrops) * w.HoldDropWeight()

	return FromProportion(sum / float32(len(hits)))
}

// ByName returns the wife algorithm with the given name.
func ByName(name string) (Wife, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wife2":
		return Wife2{}, nil
	case "wife3":
		return Wife3{}, nil
	default:
		return nil, fmt.Errorf("unknown wife algorithm %q (want wife2 or wife3)", name)
	}
}

// pow2 computes 2^x in double precision, as the game does, and rounds back.
func pow2(x float32) float32 {
	return float32(math.Pow(2, float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
