package wife

import (
	"math"

	"github.com/wifescope/wifescope/pkg/judge"
)

// Wife3 is the curve introduced in Etterna 0.70. Internally the maximum is 2
// and the miss weight -5.5; everything is halved on the way out.
type Wife3 struct{}

const wife3InnerMissWeight = -5.5

func (Wife3) Name() string            { return "wife3" }
func (Wife3) MissWeight() float32     { return wife3InnerMissWeight / 2 }
func (Wife3) HoldDropWeight() float32 { return -4.5 / 2 }
func (Wife3) MineHitWeight() float32  { return -7.0 / 2 }

func (Wife3) CalcDeviation(deviation float32, j *judge.Judge) float32 {
	const maxPoints = 2.0
	ts := j.TimingScale

	ridic := float32(5 * ts)
	maxBooWeight := float32(180 * ts)
	maxms := abs32(float32(deviation * 1000))

	if maxms <= ridic {
		return maxPoints / 2
	}

	tsPow := float32(math.Pow(float64(ts), 0.75))
	zero := float32(65 * tsPow)
	dev := float32(22.7 * tsPow)

	var score float32
	switch {
	case maxms <= zero:
		score = maxPoints * erf32(float32(zero-maxms)/dev)
	case maxms <= maxBooWeight:
		score = float32(float32(maxms-zero)*wife3InnerMissWeight) / float32(maxBooWeight-zero)
	default:
		score = wife3InnerMissWeight
	}

	return score / 2
}

func erf32(x float32) float32 {
	return float32(math.Erf(float64(x)))
}
