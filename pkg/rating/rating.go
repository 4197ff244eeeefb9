// Package rating aggregates many skill values into a single rating, the way
// Etterna computes a player's skillset ratings and a score's overall.
//
// The aggregation looks for the lowest rating R for which the "power sum" of
// all values stays below 2^(R/10). Values well above R contribute a lot of
// power, values below R contribute nothing, so the result is dominated by a
// player's best scores without being a plain maximum.
package rating

import "math"

const (
	numIterations     = 11
	initialResolution = 10.24
)

// MaxStepsPerPass caps the number of increments per resolution pass. Real
// inputs need a handful of steps; the cap only matters for infinite or
// absurdly large values, which would otherwise never satisfy the okay test.
const MaxStepsPerPass = 1 << 16

// Calc runs the iterative power-sum search over values. Order of values does
// not matter beyond float rounding. An empty input yields 2*resolution*final,
// the smallest rating the search can return.
func Calc(values []float32, finalMultiplier, deltaMultiplier float32) float32 {
	var rating float32
	resolution := float32(initialResolution)

	for range numIterations {
		for steps := 0; steps < MaxStepsPerPass && !isRatingOkay(rating+resolution, values, deltaMultiplier); steps++ {
			rating += resolution
		}
		resolution /= 2
	}
	// Land slightly above the target rather than below it.
	rating += float32(resolution * 2)

	return float32(rating * finalMultiplier)
}

func isRatingOkay(rating float32, values []float32, deltaMultiplier float32) bool {
	maxPowerSum := float32(math.Pow(2, float64(float32(rating*0.1))))

	var powerSum float32
	for _, v := range values {
		x := float32(2/erfc32(float32(deltaMultiplier*float32(v-rating))) - 2)
		if x > 0 {
			powerSum += x
		}
	}

	return powerSum < maxPowerSum
}

func erfc32(x float32) float32 {
	return float32(math.Erfc(float64(x)))
}

// ScoreOverall aggregates the seven skillset values of a single score into
// its overall rating.
func ScoreOverall(skillsets [7]float32) float32 {
	return Calc(skillsets[:], 1.11, 0.25)
}

// PlayerSkillset aggregates a player's scores in one skillset into their
// rating for that skillset.
func PlayerSkillset(values []float32) float32 {
	return Calc(values, 1.05, 0.1)
}

// PlayerSkillsetPre070 is PlayerSkillset as computed before Etterna 0.70.
func PlayerSkillsetPre070(values []float32) float32 {
	return Calc(values, 1.04, 0.1)
}

// PlayerOverall aggregates a player's seven skillset ratings into their
// overall rating.
func PlayerOverall(skillsets [7]float32) float32 {
	return Calc(skillsets[:], 1.125, 0.1)
}
