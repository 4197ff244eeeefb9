package wife

import "github.com/wifescope/wifescope/pkg/judge"

// Wife2 is the second revision of Etterna's wife curve, used before 0.70.
// Its internal weights (-8 miss, -6 hold drop, -8 mine) are halved to
// scale the maximum to 1.
type Wife2 struct{}

func (Wife2) Name() string            { return "wife2" }
func (Wife2) MissWeight() float32     { return -8.0 / 2 }
func (Wife2) HoldDropWeight() float32 { return -6.0 / 2 }
func (Wife2) MineHitWeight() float32  { return -8.0 / 2 }

func (Wife2) CalcDeviation(deviation float32, j *judge.Judge) float32 {
	maxms := abs32(float32(deviation * 1000))
	avedeviation := float32(95 * j.TimingScale)
	y := float32(1 - pow2(float32(-maxms*maxms)/float32(avedeviation*avedeviation)))
	y = float32(y * y)
	score := float32(float32(2-(-8))*float32(1-y)) + -8

	return score / 2
}
