package judge

import "fmt"

// TapJudgement is the outcome of a single tap, from best to worst.
type TapJudgement int

const (
	Marvelous TapJudgement = iota
	Perfect
	Great
	Good
	Bad
	Miss
)

var tapJudgementNames = [...]string{"Marvelous", "Perfect", "Great", "Good", "Bad", "Miss"}

func (t TapJudgement) String() string {
	if t < Marvelous || t > Miss {
		return fmt.Sprintf("TapJudgement(%d)", int(t))
	}
	return tapJudgementNames[t]
}

// Color returns the judgement's RGB color in Etterna's default theme.
func (t TapJudgement) Color() (r, g, b uint8) {
	switch t {
	case Marvelous:
		return 0x99, 0xCC, 0xFF
	case Perfect:
		return 0xF2, 0xCB, 0x30
	case Great:
		return 0x14, 0xCC, 0x8F
	case Good:
		return 0x1A, 0xB2, 0xFF
	case Bad:
		return 0xFF, 0x1A, 0xB3
	default:
		return 0xCC, 0x29, 0x29
	}
}

// Hit is the outcome of a single note: either a signed deviation in seconds or
// a miss. The zero value is a perfectly centred hit.
type Hit struct {
	Deviation float32 `json:"deviation"`
	Missed    bool    `json:"missed,omitempty"`
}

// HitAt returns a hit with the given deviation.
func HitAt(deviation float32) Hit {
	return Hit{Deviation: deviation}
}

// MissedHit returns a hit that never happened.
func MissedHit() Hit {
	return Hit{Missed: true}
}

// Classify returns Miss for a missed hit and the judge's classification otherwise.
func (h Hit) Classify(j *Judge) TapJudgement {
	if h.Missed {
		return Miss
	}
	return j.Classify(h.Deviation)
}

// IsWithinWindow reports whether the hit landed inside the given window.
// A missed hit is never within any window.
func (h Hit) IsWithinWindow(window float32) bool {
	if h.Missed {
		return false
	}
	return abs32(h.Deviation) <= window
}

// IsCB reports whether the hit breaks combo. Misses always do.
func (h Hit) IsCB(j *Judge) bool {
	if h.Missed {
		return true
	}
	return j.IsCB(h.Deviation)
}

func (h Hit) IsMarv(j *Judge) bool  { return h.Classify(j) == Marvelous }
func (h Hit) IsPerf(j *Judge) bool  { return h.Classify(j) == Perfect }
func (h Hit) IsGreat(j *Judge) bool { return h.Classify(j) == Great }
func (h Hit) IsGood(j *Judge) bool  { return h.Classify(j) == Good }
func (h Hit) IsBad(j *Judge) bool   { return h.Classify(j) == Bad }
func (h Hit) IsMiss(j *Judge) bool  { return h.Classify(j) == Miss }

func (h Hit) String() string {
	if h.Missed {
		return "miss"
	}
	return fmt.Sprintf("%+.1fms", h.Deviation*1000)
}

// TapJudgements counts taps per judgement.
type TapJudgements struct {
	Marvelouses uint32 `json:"marvelouses"`
	Perfects    uint32 `json:"perfects"`
	Greats      uint32 `json:"greats"`
	Goods       uint32 `json:"goods"`
	Bads        uint32 `json:"bads"`
	Misses      uint32 `json:"misses"`
}

// Add increments the counter for t.
func (tj *TapJudgements) Add(t TapJudgement) {
	switch t {
	case Marvelous:
		tj.Marvelouses++
	case Perfect:
		tj.Perfects++
	case Great:
		tj.Greats++
	case Good:
		tj.Goods++
	case Bad:
		tj.Bads++
	case Miss:
		tj.Misses++
	}
}

// Total is the number of counted taps.
func (tj TapJudgements) Total() uint32 {
	return tj.Marvelouses + tj.Perfects + tj.Greats + tj.Goods + tj.Bads + tj.Misses
}

// CountTapJudgements classifies every hit with j.
func CountTapJudgements(hits []Hit, j *Judge) TapJudgements {
	var tj TapJudgements
	for _, h := range hits {
		tj.Add(h.Classify(j))
	}
	return tj
}

// FullJudgements extends TapJudgements with hold and mine outcomes.
type FullJudgements struct {
	TapJudgements
	HitMines    uint32 `json:"hit_mines"`
	OkHolds     uint32 `json:"ok_holds"`
	NgHolds     uint32 `json:"ng_holds"`
	MissedHolds uint32 `json:"missed_holds"` // absent from some score sources
}
