// Package judge defines Etterna timing windows and classifies hit deviations
// into tap judgements.
package judge

import (
	"fmt"
	"strings"
)

// Judge is a named set of timing windows, in seconds. Windows are +/- values
// around the note.
//
// A Judge is static configuration: the presets below are never mutated and
// custom judges should be treated the same way.
type Judge struct {
	Name      string  `json:"name" yaml:"name"`
	Marvelous float32 `json:"marvelous" yaml:"marvelous"`
	Perfect   float32 `json:"perfect" yaml:"perfect"`
	Great     float32 `json:"great" yaml:"great"`
	Good      float32 `json:"good" yaml:"good"`
	Bad       float32 `json:"bad" yaml:"bad"`
	Hold      float32 `json:"hold" yaml:"hold"`
	Roll      float32 `json:"roll" yaml:"roll"`
	// Mine is the window in which a mine can be hit, assuming no notes are
	// prioritized. Before universal mine timing it was equal to the Great window.
	Mine float32 `json:"mine" yaml:"mine"`
	// TimingScale stretches the wife curves relative to J4.
	TimingScale float32 `json:"timing_scale" yaml:"timing_scale"`
}

// Validate checks that all windows are non-negative and that the tap windows
// grow weakly from Marvelous through Bad.
func (j *Judge) Validate() error {
	windows := []struct {
		name  string
		value float32
	}{
		{"marvelous", j.Marvelous},
		{"perfect", j.Perfect},
		{"great", j.Great},
		{"good", j.Good},
		{"bad", j.Bad},
	}
	for i, w := range windows {
		if w.value < 0 {
			return fmt.Errorf("judge %s: %s window is negative (%v)", j.Name, w.name, w.value)
		}
		if i > 0 && w.value < windows[i-1].value {
			return fmt.Errorf("judge %s: %s window (%v) is smaller than %s window (%v)",
				j.Name, w.name, w.value, windows[i-1].name, windows[i-1].value)
		}
	}
	if j.Hold < 0 || j.Roll < 0 || j.Mine < 0 {
		return fmt.Errorf("judge %s: hold, roll and mine windows must be non-negative", j.Name)
	}
	if j.TimingScale <= 0 {
		return fmt.Errorf("judge %s: timing scale must be positive", j.Name)
	}
	return nil
}

// Classify maps a deviation in seconds to a tap judgement. The deviation may
// be negative; only its magnitude matters.
func (j *Judge) Classify(deviation float32) TapJudgement {
	d := abs32(deviation)

	switch {
	case d <= j.Marvelous:
		return Marvelous
	case d <= j.Perfect:
		return Perfect
	case d <= j.Great:
		return Great
	case d <= j.Good:
		return Good
	case d <= j.Bad:
		return Bad
	default:
		return Miss
	}
}

// IsCB reports whether the deviation breaks combo. Only marvelous, perfect
// and great hits keep a combo alive.
func (j *Judge) IsCB(deviation float32) bool {
	return abs32(deviation) > j.Great
}

func (j *Judge) IsMarv(deviation float32) bool  { return j.Classify(deviation) == Marvelous }
func (j *Judge) IsPerf(deviation float32) bool  { return j.Classify(deviation) == Perfect }
func (j *Judge) IsGreat(deviation float32) bool { return j.Classify(deviation) == Great }
func (j *Judge) IsGood(deviation float32) bool  { return j.Classify(deviation) == Good }
func (j *Judge) IsBad(deviation float32) bool   { return j.Classify(deviation) == Bad }

// IsMiss reports whether the deviation lies outside the bad window.
func (j *Judge) IsMiss(deviation float32) bool {
	return abs32(deviation) > j.Bad
}

func (j *Judge) String() string { return j.Name }

// ByName looks up a preset judge by name, case-insensitively ("J4", "j7").
// The result is a copy the caller may modify.
func ByName(name string) (*Judge, error) {
	for _, j := range presets {
		if strings.EqualFold(j.Name, strings.TrimSpace(name)) {
			c := *j
			return &c, nil
		}
	}
	return nil, fmt.Errorf("unknown judge %q", name)
}

var presets = [...]*Judge{J1, J2, J3, J4, J5, J6, J7, J8, J9}

// Presets returns copies of J1 through J9, from most to least forgiving.
func Presets() []*Judge {
	out := make([]*Judge, len(presets))
	for i, j := range presets {
		c := *j
		out[i] = &c
	}
	return out
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
