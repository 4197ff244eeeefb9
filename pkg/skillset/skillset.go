// Package skillset holds Etterna's skillset vectors and derives overall
// ratings and rating timelines from them.
package skillset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wifescope/wifescope/pkg/rating"
)

// Skillset names one dimension of a skillset vector. Overall is derived from
// the other seven and never stored as an input.
type Skillset int

const (
	Overall Skillset = iota
	Stream
	Jumpstream
	Handstream
	Stamina
	Jackspeed
	Chordjack
	Technical
)

var names = [...]string{"Overall", "Stream", "Jumpstream", "Handstream", "Stamina", "Jackspeed", "Chordjack", "Technical"}

func (s Skillset) String() string {
	if s < Overall || s > Technical {
		return fmt.Sprintf("Skillset(%d)", int(s))
	}
	return names[s]
}

// Key is the lowercase identifier used in JSON and config files.
func (s Skillset) Key() string {
	return strings.ToLower(s.String())
}

// All7 lists the seven skillsets in storage order.
func All7() []Skillset {
	return []Skillset{Stream, Jumpstream, Handstream, Stamina, Jackspeed, Chordjack, Technical}
}

// All8 lists Overall followed by the seven skillsets.
func All8() []Skillset {
	return append([]Skillset{Overall}, All7()...)
}

// FromUserInput parses most community spellings of a skillset,
// case-insensitively ("js", "Jacks", "CHORDJACK").
func FromUserInput(input string) (Skillset, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "overall":
		return Overall, true
	case "stream":
		return Stream, true
	case "js", "jumpstream":
		return Jumpstream, true
	case "hs", "handstream":
		return Handstream, true
	case "stam", "stamina":
		return Stamina, true
	case "jack", "jacks", "jackspeed":
		return Jackspeed, true
	case "cj", "chordjack", "chordjacks":
		return Chordjack, true
	case "tech", "technical":
		return Technical, true
	default:
		return 0, false
	}
}

// Skillsets7 holds the seven skillset values, indexed by Skillset-1.
type Skillsets7 [7]float32

// Get returns the value of a single skillset. Skillsets7 carries no overall,
// so asking for it panics.
func (s Skillsets7) Get(ss Skillset) float32 {
	if ss == Overall {
		panic("skillset: Skillsets7 has no overall value, use WithOverall first")
	}
	return s[ss-1]
}

// Set stores the value of a single skillset.
func (s *Skillsets7) Set(ss Skillset, v float32) {
	if ss == Overall {
		panic("skillset: Skillsets7 has no overall value")
	}
	s[ss-1] = v
}

// WithOverall attaches an overall value.
func (s Skillsets7) WithOverall(overall float32) Skillsets8 {
	var out Skillsets8
	out[Overall] = overall
	copy(out[1:], s[:])
	return out
}

// Max is the largest of the seven values.
func (s Skillsets7) Max() float32 {
	m := s[0]
	for _, v := range s[1:] {
		m = max(m, v)
	}
	return m
}

// ChartOverall derives a chart's (MSD or SSR) overall: the aggregate of all
// seven skillsets, but never less than the best single skillset.
func (s Skillsets7) ChartOverall() float32 {
	return max(rating.ScoreOverall(s), s.Max())
}

// ChartOverallPre070 is the pre-0.70 chart overall: the best skillset.
func (s Skillsets7) ChartOverallPre070() float32 {
	return s.Max()
}

// PlayerOverall derives a player's overall rating from their seven skillset ratings.
func (s Skillsets7) PlayerOverall() float32 {
	return rating.PlayerOverall(s)
}

// PlayerOverallPre070 is the pre-0.70 player overall: the arithmetic mean.
func (s Skillsets7) PlayerOverallPre070() float32 {
	var sum float32
	for _, v := range s {
		sum += v
	}
	return sum / 7
}

func (s Skillsets7) MarshalJSON() ([]byte, error) {
	m := make(map[string]float32, len(s))
	for _, ss := range All7() {
		m[ss.Key()] = s.Get(ss)
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts an object keyed by skillset name. Community aliases
// are accepted as keys; unknown keys are an error.
func (s *Skillsets7) UnmarshalJSON(data []byte) error {
	var m map[string]float32
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = Skillsets7{}
	for k, v := range m {
		ss, ok := FromUserInput(k)
		if !ok || ss == Overall {
			return fmt.Errorf("unknown skillset %q", k)
		}
		s.Set(ss, v)
	}
	return nil
}

// Skillsets8 holds overall plus the seven skillset values, indexed by Skillset.
type Skillsets8 [8]float32

func (s Skillsets8) Get(ss Skillset) float32 { return s[ss] }

// Skillsets7 drops the overall value.
func (s Skillsets8) Skillsets7() Skillsets7 {
	var out Skillsets7
	copy(out[:], s[1:])
	return out
}

func (s Skillsets8) MarshalJSON() ([]byte, error) {
	m := make(map[string]float32, len(s))
	for _, ss := range All8() {
		m[ss.Key()] = s.Get(ss)
	}
	return json.Marshal(m)
}
