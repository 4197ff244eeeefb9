package chart

import (
	"fmt"
	"math/bits"
	"strings"
)

// Difficulty is a chart's difficulty slot.
type Difficulty int

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Challenge
	Edit
)

var (
	shortDifficulties = [...]string{"BG", "EZ", "NM", "HD", "IN", "ED"}
	longDifficulties  = [...]string{"Beginner", "Easy", "Medium", "Hard", "Challenge", "Edit"}
)

// DifficultyFromShort parses the two-letter form used by EtternaOnline: "BG", "IN".
func DifficultyFromShort(s string) (Difficulty, bool) {
	for i, short := range shortDifficulties {
		if s == short {
			return Difficulty(i), true
		}
	}
	return 0, false
}

// DifficultyFromLong parses the long form, including the legacy aliases
// found in simfiles ("Novice", "Expert", ...).
func DifficultyFromLong(s string) (Difficulty, bool) {
	switch s {
	case "Beginner", "Novice":
		return Beginner, true
	case "Easy":
		return Easy, true
	case "Medium", "Normal":
		return Medium, true
	case "Hard":
		return Hard, true
	case "Challenge", "Expert", "Insane":
		return Challenge, true
	case "Edit":
		return Edit, true
	default:
		return 0, false
	}
}

func (d Difficulty) Short() string {
	if d < Beginner || d > Edit {
		return "??"
	}
	return shortDifficulties[d]
}

func (d Difficulty) String() string {
	if d < Beginner || d > Edit {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return longDifficulties[d]
}

// NoteType is the kind of a single note in a chart.
type NoteType int

const (
	Tap NoteType = iota
	HoldHead
	HoldTail
	Mine
	Lift
	Keysound
	Fake
)

// Chartkey identifies a chart: "X" followed by 40 lowercase hex digits.
type Chartkey string

// Scorekey identifies a score: "S" followed by 40 lowercase hex digits.
type Scorekey string

func (k Chartkey) Valid() bool { return isValidKey(string(k), 'X') }
func (k Scorekey) Valid() bool { return isValidKey(string(k), 'S') }

// ParseChartkey validates s as a chartkey.
func ParseChartkey(s string) (Chartkey, error) {
	k := Chartkey(s)
	if !k.Valid() {
		return "", fmt.Errorf("invalid chartkey %q", s)
	}
	return k, nil
}

// ParseScorekey validates s as a scorekey.
func ParseScorekey(s string) (Scorekey, error) {
	k := Scorekey(s)
	if !k.Valid() {
		return "", fmt.Errorf("invalid scorekey %q", s)
	}
	return k, nil
}

func isValidKey(key string, prefix byte) bool {
	if len(key) != 41 || key[0] != prefix {
		return false
	}
	return strings.IndexFunc(key[1:], func(c rune) bool {
		return (c < '0' || c > '9') && (c < 'a' || c > 'f')
	}) < 0
}

// NoteRow is a bitset of the lanes with a note in one row. The least
// significant bit is the leftmost lane.
type NoteRow uint32

// TapAt reports whether lane i has a note. Lane 0 is the leftmost.
func (r NoteRow) TapAt(i uint) bool {
	return r&(1<<i) != 0
}

// Width is the number of lanes up to and including the rightmost note.
// A row with notes only on the left has a smaller width than the keymode.
func (r NoteRow) Width() int {
	return bits.Len32(uint32(r))
}

// NumNotes is the number of notes in the row.
func (r NoteRow) NumNotes() int {
	return bits.OnesCount32(uint32(r))
}

func (r NoteRow) String() string {
	var b strings.Builder
	for i := range r.Width() {
		if r.TapAt(uint(i)) {
			b.WriteByte('x')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Snap is the musical subdivision a row falls on, as the denominator of the
// note value: 4 for quarters, 192 for anything finer than 64ths.
type Snap int

// RowsPerMeasure is the row resolution of a measure in Etterna.
const RowsPerMeasure = 192

var snaps = []Snap{4, 8, 12, 16, 24, 32, 48, 64}

// SnapFromRow finds the coarsest snap that row lies on.
func SnapFromRow(row uint32) Snap {
	for _, s := range snaps {
		if row%uint32(RowsPerMeasure/int(s)) == 0 {
			return s
		}
	}
	return 192
}

func (s Snap) String() string {
	return fmt.Sprintf("%dth", int(s))
}
