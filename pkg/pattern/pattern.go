// Package pattern parses note patterns in the notation used by the Etterna
// community, e.g. "[12][34]" for a jumptrill.
package pattern

import (
	"strings"
	"unicode/utf8"

	"github.com/wifescope/wifescope/pkg/chart"
)

// Pattern is a sequence of rows. An empty row is a gap.
type Pattern struct {
	Rows []chart.NoteRow
}

// Parse reads a pattern string. Lanes are written as digits starting at 1 or
// as l/d/u/r for 4k; "0" is a gap; brackets group a chord. Mines, holds,
// rolls and lifts are not supported.
//
// The parser is lenient: invalid characters and unterminated brackets are
// skipped, and "0" inside brackets is ignored.
func Parse(s string) Pattern {
	var p Pattern
	for len(s) > 0 {
		if s[0] == '[' {
			if end := strings.IndexByte(s, ']'); end >= 0 {
				var row chart.NoteRow
				for i := 1; i < end; i++ {
					if lane, ok := charToLane(s[i]); ok && lane >= 0 {
						row |= 1 << lane
					}
				}
				p.Rows = append(p.Rows, row)
				s = s[end+1:]
				continue
			}
		}

		if lane, ok := charToLane(s[0]); ok {
			var row chart.NoteRow
			if lane >= 0 {
				row = 1 << lane
			}
			p.Rows = append(p.Rows, row)
		}
		_, width := utf8.DecodeRuneInString(s)
		s = s[width:]
	}
	return p
}

// charToLane maps a pattern character to a zero-based lane. A gap yields
// lane -1; an invalid character yields false.
func charToLane(c byte) (int, bool) {
	switch c {
	case '0':
		return -1, true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return int(c - '1'), true
	case 'l', 'L':
		return 0, true
	case 'd', 'D':
		return 1, true
	case 'u', 'U':
		return 2, true
	case 'r', 'R':
		return 3, true
	default:
		return 0, false
	}
}

// Keymode guesses the keymode from the rightmost lane used, with a minimum
// of 4: "2323" is still a 4k pattern. It reports false for a pattern
// without notes. This is only a guess; "[12][34]" could be meant for 6k.
func (p Pattern) Keymode() (int, bool) {
	width := 0
	for _, row := range p.Rows {
		width = max(width, row.Width())
	}
	if width == 0 {
		return 0, false
	}
	return max(width, 4), true
}

// String renders the pattern back into the bracket notation with digits.
func (p Pattern) String() string {
	var b strings.Builder
	for _, row := range p.Rows {
		n := row.NumNotes()
		if n == 0 {
			b.WriteByte('0')
			continue
		}
		if n > 1 {
			b.WriteByte('[')
		}
		for lane := range row.Width() {
			if row.TapAt(uint(lane)) {
				b.WriteByte(byte('1' + lane))
			}
		}
		if n > 1 {
			b.WriteByte(']')
		}
	}
	return b.String()
}
