// Package combo finds the fastest note subsets and combos of a lane or score.
package combo

import "iter"

// Info describes a note subset found by one of the search functions. Speed
// is notes per second, or wife points per second for the weighted variants.
type Info struct {
	StartSecond float32 `json:"start_second"`
	EndSecond   float32 `json:"end_second"`
	Length      uint32  `json:"length"`
	Speed       float32 `json:"speed"`
}

// FastestNoteSubset finds the fastest window of minNotes..maxNotes notes
// (inclusive). Ties go to the later window, and because lengths are scanned
// in ascending order, to the longer one: 30 NPS over 110 notes beats 30 NPS
// over 100.
//
// seconds must be sorted and maxNotes >= minNotes, otherwise it panics.
func FastestNoteSubset(seconds []float32, minNotes, maxNotes uint32) Info {
	mustBeSorted(seconds)
	mustBeOrdered(minNotes, maxNotes)

	var fastest Info
	if len(seconds) <= int(minNotes) {
		return fastest
	}

	endN := min(len(seconds), int(maxNotes)+1)
	for n := int(minNotes); n < endN; n++ {
		for i := 0; i < len(seconds)-n; i++ {
			end := i + n
			nps := float32(n) / float32(seconds[end]-seconds[i])

			if nps >= fastest.Speed {
				fastest = Info{
					StartSecond: seconds[i],
					EndSecond:   seconds[end],
					Length:      uint32(n),
					Speed:       nps,
				}
			}
		}
	}
	return fastest
}

// FastestNoteSubsetWifePts is FastestNoteSubset with the speed of each window
// multiplied by its average wife points. 50 notes in 10 seconds at 80% yield 4.
//
// wifePts must be in the same order and of the same length as seconds.
func FastestNoteSubsetWifePts(seconds []float32, minNotes, maxNotes uint32, wifePts []float32) Info {
	if len(wifePts) != len(seconds) {
		panic("combo: wifePts and seconds differ in length")
	}
	mustBeSorted(seconds)
	mustBeOrdered(minNotes, maxNotes)

	var fastest Info
	if len(seconds) <= int(minNotes) {
		return fastest
	}

	var sumStart float32
	for _, p := range wifePts[:minNotes] {
		sumStart += p
	}

	endN := min(len(seconds), int(maxNotes)+1)
	for n := int(minNotes); n < endN; n++ {
		// Sliding sum over wifePts[i:i+n].
		sum := sumStart
		for i := 0; i < len(seconds)-n; i++ {
			end := i + n
			nps := float32(n) / float32(seconds[end]-seconds[i])
			nps = float32(nps * float32(sum/float32(n)))

			if nps >= fastest.Speed {
				fastest = Info{
					StartSecond: seconds[i],
					EndSecond:   seconds[end],
					Length:      uint32(n),
					Speed:       nps,
				}
			}

			sum -= wifePts[i]
			sum += wifePts[end]
		}
		sumStart += wifePts[n]
	}
	return fastest
}

// FastestComboInScore splits a score into combos at every combo breaker and
// returns the fastest note subset of any combo. The combo breaking note
// itself belongs to no combo. With wifePts the speed is weighted like in
// FastestNoteSubsetWifePts. The result's speed is scaled by rate; seconds
// are expected at 1.00x.
//
// areCBs must hold one entry per second, as must wifePts when non-nil.
func FastestComboInScore(seconds []float32, areCBs []bool, minNotes, maxNotes uint32, wifePts []float32, rate float32) Info {
	mustBeSorted(seconds)
	mustBeOrdered(minNotes, maxNotes)
	if len(areCBs) != len(seconds) {
		panic("combo: areCBs and seconds differ in length")
	}
	if wifePts != nil && len(wifePts) != len(seconds) {
		panic("combo: wifePts and seconds differ in length")
	}

	var fastest Info
	endCombo := func(start, end int) {
		if start >= end {
			return
		}
		var sub Info
		if wifePts != nil {
			sub = FastestNoteSubsetWifePts(seconds[start:end], minNotes, maxNotes, wifePts[start:end])
		} else {
			sub = FastestNoteSubset(seconds[start:end], minNotes, maxNotes)
		}
		if sub.Speed > fastest.Speed {
			fastest = sub
		}
	}

	start := 0
	for i, cb := range areCBs {
		if cb {
			endCombo(start, i)
			start = i + 1
		}
	}
	endCombo(start, len(seconds))

	fastest.Speed *= rate
	return fastest
}

// LongestTrueSequence returns the length of the longest run of true values.
// Used with "is not a combo breaker" flags it yields the longest combo.
func LongestTrueSequence(seq iter.Seq[bool]) uint32 {
	var longest, current uint32
	for v := range seq {
		if v {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	return longest
}

func mustBeSorted(seconds []float32) {
	for i := 1; i < len(seconds); i++ {
		if seconds[i] < seconds[i-1] {
			panic("combo: seconds are not sorted ascending")
		}
	}
}

func mustBeOrdered(minNotes, maxNotes uint32) {
	if maxNotes < minNotes {
		panic("combo: maxNotes is smaller than minNotes")
	}
}
