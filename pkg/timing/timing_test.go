package timing_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/wifescope/wifescope/pkg/timing"
)

func TestTicksToSecondsConstantTempo(t *testing.T) {
	info, err := timing.ParseBPMs("0.000=120.000")
	if err != nil {
		t.Fatal(err)
	}
	// 120 BPM: one beat every half second.
	got := info.TicksToSeconds([]uint32{0, 24, 48, 96, 480})
	want := []float32{0, 0.25, 0.5, 1, 5}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTicksToSecondsWithChanges(t *testing.T) {
	// Unordered on purpose: 120 BPM for 4 beats, then 240 BPM.
	info, err := timing.ParseBPMs("4=240, 0=120")
	if err != nil {
		t.Fatal(err)
	}
	got := info.TicksToSeconds([]uint32{0, 4 * 48, 5 * 48, 8 * 48})
	want := []float32{0, 2, 2.25, 3}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if info.BPMAt(3.9) != 120 || info.BPMAt(4) != 240 {
		t.Errorf("BPMAt wrong: %v, %v", info.BPMAt(3.9), info.BPMAt(4))
	}
}

func TestParseBPMsErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"0:120", timing.ErrMissingEquals},
		{"", timing.ErrMissingEquals},
		{"zero=120", timing.ErrInvalidBeat},
		{"0=fast", timing.ErrInvalidBPM},
		{"1=120,2=140", timing.ErrFirstChangeNotAt0},
		{"0=NaN", timing.ErrNaN},
	}
	for _, tt := range tests {
		_, err := timing.ParseBPMs(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseBPMs(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestTicksToSecondsUnsortedPanics(t *testing.T) {
	info, err := timing.ParseBPMs("0=120")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	info.TicksToSeconds([]uint32{48, 0})
}
