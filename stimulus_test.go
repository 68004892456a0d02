package hodgkin

import (
	"errors"
	"testing"
)

func TestStimulusReference(t *testing.T) {
	// The reference protocol: 10 µA/cm² on [2000, 5000) at dt=0.1 ms.
	stim, err := NewStimulus(1000, 0.1, Pulse{Onset: 2000, Offset: 5000, Amplitude: 10})
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	if len(stim) != 10000 {
		t.Fatalf("expected 10000 entries, got %d", len(stim))
	}
	for i, want := range map[int]float64{0: 0, 1999: 0, 2000: 10, 4999: 10, 5000: 0, 9999: 0} {
		if stim[i] != want {
			t.Fatalf("stim[%d] = %v, want %v", i, stim[i], want)
		}
	}
}

func TestStimulusOverlap(t *testing.T) {
	stim, err := NewStimulus(10, 1, Pulse{0, 6, 2}, Pulse{4, 8, 3})
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	for i, want := range []float64{2, 2, 2, 2, 5, 5, 3, 3, 0, 0} {
		if stim[i] != want {
			t.Fatalf("stim[%d] = %v, want %v", i, stim[i], want)
		}
	}
}

func TestStimulusTruncation(t *testing.T) {
	// T/dt truncates: 1.05/0.1 -> 10 entries, not 11.
	stim, err := NewStimulus(1.05, 0.1)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	if len(stim) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(stim))
	}
}

func TestStimulusClipsPastEnd(t *testing.T) {
	stim, err := NewStimulus(5, 1, Pulse{3, 100, 7}, Pulse{50, 60, 9})
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	for i, want := range []float64{0, 0, 0, 7, 7} {
		if stim[i] != want {
			t.Fatalf("stim[%d] = %v, want %v", i, stim[i], want)
		}
	}
}

func TestStimulusValidation(t *testing.T) {
	var ipe *InvalidParameterError
	for name, call := range map[string]func() (StimulusTrace, error){
		"zero duration":  func() (StimulusTrace, error) { return NewStimulus(0, 0.1) },
		"negative dt":    func() (StimulusTrace, error) { return NewStimulus(10, -0.1) },
		"negative onset": func() (StimulusTrace, error) { return NewStimulus(10, 1, Pulse{-1, 5, 1}) },
		"inverted pulse": func() (StimulusTrace, error) { return NewStimulus(10, 1, Pulse{5, 2, 1}) },
	} {
		if _, err := call(); !errors.As(err, &ipe) {
			t.Fatalf("%s: expected InvalidParameterError, got %+v", name, err)
		}
	}
}

func TestStimulusCurrentOutOfRange(t *testing.T) {
	stim := StimulusTrace{1, 2, 3}
	if stim.Current(-1) != 0 || stim.Current(3) != 0 {
		t.Fatal("out-of-range indices must read as zero current")
	}
	if stim.Current(1) != 2 {
		t.Fatalf("Current(1) = %v, want 2", stim.Current(1))
	}
}
