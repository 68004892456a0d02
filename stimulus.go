package hodgkin

// Pulse is a rectangular current pulse active on the discrete index
// range [Onset, Offset). Indices past the end of the trace are
// clipped; a fully out-of-range pulse contributes nothing.
type Pulse struct {
	Onset     int     // First active time index.
	Offset    int     // First inactive time index (exclusive).
	Amplitude float64 // Injected current (µA/cm²).
}

func (p Pulse) validate() error {
	if p.Onset < 0 {
		return &InvalidParameterError{"pulse.onset", float64(p.Onset), "onset index may not be negative"}
	}
	if p.Offset < p.Onset {
		return &InvalidParameterError{"pulse.offset", float64(p.Offset), "offset index precedes onset"}
	}
	return nil
}

// StimulusTrace is the externally injected current waveform, one value
// per discrete time index. Produced once before a run and consumed
// read-only by the driver.
type StimulusTrace []float64

// NewStimulus builds a trace of length int(duration/dt) where each
// entry is the sum of the amplitudes of all pulses active at that
// index, and zero elsewhere.
func NewStimulus(duration, dt float64, pulses ...Pulse) (StimulusTrace, error) {
	if duration <= 0 {
		return nil, &InvalidParameterError{"duration", duration, "duration must be positive"}
	}
	if dt <= 0 {
		return nil, &InvalidParameterError{"dt", dt, "time step must be positive"}
	}
	steps := int(duration / dt)
	trace := make(StimulusTrace, steps)
	for _, p := range pulses {
		if err := p.validate(); err != nil {
			return nil, err
		}
		end := p.Offset
		if end > steps {
			end = steps
		}
		for i := p.Onset; i < end; i++ {
			trace[i] += p.Amplitude
		}
	}
	return trace, nil
}

// Current returns the injected current at index i, or zero out of range.
func (st StimulusTrace) Current(i int) float64 {
	if i < 0 || i >= len(st) {
		return 0
	}
	return st[i]
}
