package hodgkin

import "fmt"

// InvalidParameterError reports a configuration value rejected before
// any simulation step runs.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("hodgkin: invalid %s=%g: %s", e.Param, e.Value, e.Reason)
}

// DivergenceError reports a non-finite value produced during
// integration. The trajectory up to Step-1 remains valid; the run is
// aborted rather than clamped to a plausible-looking value.
type DivergenceError struct {
	Step  uint64      // Index of the sample that could not be produced.
	Time  float64     // Simulation time at the start of the failing step (ms).
	State NeuronState // Snapshot of the diverged candidate state.
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("hodgkin: numerical divergence at step %d (t=%gms): %v", e.Step, e.Time, e.State)
}

// SingularityError reports a rate-function evaluation which the stable
// substitution could not resolve, indicating an unexpected input regime.
type SingularityError struct {
	V float64
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("hodgkin: rate functions unresolved at V=%g mV", e.V)
}
