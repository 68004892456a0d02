package hodgkin

import (
	"fmt"
	"math"
)

// NeuronState holds the four state variables of the membrane model.
// M, H and N are open probabilities and stay within [0,1] for the
// whole trajectory; V is unbounded but must remain finite.
type NeuronState struct {
	V float64 // Membrane potential (mV).
	M float64 // Sodium activation gate.
	H float64 // Sodium inactivation gate.
	N float64 // Potassium activation gate.
}

// NewRestingState returns the state of a quiescent neuron: V at the
// resting potential and each gate at its steady-state value α/(α+β)
// evaluated at VRest. Seeding the gates anywhere else produces an
// initial transient inconsistent with a resting neuron.
func NewRestingState(p MembraneParameters) (NeuronState, error) {
	if math.IsNaN(p.VRest) || math.IsInf(p.VRest, 0) {
		return NeuronState{}, &InvalidParameterError{"VRest", p.VRest, "resting potential must be finite"}
	}
	m, err := gateSteadyState(AlphaM, BetaM, p.VRest)
	if err != nil {
		return NeuronState{}, err
	}
	h, err := gateSteadyState(AlphaH, BetaH, p.VRest)
	if err != nil {
		return NeuronState{}, err
	}
	n, err := gateSteadyState(AlphaN, BetaN, p.VRest)
	if err != nil {
		return NeuronState{}, err
	}
	return NeuronState{V: p.VRest, M: m, H: h, N: n}, nil
}

// Vector returns the state as a slice in V, m, h, n order.
func (s NeuronState) Vector() []float64 {
	return []float64{s.V, s.M, s.H, s.N}
}

// stateFromVector is the inverse of Vector.
func stateFromVector(f []float64) NeuronState {
	return NeuronState{V: f[0], M: f[1], H: f[2], N: f[3]}
}

// IsFinite returns whether all four components are finite.
func (s NeuronState) IsFinite() bool {
	for _, v := range s.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clampGates floors and ceils the gating variables into [0,1]. This is
// the only sanctioned state correction; V is never clamped.
func (s *NeuronState) clampGates() {
	s.M = math.Max(0, math.Min(1, s.M))
	s.H = math.Max(0, math.Min(1, s.H))
	s.N = math.Max(0, math.Min(1, s.N))
}

func (s NeuronState) String() string {
	return fmt.Sprintf("V=%.4f mV\tm=%.6f\th=%.6f\tn=%.6f", s.V, s.M, s.H, s.N)
}
