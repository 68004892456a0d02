package integrator

import (
	"errors"
	"fmt"
	"math"
)

// RK4 defines a classical fourth-order fixed-step Runge-Kutta integrator.
type RK4 struct {
	X0         float64    // The initial x0.
	StepSize   float64    // The step size.
	Integrator Integrable // What is to be integrated.
}

// NewRK4 returns a new RK4 integrator instance.
func NewRK4(x0 float64, stepSize float64, inte Integrable) (*RK4, error) {
	if stepSize <= 0 {
		return nil, &InvalidStepError{stepSize}
	}
	if inte == nil {
		return nil, errors.New("integrator: Integrable may not be nil")
	}
	return &RK4{X0: x0, StepSize: stepSize, Integrator: inte}, nil
}

// Solve integrates until the Integrable requests a stop.
// Returns the number of iterations performed and the last X_i, or an error.
// If any combined state component is NaN or ±Inf, the integration aborts
// with a DivergenceError instead of handing the Integrable a corrupt state.
func (r *RK4) Solve() (uint64, float64, error) {
	const (
		half     = 1 / 2.0
		oneSixth = 1 / 6.0
		oneThird = 1 / 3.0
	)

	iterNum := uint64(0)
	xi := r.X0
	halfStep := r.StepSize * half
	for !r.Integrator.Stop(iterNum) {
		state := r.Integrator.GetState()
		newState := make([]float64, len(state))
		k1 := make([]float64, len(state))
		// k2, k3, k4 are used as buffers AND result variables.
		k2 := make([]float64, len(state))
		k3 := make([]float64, len(state))
		k4 := make([]float64, len(state))
		tState := make([]float64, len(state))

		// Compute the k's.
		for i, y := range r.Integrator.Func(xi, state) {
			k1[i] = y * r.StepSize
			tState[i] = state[i] + k1[i]*half
		}
		for i, y := range r.Integrator.Func(xi+halfStep, tState) {
			k2[i] = y * r.StepSize
			tState[i] = state[i] + k2[i]*half
		}
		for i, y := range r.Integrator.Func(xi+halfStep, tState) {
			k3[i] = y * r.StepSize
			tState[i] = state[i] + k3[i]
		}
		for i, y := range r.Integrator.Func(xi+r.StepSize, tState) {
			k4[i] = y * r.StepSize
			newState[i] = state[i] + oneSixth*(k1[i]+k4[i]) + oneThird*(k2[i]+k3[i])
		}
		for i, y := range newState {
			if math.IsNaN(y) || math.IsInf(y, 0) {
				snapshot := make([]float64, len(newState))
				copy(snapshot, newState)
				return iterNum, xi, &DivergenceError{iterNum, xi, i, snapshot}
			}
		}
		r.Integrator.SetState(iterNum, newState)

		xi += r.StepSize
		iterNum++ // Don't forget to increment the number of iterations.
	}

	return iterNum, xi, nil
}

// InvalidStepError is returned when the configured step size is not positive.
type InvalidStepError struct {
	StepSize float64
}

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("integrator: step size must be positive, got %g", e.StepSize)
}

// DivergenceError is returned when an integration step produces a
// non-finite state component.
type DivergenceError struct {
	Iteration uint64    // Iteration at which the divergence occurred.
	X         float64   // Value of the independent variable at the start of the step.
	Component int       // Index of the first non-finite state component.
	State     []float64 // Snapshot of the diverged candidate state.
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("integrator: non-finite state component %d at iteration %d (x=%g)", e.Component, e.Iteration, e.X)
}
