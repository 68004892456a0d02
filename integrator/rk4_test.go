package integrator

import (
	"errors"
	"math"
	"testing"
)

// decay1D integrates y' = -y from y(0)=1 for a fixed iteration count.
type decay1D struct {
	state []float64
	steps uint64
}

func newDecay1D(steps uint64) *decay1D {
	return &decay1D{[]float64{1}, steps}
}

func (d *decay1D) GetState() []float64 {
	return d.state
}

func (d *decay1D) SetState(i uint64, s []float64) {
	d.state = s
}

func (d *decay1D) Stop(i uint64) bool {
	return i >= d.steps
}

func (d *decay1D) Func(t float64, s []float64) []float64 {
	return []float64{-s[0]}
}

func TestRK4Decay(t *testing.T) {
	d := newDecay1D(10)
	rk4, err := NewRK4(0, 0.1, d)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	iterNum, xi, err := rk4.Solve()
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	if iterNum != 10 {
		t.Fatalf("expected 10 iterations, got %d", iterNum)
	}
	if math.Abs(xi-1) > 1e-12 {
		t.Fatalf("expected x=1, got %f", xi)
	}
	if diff := math.Abs(d.state[0] - math.Exp(-1)); diff > 1e-6 {
		t.Fatalf("y(1)=%f off by %g from exp(-1)", d.state[0], diff)
	}
}

// Halving the step of a fourth-order scheme must cut the global error
// by roughly 2^4.
func TestRK4Order(t *testing.T) {
	solveTo1 := func(dt float64, steps uint64) float64 {
		d := newDecay1D(steps)
		rk4, err := NewRK4(0, dt, d)
		if err != nil {
			t.Fatalf("err: %+v", err)
		}
		if _, _, err = rk4.Solve(); err != nil {
			t.Fatalf("err: %+v", err)
		}
		return d.state[0]
	}
	e1 := math.Abs(solveTo1(0.1, 10) - math.Exp(-1))
	e2 := math.Abs(solveTo1(0.05, 20) - math.Exp(-1))
	if e2 >= e1 {
		t.Fatalf("error did not decrease: e(0.1)=%g e(0.05)=%g", e1, e2)
	}
	if ratio := e1 / e2; ratio < 12 || ratio > 22 {
		t.Fatalf("expected ~16x error reduction, got %fx", ratio)
	}
}

func TestRK4InvalidStep(t *testing.T) {
	for _, dt := range []float64{0, -0.1} {
		_, err := NewRK4(0, dt, newDecay1D(1))
		var stepErr *InvalidStepError
		if !errors.As(err, &stepErr) {
			t.Fatalf("dt=%g: expected InvalidStepError, got %+v", dt, err)
		}
	}
	if _, err := NewRK4(0, 0.1, nil); err == nil {
		t.Fatal("expected error for nil Integrable")
	}
}

// nanAfter returns NaN derivatives from a given iteration onward.
type nanAfter struct {
	decay1D
	after uint64
	iter  uint64
}

func (n *nanAfter) Func(t float64, s []float64) []float64 {
	if n.iter >= n.after {
		return []float64{math.NaN()}
	}
	return n.decay1D.Func(t, s)
}

func (n *nanAfter) SetState(i uint64, s []float64) {
	n.decay1D.SetState(i, s)
	n.iter++
}

func TestRK4Divergence(t *testing.T) {
	d := &nanAfter{decay1D: decay1D{[]float64{1}, 10}, after: 3}
	rk4, err := NewRK4(0, 0.1, d)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	_, _, err = rk4.Solve()
	var div *DivergenceError
	if !errors.As(err, &div) {
		t.Fatalf("expected DivergenceError, got %+v", err)
	}
	if div.Iteration != 3 {
		t.Fatalf("expected divergence at iteration 3, got %d", div.Iteration)
	}
	if !math.IsNaN(div.State[0]) {
		t.Fatalf("snapshot should hold the diverged state, got %+v", div.State)
	}
	// The state must not have been corrupted by the failing step.
	if math.IsNaN(d.state[0]) {
		t.Fatal("diverged state was propagated to the integrable")
	}
}
