package hodgkin

import "github.com/gonum/matrix/mat64"

// Trajectory is the recorded voltage trace of one simulation run.
// Entry 0 is the initial voltage; entry t is the voltage after step t.
// Immutable once the run completes; owned by the caller.
type Trajectory struct {
	Dt float64 // Sampling step (ms).
	V  []float64
}

func newTrajectory(dt float64, capacity int) *Trajectory {
	return &Trajectory{Dt: dt, V: make([]float64, 0, capacity)}
}

// Len returns the number of recorded samples.
func (tr *Trajectory) Len() int {
	return len(tr.V)
}

// At returns the (time, voltage) pair of sample i.
func (tr *Trajectory) At(i int) (t, v float64) {
	return float64(i) * tr.Dt, tr.V[i]
}

// Voltages returns the raw voltage slice.
func (tr *Trajectory) Voltages() []float64 {
	return tr.V
}

// Dense returns the trajectory as a Len x 2 matrix with time and
// voltage columns, for downstream analysis collaborators.
func (tr *Trajectory) Dense() *mat64.Dense {
	d := mat64.NewDense(tr.Len(), 2, nil)
	for i, v := range tr.V {
		d.Set(i, 0, float64(i)*tr.Dt)
		d.Set(i, 1, v)
	}
	return d
}

// Spikes counts the upward crossings of the given voltage threshold.
func (tr *Trajectory) Spikes(threshold float64) (count int) {
	for i := 1; i < len(tr.V); i++ {
		if tr.V[i-1] <= threshold && tr.V[i] > threshold {
			count++
		}
	}
	return
}
