package hodgkin

import (
	"errors"
	"os"
	"sync"

	kitlog "github.com/go-kit/kit/log"

	"hodgkin/integrator"
)

/* Handles the propagation of one membrane trajectory. */

// Sample is one recorded point of a running simulation, streamed to
// the export writer.
type Sample struct {
	Index uint64
	Time  float64 // Simulation time (ms).
	State NeuronState
	IExt  float64 // Injected current at this index (µA/cm²).
}

// Simulation integrates a single membrane trajectory. The loop is
// strictly sequential: each step's result is the next step's input, so
// no step may be computed out of order. Run concurrent trajectories by
// giving each its own Simulation.
type Simulation struct {
	Neuron   *NeuronState // Altered in place, once per step.
	Params   MembraneParameters
	Stimulus StimulusTrace
	Dt       float64 // Time step (ms).

	idx      uint64 // Index of the next sample to produce.
	traj     *Trajectory
	histChan chan Sample
	logger   kitlog.Logger
	wg       sync.WaitGroup
	done     bool
}

// NewSimulation validates the configuration and returns a ready
// simulation. The trajectory records entry 0 (the initial voltage)
// immediately; entry t is produced with Iext = Stimulus[t].
func NewSimulation(neuron *NeuronState, p MembraneParameters, stim StimulusTrace, dt float64, conf ExportConfig) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if dt <= 0 {
		return nil, &InvalidParameterError{"dt", dt, "time step must be positive"}
	}
	if len(stim) == 0 {
		return nil, &InvalidParameterError{"timesteps", 0, "stimulus trace may not be empty"}
	}
	if neuron == nil || !neuron.IsFinite() {
		return nil, &InvalidParameterError{"state", 0, "initial state must be finite"}
	}
	for _, gate := range []float64{neuron.M, neuron.H, neuron.N} {
		if gate < 0 || gate > 1 {
			return nil, &InvalidParameterError{"gate", gate, "gating variables must lie in [0,1]"}
		}
	}

	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	s := &Simulation{
		Neuron:   neuron,
		Params:   p,
		Stimulus: stim,
		Dt:       dt,
		idx:      1,
		traj:     newTrajectory(dt, len(stim)),
		logger:   kitlog.With(klog, "subsys", "sim"),
	}
	s.traj.V = append(s.traj.V, neuron.V)

	// If the export config is useless, no output will be written.
	if !conf.IsUseless() {
		s.histChan = make(chan Sample, 1000) // a 1k entry buffer
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			StreamSamples(conf, s.histChan)
		}()
		s.histChan <- Sample{0, 0, *neuron, stim.Current(0)}
	}
	return s, nil
}

// LogStatus logs the current state of the propagation.
func (s *Simulation) LogStatus() {
	s.logger.Log("level", "info", "t(ms)", float64(s.idx-1)*s.Dt, "state", s.Neuron)
}

// Run integrates the full trajectory. On numerical divergence the
// error carries the failing step index and a state snapshot, and the
// trajectory holds every sample produced before the failure.
func (s *Simulation) Run() (*Trajectory, error) {
	if s.done {
		return s.traj, errors.New("hodgkin: simulation already completed")
	}
	rk4, err := integrator.NewRK4(0, s.Dt, s)
	if err != nil {
		return nil, err
	}
	s.logger.Log("level", "info", "status", "started", "steps", len(s.Stimulus), "dt(ms)", s.Dt)
	s.LogStatus()
	_, _, err = rk4.Solve() // Blocking.
	s.done = true
	if s.histChan != nil {
		close(s.histChan)
		s.wg.Wait() // Don't return until we're done writing the file.
	}
	if err != nil {
		var div *integrator.DivergenceError
		if errors.As(err, &div) {
			err = &DivergenceError{Step: s.idx, Time: div.X, State: stateFromVector(div.State)}
		}
		s.logger.Log("level", "critical", "status", "diverged", "err", err)
		return s.traj, err
	}
	s.logger.Log("level", "notice", "status", "finished", "samples", s.traj.Len(), "duration(ms)", float64(s.traj.Len()-1)*s.Dt)
	return s.traj, nil
}

// GetState implements integrator.Integrable.
func (s *Simulation) GetState() []float64 {
	return s.Neuron.Vector()
}

// SetState implements integrator.Integrable. The gating variables are
// clamped into [0,1] here, after each combined step; V never is.
func (s *Simulation) SetState(i uint64, f []float64) {
	ns := stateFromVector(f)
	ns.clampGates()
	*s.Neuron = ns
	s.traj.V = append(s.traj.V, ns.V)
	if s.histChan != nil {
		s.histChan <- Sample{s.idx, float64(s.idx) * s.Dt, ns, s.Stimulus.Current(int(s.idx))}
	}
	s.idx++
}

// Stop implements integrator.Integrable.
func (s *Simulation) Stop(i uint64) bool {
	return s.idx >= uint64(len(s.Stimulus))
}

// Func implements integrator.Integrable. The external current is held
// constant across the four RK stages of a step (zero-order hold).
func (s *Simulation) Func(t float64, f []float64) []float64 {
	return Derivatives(s.Params, stateFromVector(f), s.Stimulus.Current(int(s.idx))).Vector()
}
