package hodgkin

import "sync"

// EnsembleResult is the outcome of one trajectory of an ensemble.
type EnsembleResult struct {
	Trajectory *Trajectory
	Err        error
}

// RunEnsemble integrates independent simulations in parallel, one
// goroutine per trajectory. Each simulation owns its state and
// trajectory; only read-only data (such as a shared MembraneParameters
// value) may be common to several of them. Within a trajectory the
// integration remains strictly sequential.
func RunEnsemble(sims []*Simulation) []EnsembleResult {
	results := make([]EnsembleResult, len(sims))
	var wg sync.WaitGroup
	for i, sim := range sims {
		wg.Add(1)
		go func(i int, sim *Simulation) {
			defer wg.Done()
			traj, err := sim.Run()
			results[i] = EnsembleResult{traj, err}
		}(i, sim)
	}
	wg.Wait()
	return results
}
