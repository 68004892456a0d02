package hodgkin

// MembraneParameters holds the physical constants of the membrane
// model. Read-only for the lifetime of a simulation; safe to share
// across concurrent trajectories.
type MembraneParameters struct {
	Cm    float64 // Membrane capacitance (µF/cm²).
	GNa   float64 // Maximal sodium conductance (mS/cm²).
	GK    float64 // Maximal potassium conductance (mS/cm²).
	GL    float64 // Leak conductance (mS/cm²).
	ENa   float64 // Sodium reversal potential (mV).
	EK    float64 // Potassium reversal potential (mV).
	EL    float64 // Leak reversal potential (mV).
	VRest float64 // Resting potential (mV).
}

// DefaultMembrane returns the canonical squid-axon constants.
func DefaultMembrane() MembraneParameters {
	return MembraneParameters{
		Cm:    1.0,
		GNa:   120.0,
		GK:    36.0,
		GL:    0.3,
		ENa:   50.0,
		EK:    -77.0,
		EL:    -54.387,
		VRest: -65.0,
	}
}

// Validate returns an InvalidParameterError for any physically
// impossible constant. Called at configuration time, before any step.
func (p MembraneParameters) Validate() error {
	if p.Cm <= 0 {
		return &InvalidParameterError{"Cm", p.Cm, "capacitance must be positive"}
	}
	for _, g := range []struct {
		name string
		val  float64
	}{{"GNa", p.GNa}, {"GK", p.GK}, {"GL", p.GL}} {
		if g.val < 0 {
			return &InvalidParameterError{g.name, g.val, "conductance may not be negative"}
		}
	}
	return nil
}
