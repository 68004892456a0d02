package hodgkin

import (
	"fmt"

	"github.com/spf13/viper"
)

// Scenario is a complete simulation description loaded from a TOML
// file: duration, step, membrane constants, stimulus pulses and export
// settings.
type Scenario struct {
	Name     string
	Duration float64 // ms
	Dt       float64 // ms
	Params   MembraneParameters
	Pulses   []Pulse
	Export   ExportConfig
}

// LoadScenario reads a scenario file. Membrane constants default to
// the canonical set; any key present under [membrane] overrides it.
//
//	[sim]
//	name = "reference"
//	duration = 1000.0
//	dt = 0.1
//	[stimulus.0]
//	onset = 2000
//	offset = 5000
//	amplitude = 10.0
//	[output]
//	csv = true
//	file = "reference"
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	sc := Scenario{
		Name:     v.GetString("sim.name"),
		Duration: v.GetFloat64("sim.duration"),
		Dt:       v.GetFloat64("sim.dt"),
		Params:   DefaultMembrane(),
	}

	p := &sc.Params
	for key, dst := range map[string]*float64{
		"membrane.Cm":    &p.Cm,
		"membrane.gNa":   &p.GNa,
		"membrane.gK":    &p.GK,
		"membrane.gL":    &p.GL,
		"membrane.ENa":   &p.ENa,
		"membrane.EK":    &p.EK,
		"membrane.EL":    &p.EL,
		"membrane.Vrest": &p.VRest,
	} {
		if v.IsSet(key) {
			*dst = v.GetFloat64(key)
		}
	}

	for pulseNo := 0; v.IsSet(fmt.Sprintf("stimulus.%d", pulseNo)); pulseNo++ {
		sc.Pulses = append(sc.Pulses, Pulse{
			Onset:     v.GetInt(fmt.Sprintf("stimulus.%d.onset", pulseNo)),
			Offset:    v.GetInt(fmt.Sprintf("stimulus.%d.offset", pulseNo)),
			Amplitude: v.GetFloat64(fmt.Sprintf("stimulus.%d.amplitude", pulseNo)),
		})
	}

	sc.Export = ExportConfig{
		Filename:  v.GetString("output.file"),
		OutputDir: v.GetString("output.dir"),
		AsCSV:     v.GetBool("output.csv"),
		Timestamp: v.GetBool("output.timestamp"),
	}
	if sc.Export.Filename == "" {
		sc.Export.Filename = sc.Name
	}
	return sc, nil
}

// Build validates the scenario and assembles a ready simulation with a
// resting initial state.
func (sc Scenario) Build() (*Simulation, error) {
	stim, err := NewStimulus(sc.Duration, sc.Dt, sc.Pulses...)
	if err != nil {
		return nil, err
	}
	neuron, err := NewRestingState(sc.Params)
	if err != nil {
		return nil, err
	}
	return NewSimulation(&neuron, sc.Params, stim, sc.Dt, sc.Export)
}
