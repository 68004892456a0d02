package main

import (
	"flag"
	"log"
	"strings"

	"hodgkin"
)

// This code effectively only reads the scenario file and runs the simulation.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "simulation scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	if !strings.HasSuffix(scenario, ".toml") {
		scenario += ".toml"
	}
	sc, err := hodgkin.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("could not load scenario: %s", err)
	}
	if verbose {
		log.Printf("[conf] %s: T=%g ms dt=%g ms, %d pulse(s)", sc.Name, sc.Duration, sc.Dt, len(sc.Pulses))
	}
	sim, err := sc.Build()
	if err != nil {
		log.Fatalf("invalid scenario: %s", err)
	}
	traj, err := sim.Run()
	if err != nil {
		log.Fatalf("simulation failed: %s", err)
	}
	if verbose {
		log.Printf("recorded %d samples, %d spike(s) above 0 mV", traj.Len(), traj.Spikes(0))
	}
}
