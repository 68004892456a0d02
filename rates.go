// Package hodgkin implements a deterministic single-compartment
// Hodgkin-Huxley membrane simulator: four coupled ODEs (membrane
// voltage and three ion-channel gates) integrated with a fixed-step
// RK4 scheme under an externally injected current waveform.
package hodgkin

import "math"

const (
	// rateVMin and rateVMax bound the voltage fed to the rate functions to
	// prevent overflow in the exponential terms during unstable excursions.
	// Rates at the bounds are degraded approximations, not exact values.
	rateVMin = -100 // mV
	rateVMax = 100  // mV
	// singularityε is the half-width around a removable singularity within
	// which the stable limit value is substituted for the direct expression.
	singularityε = 1e-6 // mV
)

// clampV bounds a voltage to [rateVMin, rateVMax].
func clampV(v float64) float64 {
	return math.Max(rateVMin, math.Min(rateVMax, v))
}

// vexp evaluates k*x/(1-exp(-x/d)), the shared algebraic form of αm and
// αn, substituting the limit k*d within singularityε of x=0.
func vexp(x, k, d float64) float64 {
	if math.Abs(x) < singularityε {
		return k * d
	}
	return k * x / (1 - math.Exp(-x/d))
}

// AlphaM returns the sodium activation opening rate (1/ms).
// Removable singularity at V=-40 mV.
func AlphaM(v float64) float64 {
	return vexp(clampV(v)+40, 0.1, 10)
}

// BetaM returns the sodium activation closing rate (1/ms).
func BetaM(v float64) float64 {
	return 4 * math.Exp(-(clampV(v)+65)/18)
}

// AlphaH returns the sodium inactivation opening rate (1/ms).
func AlphaH(v float64) float64 {
	return 0.07 * math.Exp(-(clampV(v)+65)/20)
}

// BetaH returns the sodium inactivation closing rate (1/ms).
func BetaH(v float64) float64 {
	return 1 / (1 + math.Exp(-(clampV(v)+35)/10))
}

// AlphaN returns the potassium activation opening rate (1/ms).
// Removable singularity at V=-55 mV.
func AlphaN(v float64) float64 {
	return vexp(clampV(v)+55, 0.01, 10)
}

// BetaN returns the potassium activation closing rate (1/ms).
func BetaN(v float64) float64 {
	return 0.125 * math.Exp(-(clampV(v)+65)/80)
}

// gateSteadyState returns the equilibrium open probability α/(α+β) of a
// gate at voltage v, or a SingularityError if the rates do not resolve
// to a usable pair (only reachable with a non-finite voltage).
func gateSteadyState(α, β func(float64) float64, v float64) (float64, error) {
	a, b := α(v), β(v)
	sum := a + b
	if math.IsNaN(sum) || sum <= 0 {
		return 0, &SingularityError{v}
	}
	return a / sum, nil
}
