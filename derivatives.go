package hodgkin

// IonCurrents returns the instantaneous sodium, potassium and leak
// currents (µA/cm²) for the given state.
func IonCurrents(p MembraneParameters, s NeuronState) (iNa, iK, iL float64) {
	iNa = p.GNa * s.M * s.M * s.M * s.H * (s.V - p.ENa)
	iK = p.GK * s.N * s.N * s.N * s.N * (s.V - p.EK)
	iL = p.GL * (s.V - p.EL)
	return
}

// Derivatives returns the instantaneous time derivative of the full
// state under the external current iExt (µA/cm²). Pure function of its
// inputs; the returned NeuronState holds dV/dt, dm/dt, dh/dt, dn/dt.
func Derivatives(p MembraneParameters, s NeuronState, iExt float64) NeuronState {
	iNa, iK, iL := IonCurrents(p, s)
	return NeuronState{
		V: (iExt - iNa - iK - iL) / p.Cm,
		M: AlphaM(s.V)*(1-s.M) - BetaM(s.V)*s.M,
		H: AlphaH(s.V)*(1-s.H) - BetaH(s.V)*s.H,
		N: AlphaN(s.V)*(1-s.N) - BetaN(s.V)*s.N,
	}
}
