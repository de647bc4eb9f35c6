package core

// StructuralState X(t) = (Delta, Phi, M, Kappa) plus the previous regime.
// It is the only durable representation of the organism; the engine reads
// a snapshot and returns a new value, it never mutates one in place.
type StructuralState struct {
	// Delta is the deformation vector, fixed at DeltaDim components.
	Delta [DeltaDim]float64
	// Phi is the accumulated, non-negative structural tension.
	Phi float64
	// M is the accumulated memory; monotonically non-decreasing.
	M float64
	// Kappa is viability; Kappa == 0 is the absorbing collapse state.
	Kappa float64
	// RegimePrev is the regime produced by the previous accepted step.
	RegimePrev Regime
}

// Reset returns the canonical initial StructuralState: Delta = 0, Phi = 0,
// M = 0, Kappa = 1, RegimePrev = ACC.
func Reset() StructuralState {
	return StructuralState{
		Phi:        ResetPhi,
		M:          0.0,
		Kappa:      ResetKappa,
		RegimePrev: RegimeACC,
	}
}

// IsFinite reports whether every field is a finite float (no NaN, no Inf).
// It does not reject subnormals; that is fpguard's job.
func (s StructuralState) IsFinite() bool {
	if !isFinite(s.Phi) || !isFinite(s.M) || !isFinite(s.Kappa) {
		return false
	}
	for _, v := range s.Delta {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// IsLiving reports whether the organism has not yet collapsed.
func (s StructuralState) IsLiving() bool { return s.Kappa > 0.0 }

// IsCollapsed reports whether the organism is in the absorbing Kappa == 0 state.
func (s StructuralState) IsCollapsed() bool { return s.Kappa == 0.0 }
