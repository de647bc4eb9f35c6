package core

// DerivedMetrics are the geometric quantities the evolution engine computes
// every step. They are not part of StructuralState — they are recomputed
// from scratch each step and carried only in the StateEnvelope.
type DerivedMetrics struct {
	// CurvatureR is the scalar curvature R.
	CurvatureR float64
	// DetG is the metric determinant; 0 iff collapsed.
	DetG float64
	// Tau is the temporal density; 0 iff collapsed.
	Tau float64
	// Mu is the morphology index, clamped to [0,1].
	Mu float64

	// MorphClass is the morphology band Mu falls into.
	MorphClass MorphologyClass
	// Regime is the post-step regime, already folded through the irreversibility
	// ratchet described in spec.md §4.3(f) (the two-pass seed/final computation).
	Regime Regime
	// NaturalRegime is the raw post-step classification candidate, taken
	// before either pass's forcing against a previous regime. The invariant
	// validator's regime check compares this against the pre-step
	// RegimePrev directly: a step whose natural classification would demote
	// the regime is rejected outright rather than silently re-promoted.
	NaturalRegime Regime

	// IsCollapse reports whether this step ended with Kappa == 0.
	IsCollapse bool
	// CollapseDistance equals the post-step Kappa (0 once collapsed).
	CollapseDistance float64
	// CollapseSpeed is ||Delta' - Delta|| / dt, computed during the Phi update.
	CollapseSpeed float64
	// CollapseIntensity is a symbolic intensity derived from curvature.
	CollapseIntensity float64
}

// IsFinite reports whether every numeric field is finite.
func (m DerivedMetrics) IsFinite() bool {
	return isFinite(m.CurvatureR) &&
		isFinite(m.DetG) &&
		isFinite(m.Tau) &&
		isFinite(m.Mu) &&
		isFinite(m.CollapseDistance) &&
		isFinite(m.CollapseSpeed) &&
		isFinite(m.CollapseIntensity)
}
