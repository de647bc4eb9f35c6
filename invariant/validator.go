package invariant

import "github.com/MaryanBog/fmrt/core"

// Validate checks all eight structural invariants of spec.md §3 against the
// pre-step state prev, the post-step state next, and its metrics. Every
// check runs unconditionally — none short-circuit on an earlier failure —
// and the returned InvariantStatus carries one bit per satisfied check plus
// the overall conjunction in AllOK.
func Validate(prev, next core.StructuralState, metrics core.DerivedMetrics) core.InvariantStatus {
	var status core.InvariantStatus

	memoryOK := checkMemory(prev, next)
	kappaOK := checkKappa(next)
	metricOK := checkMetric(next, metrics)
	tauOK := checkTau(next, metrics)
	morphologyOK := checkMorphology(metrics)
	regimeOK := checkRegime(prev, metrics)
	collapseOK := checkCollapse(next, metrics)
	forbiddenOK := checkForbidden(next, metrics)

	if memoryOK {
		status.Set(core.InvMemory)
	}
	if kappaOK {
		status.Set(core.InvKappa)
	}
	if metricOK {
		status.Set(core.InvMetric)
	}
	if tauOK {
		status.Set(core.InvTau)
	}
	if morphologyOK {
		status.Set(core.InvMorphology)
	}
	if regimeOK {
		status.Set(core.InvRegime)
	}
	if collapseOK {
		status.Set(core.InvCollapse)
	}
	if forbiddenOK {
		status.Set(core.InvForbidden)
	}

	status.AllOK = memoryOK && kappaOK && metricOK && tauOK &&
		morphologyOK && regimeOK && collapseOK && forbiddenOK

	return status
}

// checkMemory verifies M(t+1) >= M(t) (spec.md invariant 1).
func checkMemory(prev, next core.StructuralState) bool {
	return next.M >= prev.M
}

// checkKappa verifies kappa >= 0 (spec.md invariant 2).
func checkKappa(next core.StructuralState) bool {
	return next.Kappa >= 0.0
}

// checkMetric verifies kappa > eps_kappa => det g > 0, and kappa <= eps_kappa
// => det g == 0 (spec.md invariant 3).
func checkMetric(next core.StructuralState, metrics core.DerivedMetrics) bool {
	if next.Kappa > core.EpsKappa {
		return metrics.DetG > 0.0
	}
	return metrics.DetG == 0.0
}

// checkTau verifies kappa > eps_kappa => tau > 0, and kappa <= eps_kappa =>
// tau == 0 (spec.md invariant 4).
func checkTau(next core.StructuralState, metrics core.DerivedMetrics) bool {
	if next.Kappa > core.EpsKappa {
		return metrics.Tau > 0.0
	}
	return metrics.Tau == 0.0
}

// checkMorphology verifies 0 <= mu <= 1 (spec.md invariant 5).
func checkMorphology(metrics core.DerivedMetrics) bool {
	return metrics.Mu >= 0.0 && metrics.Mu <= 1.0
}

// checkRegime verifies order(regime') >= order(regime_prev) (spec.md
// invariant 6), comparing the post-step NaturalRegime — the classification
// before either evolution pass forces it against a seed — to the state's
// pre-step RegimePrev. A step whose organic classification would demote the
// regime fails here even though DerivedMetrics.Regime itself is already
// monotonic by construction (evolution.Evolve always folds it through
// max(candidate, previous)); this is what makes a genuine regime demotion
// attempt (scenario: a caller-supplied RegimePrev the natural dynamics do
// not support) a rejected step rather than a silently corrected one.
func checkRegime(prev core.StructuralState, metrics core.DerivedMetrics) bool {
	return metrics.NaturalRegime >= prev.RegimePrev
}

// checkCollapse verifies the collapse-geometry invariant: kappa <= eps_kappa
// implies det g == 0, tau == 0, mu == 1, regime == COL (spec.md invariant 7).
func checkCollapse(next core.StructuralState, metrics core.DerivedMetrics) bool {
	if next.Kappa > core.EpsKappa {
		return true
	}
	return metrics.DetG == 0.0 && metrics.Tau == 0.0 &&
		metrics.Mu == 1.0 && metrics.Regime == core.RegimeCOL
}

// checkForbidden verifies every state and metric field is finite, kappa is
// non-negative, and metric/temporal consistency holds while living (spec.md
// invariant 8). It restates invariants 2-4 over the full envelope as a final
// structural gate, matching the reference implementation's redundancy.
func checkForbidden(next core.StructuralState, metrics core.DerivedMetrics) bool {
	if !next.IsFinite() || !metrics.IsFinite() {
		return false
	}
	if next.Kappa < 0.0 {
		return false
	}
	if next.Kappa > core.EpsKappa {
		return metrics.DetG > 0.0 && metrics.Tau > 0.0
	}
	return true
}
