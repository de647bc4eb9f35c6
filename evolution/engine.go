package evolution

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/MaryanBog/fmrt/core"
)

// Evolve advances state under event and returns the next state together
// with its derived metrics (spec.md §4.3). event must already be validated
// and canonicalized (package event); Evolve performs no validation of its
// own.
//
// Three mutually exclusive paths, checked in this order:
//
//  1. event.Type == Reset: the organism is restored to canonical defaults;
//     metrics are pinned to the reset values (curvature 0, det g = METRIC_C1,
//     tau = TAU_MIN, mu = 0, Elastic, ACC, no collapse).
//  2. state.Kappa <= core.EpsKappa on entry: the organism is already
//     collapsed. Delta, Phi, and M pass through unchanged; Kappa is pinned
//     to 0 and the metrics are pinned to the collapse values. No arithmetic
//     runs. (The caller — package fmrt's Step — is responsible for reporting
//     this as status=DEAD rather than OK; Evolve itself only computes the
//     pinned values.)
//  3. Otherwise the full (a)-(g) update sequence runs, each step reading the
//     previous step's results as spec.md §4.3 requires.
//
// Regime is computed twice, exactly as spec.md §4.3(f)/(9) describes: once
// from the state's pre-step classification (seeding the irreversibility
// ratchet against state.RegimePrev), and again from the post-step
// classification, using the seed as the "previous" argument. The resulting
// forced value is DerivedMetrics.Regime. The post-step classification's own
// unforced candidate — before either pass folds in a previous regime — is
// also returned as DerivedMetrics.NaturalRegime, for the invariant
// validator's regime check to compare against state.RegimePrev directly.
func Evolve(state core.StructuralState, event core.StructEvent) (core.StructuralState, core.DerivedMetrics) {
	if event.Type == core.EventReset {
		return core.Reset(), resetMetrics()
	}

	if state.Kappa <= core.EpsKappa {
		return collapsedEntryState(state), collapseMetrics(0.0)
	}

	return evolveLive(state, event)
}

func resetMetrics() core.DerivedMetrics {
	return core.DerivedMetrics{
		CurvatureR:        0.0,
		DetG:              core.MetricC1,
		Tau:               core.TauMin,
		Mu:                0.0,
		MorphClass:        core.MorphologyElastic,
		Regime:            core.RegimeACC,
		NaturalRegime:     core.RegimeACC,
		IsCollapse:        false,
		CollapseDistance:  core.ResetKappa,
		CollapseSpeed:     0.0,
		CollapseIntensity: 0.0,
	}
}

// collapsedEntryState preserves Delta, Phi, and M from an already-collapsed
// state and pins Kappa and RegimePrev.
func collapsedEntryState(state core.StructuralState) core.StructuralState {
	return core.StructuralState{
		Delta:      state.Delta,
		Phi:        state.Phi,
		M:          state.M,
		Kappa:      0.0,
		RegimePrev: core.RegimeCOL,
	}
}

// collapseMetrics builds the metrics pinned by processCollapse (spec.md
// §4.3g): det g, tau, and collapse_distance are forced to their collapse
// values regardless of curvatureR, which is passed through unchanged
// (§4.3g does not mention forcing curvature_R).
func collapseMetrics(curvatureR float64) core.DerivedMetrics {
	return core.DerivedMetrics{
		CurvatureR:        curvatureR,
		DetG:              0.0,
		Tau:               0.0,
		Mu:                1.0,
		MorphClass:        core.MorphologyNearCollapse,
		Regime:            core.RegimeCOL,
		NaturalRegime:     core.RegimeCOL,
		IsCollapse:        true,
		CollapseDistance:  0.0,
		CollapseSpeed:     0.0,
		CollapseIntensity: curvatureR,
	}
}

// evolveLive runs the full (a)-(g) update sequence on a living organism.
func evolveLive(state core.StructuralState, event core.StructEvent) (core.StructuralState, core.DerivedMetrics) {
	// Pre-step morphology classification, used only to seed the regime
	// irreversibility ratchet (spec.md §4.3f/(9)).
	rPre := curvature(state.Delta, state.Phi, state.M, state.Kappa)
	muPre := morphIndex(rPre)
	seedCandidate := regimeFromClass(classify(muPre))
	seed := maxRegime(seedCandidate, state.RegimePrev)

	// (a) Delta update — flexion differentiation.
	var stimulus [core.DeltaDim]float64
	if event.Type == core.EventUpdate {
		stimulus = event.Stimulus
	}
	var deltaPrime [core.DeltaDim]float64
	for i := 0; i < core.DeltaDim; i++ {
		v := state.Delta[i] + stimulus[i]*event.Dt - core.LambdaRelax*state.Delta[i]*event.Dt
		deltaPrime[i] = clamp(v, -core.MaxDelta, core.MaxDelta)
	}

	// (b) Phi update — tension.
	deformation := 0.0
	if event.Type == core.EventUpdate {
		deformation = euclideanDistance(deltaPrime, state.Delta)
	}
	phiPrime := math.Max(0.0, state.Phi+core.TensionA*deformation-core.TensionB*event.Dt)

	// (c) M update — memory accumulation.
	tauCurrent := computeTau(state.Kappa)
	mPrime := math.Max(state.M, state.M+math.Max(0.0, tauCurrent)*event.Dt)

	// (d) Kappa update — viability decay. R_new and mu_new read Delta' and
	// Phi' but the PRE-step M and Kappa (M' and Kappa' are not yet defined).
	rNew := curvature(deltaPrime, phiPrime, state.M, state.Kappa)
	muNew := morphIndex(rNew)
	decay := core.DecayA4
	if event.Type == core.EventUpdate {
		decay = core.DecayA1*rNew + core.DecayA2*state.Phi + core.DecayA3*muNew + core.DecayA4
	}
	kappaPrime := math.Max(0.0, state.Kappa-event.Dt*decay)

	// (e) Metrics computation, now using the fully post-step quadruple.
	curvatureR := curvature(deltaPrime, phiPrime, mPrime, kappaPrime)
	mu := morphIndex(curvatureR)
	morphClass := classify(mu)

	var detG, tau float64
	if kappaPrime <= 0.0 {
		detG, tau = 0.0, 0.0
	} else {
		detG = math.Max(core.EpsMetric, core.MetricC1*math.Exp(-core.MetricC2*curvatureR)*kappaPrime)
		tau = math.Max(core.TauMin, core.TauMin+core.TauScale*math.Exp(-core.LambdaK*kappaPrime))
	}

	// (f) Regime computation, second pass: seed feeds in as "previous".
	naturalCandidate := regimeCandidate(kappaPrime, morphClass)
	finalRegime := maxRegime(naturalCandidate, seed)

	collapseSpeed := 0.0
	if event.Dt > 0.0 {
		collapseSpeed = deformation / event.Dt
	}

	nextState := core.StructuralState{
		Delta:      deltaPrime,
		Phi:        phiPrime,
		M:          mPrime,
		Kappa:      kappaPrime,
		RegimePrev: finalRegime,
	}
	metrics := core.DerivedMetrics{
		CurvatureR:        curvatureR,
		DetG:              detG,
		Tau:               tau,
		Mu:                mu,
		MorphClass:        morphClass,
		Regime:            finalRegime,
		NaturalRegime:     naturalCandidate,
		IsCollapse:        false,
		CollapseDistance:  kappaPrime,
		CollapseSpeed:     collapseSpeed,
		CollapseIntensity: curvatureR,
	}

	// (g) processCollapse: kappaPrime crossing the threshold overrides the
	// metrics computed above (but not Delta/Phi/M, which already carry
	// through on nextState).
	if kappaPrime <= core.EpsKappa {
		nextState.Kappa = 0.0
		nextState.RegimePrev = core.RegimeCOL
		metrics.DetG = 0.0
		metrics.Tau = 0.0
		metrics.Mu = 1.0
		metrics.MorphClass = core.MorphologyNearCollapse
		metrics.Regime = core.RegimeCOL
		metrics.NaturalRegime = core.RegimeCOL
		metrics.IsCollapse = true
		metrics.CollapseDistance = 0.0
	}

	return nextState, metrics
}

// curvature computes R = CURV_A1*||delta||^2 + CURV_A2*phi + CURV_A3*(m/(1+kappa)).
func curvature(delta [core.DeltaDim]float64, phi, m, kappa float64) float64 {
	d := delta[:]
	sumSquares := floats.Dot(d, d)
	return core.CurvA1*sumSquares + core.CurvA2*phi + core.CurvA3*(m/(1+kappa))
}

// morphIndex computes mu = clamp(R/(R+MORPH_BETA), 0, 1), with R <= 0 mapped
// to 0 per spec.md §4.3(e).
func morphIndex(r float64) float64 {
	if r <= 0.0 {
		return 0.0
	}
	return clamp(r/(r+core.MorphBeta), 0.0, 1.0)
}

// classify buckets mu into its morphology band per spec.md §4.3(e):
// [0, 0.25) Elastic, [0.25, 0.5) Plastic, [0.5, 0.75) Degenerate,
// [0.75, 1] NearCollapse.
func classify(mu float64) core.MorphologyClass {
	switch {
	case mu < 0.25:
		return core.MorphologyElastic
	case mu < 0.5:
		return core.MorphologyPlastic
	case mu < 0.75:
		return core.MorphologyDegenerate
	default:
		return core.MorphologyNearCollapse
	}
}

// regimeFromClass maps a living morphology class to its natural regime
// candidate (spec.md §4.3f). Degenerate and NearCollapse both map to REL;
// neither can produce COL while kappa > 0.
func regimeFromClass(mc core.MorphologyClass) core.Regime {
	switch mc {
	case core.MorphologyElastic:
		return core.RegimeACC
	case core.MorphologyPlastic:
		return core.RegimeDEV
	default: // Degenerate, NearCollapse
		return core.RegimeREL
	}
}

// regimeCandidate is regimeFromClass generalized to a possibly-collapsed
// kappa: kappa <= 0 always candidates COL.
func regimeCandidate(kappa float64, mc core.MorphologyClass) core.Regime {
	if kappa <= 0.0 {
		return core.RegimeCOL
	}
	return regimeFromClass(mc)
}

// maxRegime returns the regime with the higher order, implementing the
// irreversibility ratchet final = max(candidate, previous).
func maxRegime(a, b core.Regime) core.Regime {
	if a > b {
		return a
	}
	return b
}

// euclideanDistance returns ||a - b||_2 over the fixed DeltaDim vectors,
// using gonum's Dot rather than its Norm to keep the naive, order-preserving
// sum-of-squares the reference arithmetic relies on (Norm's scaled
// dnrm2-style summation can diverge at the ULP level).
func euclideanDistance(a, b [core.DeltaDim]float64) float64 {
	var diff [core.DeltaDim]float64
	for i := range diff {
		diff[i] = a[i] - b[i]
	}
	d := diff[:]
	return math.Sqrt(floats.Dot(d, d))
}

// computeTau is the temporal-density function applied to a pre-step kappa
// during the M update (spec.md §4.3c), distinct from the post-step tau
// computed in (e) because it always evaluates against the *current* kappa
// rather than conditionally zeroing at collapse.
func computeTau(kappa float64) float64 {
	return math.Max(core.TauMin, core.TauMin+core.TauScale*math.Exp(-core.LambdaK*kappa))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
