package fmrt

import (
	"github.com/MaryanBog/fmrt/core"
	"github.com/MaryanBog/fmrt/diagnostics"
	"github.com/MaryanBog/fmrt/event"
	"github.com/MaryanBog/fmrt/evolution"
	"github.com/MaryanBog/fmrt/fpguard"
	"github.com/MaryanBog/fmrt/invariant"
)

// Step is the FMRT single-step transition (X(t), E(t)) -> Envelope(t+1).
// It is pure, deterministic, and allocation-free on every path: identical
// inputs always produce a bit-identical envelope.
//
// The pipeline runs in five stages (spec.md §2):
//
//  0. fpguard.Check rejects non-finite or subnormal input across every
//     field of state and event with status=ERROR, error_category=NumericError.
//  1. event.Validate/Canonicalize rejects malformed event shapes with
//     status=ERROR, error_category in {InvalidEvent, UnsupportedOperation}.
//  2. evolution.Evolve always runs on a validated event and computes the
//     next state and its derived metrics.
//  3. invariant.Validate runs on every non-Reset event; a Reset event
//     bypasses it (its post-state is trivially consistent by construction).
//  4. diagnostics assembles the final envelope: OK on an accepted step,
//     ERROR on a validation or invariant failure (preserving the pre-step
//     state), or DEAD when a non-Reset event targets a state that was
//     already collapsed (Kappa == 0) on entry.
func Step(state core.StructuralState, evt core.StructEvent) core.StateEnvelope {
	if !fpguard.Check(state, evt) {
		return diagnostics.BuildError(evt.Type, state, core.DerivedMetrics{}, core.InvariantStatus{}, core.ErrorNumericError, "")
	}

	ok, category, reason := event.Validate(evt)
	if !ok {
		return diagnostics.BuildError(evt.Type, state, core.DerivedMetrics{}, core.InvariantStatus{}, category, reason)
	}

	canonical := evt
	event.Canonicalize(&canonical)

	next, metrics := evolution.Evolve(state, canonical)

	if canonical.Type == core.EventReset {
		return diagnostics.BuildOK(canonical.Type, next, metrics, trivialInvariants())
	}

	invariants := invariant.Validate(state, next, metrics)

	if state.Kappa <= core.EpsKappa {
		return diagnostics.BuildDead(canonical.Type, next, metrics, invariants)
	}

	if !invariants.AllOK {
		return diagnostics.BuildError(canonical.Type, state, core.DerivedMetrics{}, invariants, core.ErrorInvariantViolation, "")
	}

	return diagnostics.BuildOK(canonical.Type, next, metrics, invariants)
}

// Reset returns the canonical initial StructuralState, equivalent to
// Step(anything, {Type: Reset}).State but without running the pipeline.
func Reset() core.StructuralState {
	return core.Reset()
}

// trivialInvariants returns the all-bits-set, AllOK=true status used for
// Reset envelopes: stage 3 is bypassed for Reset (spec.md §2), and a freshly
// reset state trivially satisfies every structural invariant.
func trivialInvariants() core.InvariantStatus {
	var status core.InvariantStatus
	status.Set(core.InvMemory)
	status.Set(core.InvKappa)
	status.Set(core.InvMetric)
	status.Set(core.InvTau)
	status.Set(core.InvMorphology)
	status.Set(core.InvRegime)
	status.Set(core.InvCollapse)
	status.Set(core.InvForbidden)
	status.AllOK = true
	return status
}
