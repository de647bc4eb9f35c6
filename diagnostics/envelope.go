package diagnostics

import "github.com/MaryanBog/fmrt/core"

// BuildOK assembles the envelope for an accepted step: state and metrics
// are copied through, status is OK, and the error category/reason are the
// canonical "no error" values.
func BuildOK(eventType core.EventType, state core.StructuralState, metrics core.DerivedMetrics, invariants core.InvariantStatus) core.StateEnvelope {
	return core.StateEnvelope{
		State:         state,
		Metrics:       metrics,
		Invariants:    invariants,
		Status:        core.StatusOK,
		ErrorCategory: core.ErrorNone,
		ErrorReason:   core.ReasonNone,
		EventType:     eventType,
	}
}

// BuildError assembles the envelope for a rejected step. priorState is the
// caller's pre-step state, which the envelope preserves unchanged
// (spec.md §7: "the emitted state equals the input state"); priorMetrics
// likewise carries through whatever was computed for that state (typically
// the zero value when rejection happened before evolution ran). If reason
// is empty the category's canonical string is used.
func BuildError(eventType core.EventType, priorState core.StructuralState, priorMetrics core.DerivedMetrics, invariants core.InvariantStatus, category core.ErrorCategory, reason string) core.StateEnvelope {
	if reason == "" {
		reason = core.ErrorCategoryReason(category)
	}
	return core.StateEnvelope{
		State:         priorState,
		Metrics:       priorMetrics,
		Invariants:    invariants,
		Status:        core.StatusError,
		ErrorCategory: category,
		ErrorReason:   reason,
		EventType:     eventType,
	}
}

// BuildDead assembles the envelope for a non-Reset event that targeted an
// already-collapsed state (spec.md §4.5): state and metrics are whatever
// evolution computed for the already-dead organism (Kappa pinned to 0,
// collapse metrics pinned), but the status is DEAD rather than OK.
func BuildDead(eventType core.EventType, state core.StructuralState, metrics core.DerivedMetrics, invariants core.InvariantStatus) core.StateEnvelope {
	return core.StateEnvelope{
		State:         state,
		Metrics:       metrics,
		Invariants:    invariants,
		Status:        core.StatusDead,
		ErrorCategory: core.ErrorPostCollapse,
		ErrorReason:   core.ReasonPostCollapse,
		EventType:     eventType,
	}
}
