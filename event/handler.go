package event

import (
	"math"

	"github.com/MaryanBog/fmrt/core"
)

// Validate checks an event's shape per spec.md §4.2.
//
// Reset requires only a finite Dt; all other fields are ignored. Update,
// Gap, and Heartbeat require every field finite and Dt > 0. Any other
// Type value is rejected as UnsupportedOperation.
//
// On success it returns (true, core.ErrorNone, ""). On failure it returns
// (false, category, reason) with category/reason set for the caller to
// build an error envelope from.
func Validate(e core.StructEvent) (ok bool, category core.ErrorCategory, reason string) {
	if e.Type == core.EventReset {
		if !isFinite(e.Dt) {
			return false, core.ErrorInvalidEvent, core.ReasonInvalidEvent
		}
		return true, core.ErrorNone, ""
	}

	switch e.Type {
	case core.EventUpdate, core.EventGap, core.EventHeartbeat:
	default:
		return false, core.ErrorUnsupportedOperation, core.ReasonUnsupportedOperation
	}

	// Finite check for Update / Gap / Heartbeat.
	if !e.IsFinite() {
		return false, core.ErrorInvalidEvent, core.ReasonInvalidEvent
	}

	// dt rules.
	if !e.HasValidDt() {
		return false, core.ErrorInvalidEvent, core.ReasonInvalidEvent
	}

	return true, core.ErrorNone, ""
}

// Canonicalize normalizes an already-validated event in place: Gap and
// Heartbeat have their stimulus zeroed, Reset forces dt = 0 and zeroes
// stimulus, and dt is clamped into [core.DtClampMin, core.DtClampMax].
//
// The lower clamp never fires after Validate: Update/Gap/Heartbeat with
// dt <= 0 were already rejected, and Reset's dt is forced to exactly 0
// first. It changes dt only for an unvalidated event with a negative dt.
// Both the check in Validate and the clamp here are kept explicit, matching
// the reference implementation (spec.md §9).
func Canonicalize(e *core.StructEvent) {
	if e.Type == core.EventGap || e.Type == core.EventHeartbeat {
		e.Stimulus = [core.DeltaDim]float64{}
	}

	if e.Type == core.EventReset {
		e.Dt = 0.0
		e.Stimulus = [core.DeltaDim]float64{}
	}

	if e.Dt < core.DtClampMin {
		e.Dt = core.DtClampMin
	}
	if e.Dt > core.DtClampMax {
		e.Dt = core.DtClampMax
	}
}

// isFinite mirrors core's private helper for the one field (Dt) this
// package needs to check outside of core.StructEvent.IsFinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
