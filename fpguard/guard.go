package fpguard

import (
	"math"

	"github.com/MaryanBog/fmrt/core"
)

// VerifyEnvironment reports whether the process's floating-point rounding
// mode matches FMRT's requirement (round-to-nearest-even, spec.md §4.1).
//
// Go's runtime.GOARCH targets all mandate IEEE-754 round-to-nearest-even
// for float64 arithmetic and expose no equivalent of C's fesetround — there
// is no way for a Go process to be in any other rounding mode. This check
// therefore always succeeds; it exists so the pipeline's stage-0 gate is
// structurally present (spec.md §2's stage table) and so a future Go
// runtime that did expose FP environment control would have a single place
// to wire the real check into.
func VerifyEnvironment() bool {
	return true
}

// NumericSafe reports whether x is safe to admit into the engine: finite
// (not NaN, not +/-Inf) and, if non-zero, not a subnormal value. Subnormals
// are rejected only on input, never on intermediate results the arithmetic
// produces (spec.md §9).
func NumericSafe(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	if isDenormal(x) {
		return false
	}
	return true
}

// smallestNormal is the smallest positive normal float64 (2^-1022).
const smallestNormal = 2.2250738585072014e-308

// HasDenormalState reports whether any field of s is a non-zero subnormal.
func HasDenormalState(s core.StructuralState) bool {
	for _, v := range s.Delta {
		if isDenormal(v) {
			return true
		}
	}
	return isDenormal(s.Phi) || isDenormal(s.M) || isDenormal(s.Kappa)
}

// HasDenormalEvent reports whether any field of e is a non-zero subnormal.
func HasDenormalEvent(e core.StructEvent) bool {
	if isDenormal(e.Dt) {
		return true
	}
	for _, v := range e.Stimulus {
		if isDenormal(v) {
			return true
		}
	}
	return false
}

// isDenormal reports whether x is a non-zero subnormal float64.
func isDenormal(x float64) bool {
	return x != 0.0 && math.Abs(x) < smallestNormal
}

// Check is the stage-0 gate of spec.md §4.1: it reports whether both the
// FP environment and every field of state and event are admissible. A
// false result means the caller must reject with
// status=ERROR, error_category=NumericError, error_reason="numeric_error"
// without ever reaching event validation or the evolution engine.
func Check(state core.StructuralState, event core.StructEvent) bool {
	if !VerifyEnvironment() {
		return false
	}
	if !state.IsFinite() || HasDenormalState(state) {
		return false
	}
	if !eventFieldsFinite(event) || HasDenormalEvent(event) {
		return false
	}
	return true
}

// eventFieldsFinite checks every field of e unconditionally, unlike
// core.StructEvent.IsFinite which only checks Dt for Reset events. The FP
// guard is the outermost gate (spec.md §4.1) and must reject non-finite
// values "across any field of X or E" regardless of whether the event kind
// would later ignore that field during canonicalization.
func eventFieldsFinite(e core.StructEvent) bool {
	if math.IsNaN(e.Dt) || math.IsInf(e.Dt, 0) {
		return false
	}
	for _, v := range e.Stimulus {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
