package bridge

import (
	"math"
	"sync"

	"github.com/MaryanBog/fmrt"
	"github.com/MaryanBog/fmrt/core"
)

// Session holds one persistent StructuralState behind a mutex, the Go
// equivalent of the C bridge's static g_state (spec.md §5: "the bridge
// holds a single state cell... callers must serialize"). A zero Session is
// not usable; construct one with NewSession.
type Session struct {
	mu    sync.Mutex
	state core.StructuralState
}

// NewSession returns a Session initialized to the canonical reset state.
func NewSession() *Session {
	return &Session{state: fmrt.Reset()}
}

// Reset restores the session's state to canonical defaults, mirroring
// FMRT_Reset().
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fmrt.Reset()
}

// State returns a snapshot of the session's current StructuralState.
func (s *Session) State() core.StructuralState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Step validates ev at the bridge's own layer, runs it through fmrt.Step
// against the session's current state, and — unless the step's status is
// fatal — commits the resulting state before returning.
//
// This is a two-tier validation, matching the original bridge: bridge-level
// shape checks (this function) reject malformed input before the engine is
// ever invoked; engine-level semantic validation (package event, package
// invariant) still runs for anything that passes this gate and may itself
// reject with status=ERROR — that is a normal, non-fatal Envelope, not a
// BridgeResult failure.
func (s *Session) Step(ev *Event) (Envelope, BridgeResult) {
	if ev == nil {
		return Envelope{}, ResultNullPointer
	}
	if !validateBridgeEvent(*ev) {
		return Envelope{}, ResultBadInput
	}

	structEvent := core.StructEvent{
		Type:     core.EventType(ev.Type),
		Dt:       ev.Dt,
		Stimulus: ev.Stimulus,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	env := fmrt.Step(s.state, structEvent)

	switch env.Status {
	case core.StatusOK, core.StatusError, core.StatusDead:
	default:
		return Envelope{}, ResultFatalStatus
	}

	s.state = env.State

	return Envelope{
		Status:       uint8(env.Status),
		InvariantsOK: boolToByte(env.Invariants.AllOK),
		Derived: [4]float64{
			env.Metrics.CurvatureR,
			env.Metrics.DetG,
			env.Metrics.Tau,
			0.0,
		},
	}, ResultOK
}

// validateBridgeEvent is the bridge's own shape gate, checked before the
// event ever reaches the engine: dt must be finite and strictly positive
// regardless of event kind (spec.md §6 lists "dt <= 0" as bad input
// unconditionally, unlike the engine's own Reset exemption), and type must
// fall within the four-value enum range.
//
// Stimulus finiteness is deliberately NOT checked here. spec.md §8
// scenario 6 is explicit that a NaN stimulus component must pass the
// bridge layer as protocol-valid (BridgeResult stays OK) and surface
// instead as the engine's own status=ERROR, error_category=NumericError —
// unlike the original C++ bridge, which rejected a non-finite stimulus at
// this same gate.
func validateBridgeEvent(ev Event) bool {
	if math.IsNaN(ev.Dt) || math.IsInf(ev.Dt, 0) || ev.Dt <= 0.0 {
		return false
	}
	return ev.Type <= eventTypeUpperBound
}

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
