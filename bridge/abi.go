package bridge

// Event mirrors the flat fmrt_bridge_event C struct (spec.md §6): a
// single-byte event-kind tag, the elapsed time, and the fixed-size
// stimulus vector.
type Event struct {
	Type     uint8
	Dt       float64
	Stimulus [4]float64
}

// Envelope mirrors the flat fmrt_bridge_envelope C struct. Derived[3] is
// reserved ABI padding and is always zero; Derived[0..2] carry
// curvature_R, det_g, and tau in that fixed order.
type Envelope struct {
	Status       uint8
	InvariantsOK uint8
	Derived      [4]float64
}

// BridgeResult mirrors the bridge's C return codes (spec.md §6). Go has no
// raw pointers to validate at this boundary, so the nil-pointer case is
// reinterpreted as passing a nil *Event to Session.Step.
type BridgeResult int32

const (
	ResultOK           BridgeResult = 0
	ResultNullPointer  BridgeResult = -1
	ResultBadInput     BridgeResult = -2
	ResultFatalStatus  BridgeResult = -3
)

// eventTypeUpperBound is the highest valid Event.Type byte: 0=Update,
// 1=Gap, 2=Heartbeat, 3=Reset (spec.md §6's authoritative mapping).
const eventTypeUpperBound = 3
