package bridge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaryanBog/fmrt/bridge"
	"github.com/MaryanBog/fmrt/core"
)

func TestSession_StepAcceptsBasicUpdate(t *testing.T) {
	session := bridge.NewSession()
	ev := &bridge.Event{Type: uint8(core.EventUpdate), Dt: 1.0, Stimulus: [4]float64{1, -2, 3.5, 0}}

	env, result := session.Step(ev)

	require.Equal(t, bridge.ResultOK, result)
	require.Equal(t, uint8(core.StatusOK), env.Status)
	require.Equal(t, uint8(1), env.InvariantsOK)
	require.Equal(t, 0.0, env.Derived[3])
}

func TestSession_StepRejectsNilEvent(t *testing.T) {
	session := bridge.NewSession()

	_, result := session.Step(nil)

	require.Equal(t, bridge.ResultNullPointer, result)
}

func TestSession_StepRejectsOutOfRangeType(t *testing.T) {
	session := bridge.NewSession()
	ev := &bridge.Event{Type: 4, Dt: 1.0}

	_, result := session.Step(ev)

	require.Equal(t, bridge.ResultBadInput, result)
}

func TestSession_StepRejectsNonPositiveDt(t *testing.T) {
	session := bridge.NewSession()
	ev := &bridge.Event{Type: uint8(core.EventUpdate), Dt: 0.0}

	_, result := session.Step(ev)

	require.Equal(t, bridge.ResultBadInput, result)
}

// NaN bridge reject (spec.md §8 scenario 6): the bridge's own shape check
// passes type/dt, a NaN stimulus component is not a protocol error, so
// BridgeResult stays OK — but the engine's fp guard catches it and the
// envelope reports status=ERROR with invariants_ok=0.
func TestSession_StepRejectsNaNStimulus(t *testing.T) {
	session := bridge.NewSession()
	ev := &bridge.Event{Type: uint8(core.EventUpdate), Dt: 0.1, Stimulus: [4]float64{math.NaN(), 0, 0, 0}}

	env, result := session.Step(ev)

	require.Equal(t, bridge.ResultOK, result)
	require.Equal(t, uint8(core.StatusError), env.Status)
	require.Equal(t, uint8(0), env.InvariantsOK)
}

func TestSession_ResetRestoresCanonicalState(t *testing.T) {
	session := bridge.NewSession()
	update := &bridge.Event{Type: uint8(core.EventUpdate), Dt: 1.0, Stimulus: [4]float64{5, 5, 5, 5}}
	_, _ = session.Step(update)
	require.NotEqual(t, core.Reset(), session.State())

	session.Reset()

	require.Equal(t, core.Reset(), session.State())
}

func TestRegistry_OpenLookupClose(t *testing.T) {
	registry := bridge.NewRegistry()
	id := registry.Open()

	session, ok := registry.Lookup(id)
	require.True(t, ok)
	require.NotNil(t, session)

	registry.Close(id)
	_, ok = registry.Lookup(id)
	require.False(t, ok)
}
