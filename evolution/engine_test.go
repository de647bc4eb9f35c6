package evolution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaryanBog/fmrt/core"
	"github.com/MaryanBog/fmrt/evolution"
)

func TestEvolve_BasicUpdate(t *testing.T) {
	state := core.Reset()
	event := core.StructEvent{Type: core.EventUpdate, Dt: 1.0, Stimulus: [4]float64{1.0, -2.0, 3.5, 0.0}}

	next, metrics := evolution.Evolve(state, event)

	require.InDelta(t, 1.0, next.Delta[0], 1e-12)
	require.InDelta(t, -2.0, next.Delta[1], 1e-12)
	require.InDelta(t, 3.5, next.Delta[2], 1e-12)
	require.InDelta(t, 0.0, next.Delta[3], 1e-12)
	require.Equal(t, core.RegimeACC, metrics.Regime)
	require.False(t, metrics.IsCollapse)
}

func TestEvolve_PhiDeformation(t *testing.T) {
	state := core.Reset()
	state.Phi = 2.0
	event := core.StructEvent{Type: core.EventUpdate, Dt: 1.0, Stimulus: [4]float64{3.0, 4.0, 0.0, 0.0}}

	next, _ := evolution.Evolve(state, event)

	require.InDelta(t, 6.95, next.Phi, 1e-9)
}

func TestEvolve_ResetSemantics(t *testing.T) {
	state := core.StructuralState{Delta: [4]float64{1, 2, 3, 4}, Phi: 9, M: 9, Kappa: 0.3, RegimePrev: core.RegimeREL}
	event := core.StructEvent{Type: core.EventReset}

	next, metrics := evolution.Evolve(state, event)

	require.Equal(t, core.Reset(), next)
	require.Equal(t, core.MetricC1, metrics.DetG)
	require.Equal(t, core.TauMin, metrics.Tau)
	require.Equal(t, 0.0, metrics.Mu)
	require.Equal(t, core.RegimeACC, metrics.Regime)
	require.False(t, metrics.IsCollapse)
}

func TestEvolve_CollapseTrigger(t *testing.T) {
	state := core.Reset()
	event := core.StructEvent{Type: core.EventUpdate, Dt: 1.0, Stimulus: [4]float64{10, 10, 10, 10}}

	sawCollapse := false
	for i := 0; i < 10_000 && state.Kappa > 0; i++ {
		var metrics core.DerivedMetrics
		state, metrics = evolution.Evolve(state, event)
		if state.Kappa == 0 {
			require.Equal(t, 0.0, metrics.DetG)
			require.Equal(t, 0.0, metrics.Tau)
			require.Equal(t, 1.0, metrics.Mu)
			require.Equal(t, core.RegimeCOL, metrics.Regime)
			require.True(t, metrics.IsCollapse)
			sawCollapse = true
			break
		}
		require.False(t, metrics.IsCollapse)
	}
	require.True(t, sawCollapse, "expected Kappa to reach 0 within the iteration budget")
}

func TestEvolve_CollapsedEntryPinsMetrics(t *testing.T) {
	state := core.StructuralState{Delta: [4]float64{1, 2, 3, 4}, Phi: 5, M: 7, Kappa: 0, RegimePrev: core.RegimeCOL}
	event := core.StructEvent{Type: core.EventHeartbeat, Dt: 1.0}

	next, metrics := evolution.Evolve(state, event)

	require.Equal(t, state.Delta, next.Delta)
	require.Equal(t, state.Phi, next.Phi)
	require.Equal(t, state.M, next.M)
	require.Equal(t, 0.0, next.Kappa)
	require.Equal(t, core.RegimeCOL, metrics.Regime)
	require.True(t, metrics.IsCollapse)
}

func TestEvolve_RegimeNaturalCandidateCanDemote(t *testing.T) {
	state := core.Reset()
	state.RegimePrev = core.RegimeREL
	event := core.StructEvent{Type: core.EventHeartbeat, Dt: 1.0}

	_, metrics := evolution.Evolve(state, event)

	// Engine-internal forcing keeps the emitted Regime monotonic...
	require.Equal(t, core.RegimeREL, metrics.Regime)
	// ...but the unforced natural candidate reveals the demotion the
	// invariant validator is responsible for rejecting.
	require.Equal(t, core.RegimeACC, metrics.NaturalRegime)
}
