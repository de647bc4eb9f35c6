package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaryanBog/fmrt/core"
	"github.com/MaryanBog/fmrt/diagnostics"
)

func TestBuildOK(t *testing.T) {
	state := core.Reset()
	metrics := core.DerivedMetrics{Regime: core.RegimeACC}
	var invariants core.InvariantStatus
	invariants.AllOK = true

	env := diagnostics.BuildOK(core.EventUpdate, state, metrics, invariants)

	require.Equal(t, core.StatusOK, env.Status)
	require.Equal(t, core.ErrorNone, env.ErrorCategory)
	require.Equal(t, core.ReasonNone, env.ErrorReason)
	require.Equal(t, state, env.State)
}

func TestBuildError_FallsBackToCanonicalReason(t *testing.T) {
	prior := core.Reset()
	prior.Phi = 3.0

	env := diagnostics.BuildError(core.EventHeartbeat, prior, core.DerivedMetrics{}, core.InvariantStatus{}, core.ErrorInvariantViolation, "")

	require.Equal(t, core.StatusError, env.Status)
	require.Equal(t, core.ReasonInvariantViolation, env.ErrorReason)
	require.Equal(t, prior, env.State)
}

func TestBuildDead(t *testing.T) {
	state := core.StructuralState{Kappa: 0.0, RegimePrev: core.RegimeCOL}
	metrics := core.DerivedMetrics{Regime: core.RegimeCOL, IsCollapse: true, Mu: 1.0}

	var invariants core.InvariantStatus
	invariants.AllOK = true

	env := diagnostics.BuildDead(core.EventGap, state, metrics, invariants)

	require.Equal(t, core.StatusDead, env.Status)
	require.Equal(t, core.ErrorPostCollapse, env.ErrorCategory)
	require.Equal(t, core.ReasonPostCollapse, env.ErrorReason)
}
