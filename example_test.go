package fmrt_test

import (
	"fmt"

	"github.com/MaryanBog/fmrt"
	"github.com/MaryanBog/fmrt/core"
)

// This example drives a fresh organism through one Update event and prints
// its resulting regime and viability.
func Example_basicUpdate() {
	state := fmrt.Reset()
	event := core.StructEvent{Type: core.EventUpdate, Dt: 1.0, Stimulus: [4]float64{1.0, -2.0, 3.5, 0.0}}

	envelope := fmrt.Step(state, event)

	fmt.Println(envelope.Status, envelope.Metrics.Regime, envelope.State.Kappa < 1.0)
	// Output: OK ACC true
}

// This example shows Reset restoring a heavily deformed organism to its
// canonical initial state in a single step, regardless of history.
func Example_resetRestoresCanonicalState() {
	state := core.StructuralState{Delta: [4]float64{9, 9, 9, 9}, Phi: 50, M: 50, Kappa: 0.01, RegimePrev: core.RegimeREL}
	event := core.StructEvent{Type: core.EventReset}

	envelope := fmrt.Step(state, event)

	fmt.Println(envelope.State == fmrt.Reset())
	// Output: true
}
