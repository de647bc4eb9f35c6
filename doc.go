// Package fmrt implements the FMRT Core evolution engine: a pure,
// deterministic, side-effect-free step function that advances a structural
// state vector under one of four discrete event kinds, computes derived
// geometric metrics, validates the structural invariants that must hold on
// every accepted transition, and packages the result in a diagnostic
// envelope.
//
// Step is the single public entry point; it wires together, in order, the
// FP guard (package fpguard), the event handler (package event), the
// evolution engine (package evolution), the invariant validator (package
// invariant), and the diagnostics layer (package diagnostics). Reset
// returns the canonical initial state.
//
// The organism models a system whose viability (Kappa) monotonically
// decays under stress, whose regime is an irreversible state machine, and
// whose collapse (Kappa == 0) is a one-way absorbing state. See package
// core for the data model.
package fmrt
