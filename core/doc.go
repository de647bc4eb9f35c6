// Package core defines the FMRT structural-state data model: the
// StructuralState vector X(t), the StructEvent variant E(t), the derived
// metrics and invariant bitmask computed every step, and the StateEnvelope
// returned by a step.
//
// Every type here is a plain value type with no behavior beyond finiteness
// checks and the reset-to-defaults lifecycle operation. The arithmetic that
// advances X(t) lives in package evolution; the structural checks live in
// package invariant; this package only describes the shapes those packages
// operate on, plus the closed enumerations and compile-time constants they
// share.
package core
