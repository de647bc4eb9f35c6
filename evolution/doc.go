// Package evolution implements stage 2 of the FMRT pipeline (spec.md §4.3):
// given a validated, canonicalized event, it advances the structural state
// and computes the derived metrics for the step.
//
// Evolve never rejects anything — validation happened in package event and
// numeric hygiene in package fpguard. It always returns a finite, fully
// populated state and metric pair; whether that pair is acceptable is the
// invariant package's concern.
package evolution
