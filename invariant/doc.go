// Package invariant implements stage 3 of the FMRT pipeline (spec.md §4.4):
// checking the eight structural invariants of spec.md §3 against a step's
// pre-state, post-state, and derived metrics, in the fixed order Memory,
// Kappa, Metric, Tau, Morphology, Regime, Collapse, Forbidden.
//
// Validate is applied only to non-Reset events; Reset bypasses this stage
// entirely (spec.md §2).
package invariant
