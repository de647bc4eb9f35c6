// Package event implements stage 1 of the FMRT pipeline (spec.md §4.2):
// validating an incoming StructEvent's shape and canonicalizing it (zeroing
// inapplicable fields, clamping dt) before it reaches the evolution engine.
package event
