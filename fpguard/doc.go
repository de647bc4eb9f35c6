// Package fpguard implements stage 0 of the FMRT pipeline (spec.md §4.1):
// it verifies the process-wide floating-point rounding mode and rejects any
// non-finite or subnormal numeric input before it reaches the arithmetic
// stages.
//
// Every function here is pure, allocation-free, and side-effect-free; this
// package holds no state of its own.
package fpguard
