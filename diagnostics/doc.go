// Package diagnostics implements stage 4 of the FMRT pipeline (spec.md
// §4.5): assembling the final StateEnvelope from a step's outcome. Three
// constructors cover the closed set of outcomes — OK, Error, and Dead;
// stages 0 and 1's gate failures are built with BuildError.
package diagnostics
