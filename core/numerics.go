package core

import "math"

// isFinite reports whether x is neither NaN nor +/-Inf. Subnormal values are
// considered finite here; rejecting subnormal *inputs* is fpguard's
// responsibility (spec.md §4.1), not this package's.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
