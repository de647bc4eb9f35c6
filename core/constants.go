package core

// -----------------------------------------------------------------------
// Fundamental numeric constants
// -----------------------------------------------------------------------

const (
	// EpsMetric is the minimum allowed det(g) for a living organism.
	EpsMetric = 1e-12

	// EpsKappa is the collapse threshold: Kappa <= EpsKappa is treated as
	// collapsed (Kappa == 0 after the clamp in evolution).
	EpsKappa = 1e-12
)

// -----------------------------------------------------------------------
// Temporal density parameters (tau)
// tau = TauMin + TauScale * exp(-LambdaK * kappa)
// -----------------------------------------------------------------------

const (
	TauMin   = 1e-6
	TauScale = 1.0
	LambdaK  = 1.0
)

// -----------------------------------------------------------------------
// Relaxation / evolution parameters
// -----------------------------------------------------------------------

const (
	// LambdaRelax is the continuous relaxation rate applied to Delta.
	LambdaRelax = 0.1

	// MaxDelta is the hard clamp bound for each Delta component, preventing
	// curvature blow-up.
	MaxDelta = 10.0

	// TensionA amplifies deformation in the Phi update.
	TensionA = 1.0
	// TensionB is the continuous relaxation rate for Phi.
	TensionB = 0.05
)

// -----------------------------------------------------------------------
// Viability decay coefficients:
// kappa' = max(0, kappa - dt*(A1*R + A2*Phi + A3*mu + A4))
// -----------------------------------------------------------------------

const (
	DecayA1 = 0.002
	DecayA2 = 0.01
	DecayA3 = 0.02
	DecayA4 = 0.001
)

// -----------------------------------------------------------------------
// Curvature coefficients:
// R = CurvA1*||Delta||^2 + CurvA2*Phi + CurvA3*(M/(1+kappa))
// -----------------------------------------------------------------------

const (
	CurvA1 = 0.01
	CurvA2 = 0.01
	CurvA3 = 0.005
)

// -----------------------------------------------------------------------
// Metric determinant:
// det_g = max(EpsMetric, MetricC1*exp(-MetricC2*R)*kappa)
// -----------------------------------------------------------------------

const (
	MetricC1 = 1.0
	MetricC2 = 1.0
)

// -----------------------------------------------------------------------
// Morphology normalization:
// mu = R / (R + MorphBeta)
// -----------------------------------------------------------------------

const MorphBeta = 1.0

// -----------------------------------------------------------------------
// Event canonicalization bounds
// -----------------------------------------------------------------------

const (
	// DtClampMin is the lower dt clamp applied during canonicalization.
	// Never taken on the Step path: validation already rejects dt <= 0 for
	// Update/Gap/Heartbeat, and Reset's dt is forced to exactly 0 first. It
	// takes effect only when Canonicalize is given an unvalidated event with
	// a negative dt. Kept because the reference implementation keeps it.
	DtClampMin = 0.0
	// DtClampMax is the upper dt clamp applied during canonicalization.
	DtClampMax = 1e6
)

// -----------------------------------------------------------------------
// Reset defaults (StructuralState.Reset)
// -----------------------------------------------------------------------

const (
	ResetPhi   = 0.0
	ResetKappa = 1.0
)

// DeltaDim is the fixed dimensionality of the deformation vector Delta.
const DeltaDim = 4
