package sim

import "errors"

// Sentinel errors returned by the simulation core. Callers match them with
// errors.Is; the returned errors wrap them with the offending values.
var (
	// ErrInvalidDimension is returned when a qubit count is outside [1, MaxQubits].
	ErrInvalidDimension = errors.New("invalid register dimension")

	// ErrInvalidOracleTarget is returned when a marked index does not address
	// a basis state of the input register.
	ErrInvalidOracleTarget = errors.New("invalid oracle target")

	// ErrEmptyState is returned when sampling or normalizing a vector whose
	// amplitudes are all numerically zero.
	ErrEmptyState = errors.New("empty state vector")

	// ErrNumericalDrift is returned when the total probability of a state
	// leaves the configured tolerance around 1.
	ErrNumericalDrift = errors.New("numerical drift in state vector")

	// ErrInvalidIterations is returned for a negative Grover iteration count.
	ErrInvalidIterations = errors.New("invalid iteration count")

	// ErrInvalidSweep is returned for malformed sweep parameters.
	ErrInvalidSweep = errors.New("invalid sweep")
)
