// Package trace provides per-trial recording for Grover sweeps.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// TrialRecord captures a single measured trial.
type TrialRecord struct {
	Qubits     int
	Iterations int
	Trial      int
	Outcome    string // measured input bits, qubit 0 first
	Found      bool   // outcome is a marked state
	ElapsedUs  int64
}
