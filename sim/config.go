package sim

import (
	"fmt"
	"runtime"
)

// Default numerical settings for the Grover loop.
const (
	DefaultDriftCheckInterval = 4
	DefaultDriftTolerance     = 1e-6
)

// GroverConfig groups the numerical-hygiene settings of GroverIterator.
type GroverConfig struct {
	DriftCheckInterval int     // iterations between norm checks (0 = check only after the last)
	DriftTolerance     float64 // allowed |sum(|a|^2) - 1| (must be > 0)
	Renormalize        bool    // rescale on drift instead of returning ErrNumericalDrift
}

// NewGroverConfig returns a GroverConfig with the given fields.
func NewGroverConfig(driftCheckInterval int, driftTolerance float64, renormalize bool) GroverConfig {
	return GroverConfig{
		DriftCheckInterval: driftCheckInterval,
		DriftTolerance:     driftTolerance,
		Renormalize:        renormalize,
	}
}

// DefaultGroverConfig checks the norm every few iterations and fails on drift.
func DefaultGroverConfig() GroverConfig {
	return NewGroverConfig(DefaultDriftCheckInterval, DefaultDriftTolerance, false)
}

// Validate checks parameter ranges.
func (c GroverConfig) Validate() error {
	if c.DriftCheckInterval < 0 {
		return fmt.Errorf("drift check interval must be non-negative, got %d", c.DriftCheckInterval)
	}
	if c.DriftTolerance <= 0 {
		return fmt.Errorf("drift tolerance must be positive, got %g", c.DriftTolerance)
	}
	return nil
}

// RunnerConfig groups SimulationRunner parameters.
type RunnerConfig struct {
	Seed    int64        // master seed for measurement randomness
	Workers int          // concurrent trials per sweep point (0 = runtime.NumCPU())
	Ancilla bool         // allocate an ancilla qubit beyond the input register
	Marks   []int        // marked input indices (empty = the all-zero string)
	Grover  GroverConfig // numerical settings for every trial
}

// NewRunnerConfig returns a RunnerConfig with the default Grover settings.
func NewRunnerConfig(seed int64, workers int, ancilla bool, marks []int) RunnerConfig {
	return RunnerConfig{
		Seed:    seed,
		Workers: workers,
		Ancilla: ancilla,
		Marks:   marks,
		Grover:  DefaultGroverConfig(),
	}
}

// Validate checks parameter ranges. Marks are validated per qubit count when
// the oracle is built.
func (c RunnerConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return c.Grover.Validate()
}

// workerLimit resolves Workers == 0 to the number of CPUs.
func (c RunnerConfig) workerLimit() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
