package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// GroverIterator prepares the uniform superposition and applies the Grover
// operator (oracle followed by diffusion) a fixed number of times.
// It holds no quantum state and may be shared across trials.
type GroverIterator struct {
	config    GroverConfig
	diffusion Diffusion
}

// NewGroverIterator creates a GroverIterator. An invalid config is replaced
// by DefaultGroverConfig.
func NewGroverIterator(config GroverConfig) *GroverIterator {
	if err := config.Validate(); err != nil {
		logrus.Warnf("invalid grover config (%v), using defaults", err)
		config = DefaultGroverConfig()
	}
	return &GroverIterator{config: config}
}

// Run builds a fresh register of inputQubits qubits (plus an ancilla when
// requested), applies Hadamard to every input qubit and then k rounds of
// oracle and diffusion. k == 0 returns the uniform superposition.
func (g *GroverIterator) Run(inputQubits int, oracle *Oracle, k int, ancilla bool) (*StateVector, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, k)
	}
	s, err := NewRegister(inputQubits, ancilla)
	if err != nil {
		return nil, err
	}
	s.ApplyHadamardAll()
	for i := 1; i <= k; i++ {
		if err := g.Step(s, oracle); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		if g.shouldCheck(i, k) {
			if err := g.checkDrift(s, i); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Step applies one Grover iteration: oracle, then diffusion.
func (g *GroverIterator) Step(s *StateVector, oracle *Oracle) error {
	if err := oracle.Apply(s); err != nil {
		return err
	}
	g.diffusion.Apply(s)
	return nil
}

func (g *GroverIterator) shouldCheck(i, k int) bool {
	if i == k {
		return true
	}
	return g.config.DriftCheckInterval > 0 && i%g.config.DriftCheckInterval == 0
}

func (g *GroverIterator) checkDrift(s *StateVector, iteration int) error {
	err := s.CheckNorm(g.config.DriftTolerance)
	if err == nil {
		return nil
	}
	if !g.config.Renormalize {
		return fmt.Errorf("iteration %d: %w", iteration, err)
	}
	logrus.Debugf("renormalizing after iteration %d: %v", iteration, err)
	return s.Normalize()
}

// OptimalIterations returns round(pi/4 * sqrt(2^n)), the iteration count that
// maximizes the success probability for a single marked state.
func OptimalIterations(n int) int {
	return OptimalIterationsForMarks(n, 1)
}

// OptimalIterationsForMarks returns round(pi/4 * sqrt(2^n / m)) for m marked
// states. Non-positive arguments yield 0.
func OptimalIterationsForMarks(n, m int) int {
	if n <= 0 || m <= 0 {
		return 0
	}
	return int(math.Round(math.Pi / 4 * math.Sqrt(math.Exp2(float64(n))/float64(m))))
}

// SuccessProbability returns the analytic probability sin^2((2k+1)theta) of
// measuring one of m marked states out of 2^n after k iterations, where
// sin(theta) = sqrt(m / 2^n).
func SuccessProbability(n, m, k int) float64 {
	if n <= 0 || m <= 0 || k < 0 {
		return 0
	}
	ratio := float64(m) / math.Exp2(float64(n))
	if ratio >= 1 {
		return 1
	}
	theta := math.Asin(math.Sqrt(ratio))
	s := math.Sin(float64(2*k+1) * theta)
	return s * s
}
