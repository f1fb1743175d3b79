package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxQubits bounds the total register size (input plus ancilla). A dense
// complex128 vector of 2^24 amplitudes takes 256 MiB.
const MaxQubits = 24

// emptyMass is the total probability below which a vector counts as zero.
const emptyMass = 1e-12

// StateVector is a dense n-qubit register.
//
// Qubit q is bit q of the basis index (least-significant first). When the
// register carries an ancilla it is the most significant qubit, index
// InputQubits, so each ancilla value selects a contiguous block of
// InputDim() amplitudes.
type StateVector struct {
	Amplitudes  []complex128
	NumQubits   int // total qubits, including the ancilla
	InputQubits int // qubits searched by the oracle and reported by measurement
}

// NewStateVector returns |0...0> over numQubits input qubits and no ancilla.
func NewStateVector(numQubits int) (*StateVector, error) {
	return NewRegister(numQubits, false)
}

// NewRegister returns |0...0> over inputQubits input qubits, plus one
// ancilla qubit when ancilla is set.
func NewRegister(inputQubits int, ancilla bool) (*StateVector, error) {
	total := inputQubits
	if ancilla {
		total++
	}
	if inputQubits <= 0 || total > MaxQubits {
		return nil, fmt.Errorf("%w: %d input qubits (ancilla=%v), supported range is 1..%d total",
			ErrInvalidDimension, inputQubits, ancilla, MaxQubits)
	}
	amps := make([]complex128, 1<<total)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: total, InputQubits: inputQubits}, nil
}

// Clone returns a deep copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits, InputQubits: s.InputQubits}
}

// Dim returns the number of amplitudes.
func (s *StateVector) Dim() int { return len(s.Amplitudes) }

// InputDim returns the size of the input-qubit search space.
func (s *StateVector) InputDim() int { return 1 << s.InputQubits }

// HasAncilla reports whether the register carries an ancilla qubit.
func (s *StateVector) HasAncilla() bool { return s.NumQubits > s.InputQubits }

// ApplyHadamard applies a Hadamard gate to qubit q in place.
func (s *StateVector) ApplyHadamard(q int) error {
	if q < 0 || q >= s.NumQubits {
		return fmt.Errorf("%w: qubit %d outside register of %d qubits", ErrInvalidDimension, q, s.NumQubits)
	}
	h := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, b := s.Amplitudes[i], s.Amplitudes[j]
		s.Amplitudes[i] = h * (a + b)
		s.Amplitudes[j] = h * (a - b)
	}
	return nil
}

// ApplyHadamardAll applies a Hadamard gate to every input qubit. The ancilla
// is left untouched. From |0...0> every input amplitude becomes 1/sqrt(2^n).
func (s *StateVector) ApplyHadamardAll() {
	for q := 0; q < s.InputQubits; q++ {
		// q is always in range
		_ = s.ApplyHadamard(q)
	}
}

// Probability returns |a_i|^2.
func (s *StateVector) Probability(i int) float64 {
	a := s.Amplitudes[i]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Probabilities returns |a_i|^2 for every basis state.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i := range s.Amplitudes {
		probs[i] = s.Probability(i)
	}
	return probs
}

// TotalProbability returns the sum of squared magnitudes.
func (s *StateVector) TotalProbability() float64 {
	return floats.Sum(s.Probabilities())
}

// CheckNorm returns ErrNumericalDrift when the total probability is further
// than tol from 1.
func (s *StateVector) CheckNorm(tol float64) error {
	total := s.TotalProbability()
	if math.Abs(total-1) > tol {
		return fmt.Errorf("%w: total probability %.12f exceeds tolerance %g", ErrNumericalDrift, total, tol)
	}
	return nil
}

// Normalize rescales the state to unit norm.
func (s *StateVector) Normalize() error {
	total := s.TotalProbability()
	if total < emptyMass {
		return ErrEmptyState
	}
	scale := complex(1/math.Sqrt(total), 0)
	for i := range s.Amplitudes {
		s.Amplitudes[i] *= scale
	}
	return nil
}
