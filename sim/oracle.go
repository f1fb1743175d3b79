package sim

import (
	"fmt"
	"sort"
)

// Oracle phase-flips the marked basis states of the input register.
// It is immutable once built and safe to share across trials.
type Oracle struct {
	inputQubits int
	marks       []int
}

// NewOracle builds an oracle over inputQubits qubits. With no marks the
// all-zero string is the target.
func NewOracle(inputQubits int, marks ...int) (*Oracle, error) {
	if inputQubits <= 0 || inputQubits > MaxQubits {
		return nil, fmt.Errorf("%w: oracle over %d qubits", ErrInvalidDimension, inputQubits)
	}
	if len(marks) == 0 {
		marks = []int{0}
	}
	dim := 1 << inputQubits
	sorted := append([]int(nil), marks...)
	sort.Ints(sorted)
	for i, m := range sorted {
		if m < 0 || m >= dim {
			return nil, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidOracleTarget, m, dim)
		}
		if i > 0 && sorted[i-1] == m {
			return nil, fmt.Errorf("%w: index %d marked twice", ErrInvalidOracleTarget, m)
		}
	}
	return &Oracle{inputQubits: inputQubits, marks: sorted}, nil
}

// Marks returns the marked input indices in ascending order.
func (o *Oracle) Marks() []int {
	return append([]int(nil), o.marks...)
}

// InputQubits returns the width of the searched register.
func (o *Oracle) InputQubits() int { return o.inputQubits }

// IsMarked reports whether the input index is a target.
func (o *Oracle) IsMarked(index int) bool {
	i := sort.SearchInts(o.marks, index)
	return i < len(o.marks) && o.marks[i] == index
}

// Apply multiplies by -1 every amplitude whose input-qubit bits equal a
// mark. Ancilla bits are not examined, so the flip is applied in every
// ancilla block.
func (o *Oracle) Apply(s *StateVector) error {
	if s.InputQubits != o.inputQubits {
		return fmt.Errorf("%w: oracle over %d qubits applied to %d-qubit register",
			ErrInvalidDimension, o.inputQubits, s.InputQubits)
	}
	block := s.InputDim()
	for base := 0; base < s.Dim(); base += block {
		for _, m := range o.marks {
			s.Amplitudes[base+m] = -s.Amplitudes[base+m]
		}
	}
	return nil
}
