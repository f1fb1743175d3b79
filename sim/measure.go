package sim

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Bit is one measured qubit.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Outcome holds one measured bit per input qubit; Outcome[q] is qubit q.
// The ancilla is never included.
type Outcome []Bit

// String renders qubit 0 first, e.g. "010".
func (o Outcome) String() string {
	var b strings.Builder
	b.Grow(len(o))
	for _, bit := range o {
		if bit == One {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Index returns the basis index encoded by the outcome.
func (o Outcome) Index() int {
	idx := 0
	for q, bit := range o {
		if bit == One {
			idx |= 1 << q
		}
	}
	return idx
}

// IsZero reports whether every bit is Zero.
func (o Outcome) IsZero() bool {
	for _, bit := range o {
		if bit != Zero {
			return false
		}
	}
	return true
}

// outcomeFromIndex keeps the low inputQubits bits of a basis index.
func outcomeFromIndex(index, inputQubits int) Outcome {
	out := make(Outcome, inputQubits)
	for q := range out {
		out[q] = Bit((index >> q) & 1)
	}
	return out
}

// Measure samples a basis state with probability |a_i|^2 by inverse-CDF:
// one draw r in [0, 1) scaled by the total mass, returning the first index
// whose cumulative mass exceeds it. The state itself is not modified.
func Measure(s *StateVector, rng RandomSource) (Outcome, error) {
	index, err := SampleIndex(s, rng)
	if err != nil {
		return nil, err
	}
	return outcomeFromIndex(index, s.InputQubits), nil
}

// SampleIndex returns the sampled basis index over the full register,
// ancilla bits included.
func SampleIndex(s *StateVector, rng RandomSource) (int, error) {
	probs := s.Probabilities()
	cum := make([]float64, len(probs))
	floats.CumSum(cum, probs)
	total := cum[len(cum)-1]
	if total < emptyMass {
		return 0, ErrEmptyState
	}
	r := rng.Float64() * total
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > r })
	if i == len(cum) {
		// r landed on the rounding edge of the last bin; take the last
		// index that carries mass.
		i = len(cum) - 1
		for i > 0 && probs[i] == 0 {
			i--
		}
	}
	return i, nil
}
