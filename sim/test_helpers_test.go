package sim

import "testing"

// fixedSource replays the given draws in order, repeating the last one.
type fixedSource struct {
	draws []float64
	next  int
}

func (f *fixedSource) Float64() float64 {
	v := f.draws[f.next]
	if f.next < len(f.draws)-1 {
		f.next++
	}
	return v
}

// mustRegister returns |0...0> or fails the test.
func mustRegister(t *testing.T, inputQubits int, ancilla bool) *StateVector {
	t.Helper()
	s, err := NewRegister(inputQubits, ancilla)
	if err != nil {
		t.Fatalf("NewRegister(%d, %v): %v", inputQubits, ancilla, err)
	}
	return s
}

// mustOracle returns an oracle or fails the test.
func mustOracle(t *testing.T, inputQubits int, marks ...int) *Oracle {
	t.Helper()
	o, err := NewOracle(inputQubits, marks...)
	if err != nil {
		t.Fatalf("NewOracle(%d, %v): %v", inputQubits, marks, err)
	}
	return o
}
