package sim

import (
	"math"
	"math/cmplx"

	"github.com/sirupsen/logrus"
)

// SelfTestTolerance is the maximum amplitude deviation accepted by the
// operator self tests.
const SelfTestTolerance = 1e-9

// SelfTestResult reports one operator check.
type SelfTestResult struct {
	Name         string
	Passed       bool
	MaxDeviation float64
	Err          error
}

// RunSelfTests runs every operator check and returns the results in a fixed
// order.
func RunSelfTests() []SelfTestResult {
	return []SelfTestResult{
		oracleKnownVector(),
		oracleAncillaBlocks(),
		diffusionTwoQubitSearch(),
		diffusionKnownVector(),
		diffusionHadamardEquivalence(),
	}
}

// OracleSelfTest reports whether every oracle check passes.
func OracleSelfTest() bool {
	return allPassed(oracleKnownVector(), oracleAncillaBlocks())
}

// DiffusionSelfTest reports whether every diffusion check passes.
func DiffusionSelfTest() bool {
	return allPassed(diffusionTwoQubitSearch(), diffusionKnownVector(), diffusionHadamardEquivalence())
}

func allPassed(results ...SelfTestResult) bool {
	ok := true
	for _, r := range results {
		if !r.Passed {
			logrus.Warnf("self test %s failed: max deviation %g, err %v", r.Name, r.MaxDeviation, r.Err)
			ok = false
		}
	}
	return ok
}

// rampState returns a normalized n-qubit state with distinct complex
// amplitudes, a_i proportional to (i+1) + i*(n-i)/2 j.
func rampState(n int, ancilla bool) *StateVector {
	s, _ := NewRegister(n, ancilla)
	for i := range s.Amplitudes {
		s.Amplitudes[i] = complex(float64(i+1), float64(i*(n-i))/2)
	}
	_ = s.Normalize()
	return s
}

func maxDeviation(got, want []complex128) float64 {
	if len(got) != len(want) {
		return math.Inf(1)
	}
	worst := 0.0
	for i := range got {
		if d := cmplx.Abs(got[i] - want[i]); d > worst {
			worst = d
		}
	}
	return worst
}

func result(name string, got, want []complex128, err error) SelfTestResult {
	dev := maxDeviation(got, want)
	return SelfTestResult{
		Name:         name,
		Passed:       err == nil && dev <= SelfTestTolerance,
		MaxDeviation: dev,
		Err:          err,
	}
}

// oracleKnownVector flips index 0 of a 3-qubit ramp state and nothing else.
func oracleKnownVector() SelfTestResult {
	const name = "oracle/known-vector"
	s := rampState(3, false)
	want := append([]complex128(nil), s.Amplitudes...)
	want[0] = -want[0]
	oracle, err := NewOracle(3)
	if err == nil {
		err = oracle.Apply(s)
	}
	return result(name, s.Amplitudes, want, err)
}

// oracleAncillaBlocks marks input index 5 on a 3-qubit register with an
// ancilla; the flip must land at 5 and 5+8.
func oracleAncillaBlocks() SelfTestResult {
	const name = "oracle/ancilla-blocks"
	s := rampState(3, true)
	want := append([]complex128(nil), s.Amplitudes...)
	want[5] = -want[5]
	want[5+8] = -want[5+8]
	oracle, err := NewOracle(3, 5)
	if err == nil {
		err = oracle.Apply(s)
	}
	return result(name, s.Amplitudes, want, err)
}

// diffusionTwoQubitSearch: on 2 qubits one Grover iteration finds the
// target with certainty, (-1/2, 1/2, 1/2, 1/2) -> (1, 0, 0, 0).
func diffusionTwoQubitSearch() SelfTestResult {
	const name = "diffusion/two-qubit-search"
	s, err := NewStateVector(2)
	if err != nil {
		return SelfTestResult{Name: name, Err: err}
	}
	copy(s.Amplitudes, []complex128{-0.5, 0.5, 0.5, 0.5})
	Diffusion{}.Apply(s)
	return result(name, s.Amplitudes, []complex128{1, 0, 0, 0}, nil)
}

// diffusionKnownVector compares Apply with 2*mean - a computed separately.
func diffusionKnownVector() SelfTestResult {
	const name = "diffusion/known-vector"
	s := rampState(4, false)
	var sum complex128
	for _, a := range s.Amplitudes {
		sum += a
	}
	mean := sum / complex(float64(s.Dim()), 0)
	want := make([]complex128, s.Dim())
	for i, a := range s.Amplitudes {
		want[i] = 2*mean - a
	}
	Diffusion{}.Apply(s)
	return result(name, s.Amplitudes, want, nil)
}

// diffusionHadamardEquivalence checks that the mean formula and the
// H, phase, H construction agree, with and without an ancilla.
func diffusionHadamardEquivalence() SelfTestResult {
	const name = "diffusion/hadamard-equivalence"
	worst := SelfTestResult{Name: name, Passed: true}
	for _, ancilla := range []bool{false, true} {
		direct := rampState(5, ancilla)
		viaH := direct.Clone()
		Diffusion{}.Apply(direct)
		Diffusion{}.ApplyViaHadamard(viaH)
		r := result(name, direct.Amplitudes, viaH.Amplitudes, nil)
		if r.MaxDeviation > worst.MaxDeviation {
			worst.MaxDeviation = r.MaxDeviation
		}
		worst.Passed = worst.Passed && r.Passed
	}
	return worst
}
