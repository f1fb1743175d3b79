// Package testutil provides shared assertion helpers for the simulator tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertUnitNorm fails when sum(|a|^2) is further than tol from 1.
func AssertUnitNorm(t *testing.T, amps []complex128, tol float64) {
	t.Helper()
	total := 0.0
	for _, a := range amps {
		total += real(a)*real(a) + imag(a)*imag(a)
	}
	if math.Abs(total-1) > tol {
		t.Errorf("total probability %.15f deviates from 1 by more than %g", total, tol)
	}
}

// AssertAmplitudesEqual compares two amplitude vectors element-wise within an
// absolute tolerance.
func AssertAmplitudesEqual(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("amplitude length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if d := cmplx.Abs(want[i] - got[i]); d > tol {
			t.Errorf("amplitude %d: got %v, want %v (|diff|=%g)", i, got[i], want[i], d)
		}
	}
}
