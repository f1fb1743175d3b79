package sim

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGroverConfig_FieldEquivalence(t *testing.T) {
	got := NewGroverConfig(8, 1e-7, true)
	want := GroverConfig{DriftCheckInterval: 8, DriftTolerance: 1e-7, Renormalize: true}
	assert.Equal(t, want, got)
}

func TestNewRunnerConfig_FieldEquivalence(t *testing.T) {
	got := NewRunnerConfig(42, 3, true, []int{1, 2})
	want := RunnerConfig{
		Seed:    42,
		Workers: 3,
		Ancilla: true,
		Marks:   []int{1, 2},
		Grover:  DefaultGroverConfig(),
	}
	assert.Equal(t, want, got)
}

func TestGroverConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultGroverConfig().Validate())
	assert.Error(t, NewGroverConfig(-1, 1e-6, false).Validate())
	assert.Error(t, NewGroverConfig(1, 0, false).Validate())
}

func TestRunnerConfig_Validate(t *testing.T) {
	assert.NoError(t, NewRunnerConfig(1, 0, false, nil).Validate())
	assert.Error(t, NewRunnerConfig(1, -1, false, nil).Validate())

	bad := NewRunnerConfig(1, 1, false, nil)
	bad.Grover.DriftTolerance = -1
	assert.Error(t, bad.Validate())
}

func TestRunnerConfig_WorkerLimit(t *testing.T) {
	assert.Equal(t, 5, NewRunnerConfig(1, 5, false, nil).workerLimit())
	assert.Equal(t, runtime.NumCPU(), NewRunnerConfig(1, 0, false, nil).workerLimit())
}
