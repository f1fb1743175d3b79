package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	name := SubsystemTrial(0, 3)
	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(name).Float64()
		v2 := rng2.ForSubsystem(name).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from subsystem A doesn't affect subsystem B
	rngA := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemMeasurement).Float64()
	}
	aTrialFirst := rngA.ForSubsystem(SubsystemTrial(1, 0)).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemTrial(1, 0)).Float64()

	if aTrialFirst != expectedFirst {
		t.Errorf("trial stream first value = %v, want %v (isolation broken)", aTrialFirst, expectedFirst)
	}
}

func TestPartitionedRNG_MeasurementUsesMasterSeed(t *testing.T) {
	// BDD: "measurement" subsystem uses master seed directly
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	measurement := rng.ForSubsystem(SubsystemMeasurement)
	direct := rand.New(rand.NewSource(seed))

	for i := 0; i < 10; i++ {
		got, want := measurement.Float64(), direct.Float64()
		if got != want {
			t.Errorf("Value %d: measurement RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	// BDD: Same name returns same *rand.Rand instance
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if rng.ForSubsystem(SubsystemMeasurement) != rng.ForSubsystem(SubsystemMeasurement) {
		t.Error("ForSubsystem returned different instances for same name")
	}
	if len(rng.subsystems) != 1 {
		t.Errorf("have %d cached subsystems, want 1", len(rng.subsystems))
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	if rng.Key() != SimulationKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestDeriveRNG_MatchesForSubsystemButUncached(t *testing.T) {
	// GIVEN a cached stream and an independently derived one
	key := NewSimulationKey(7)
	cached := NewPartitionedRNG(key).ForSubsystem(SubsystemTrial(2, 5))
	derived := DeriveRNG(key, SubsystemTrial(2, 5))

	// THEN both produce the same sequence
	for i := 0; i < 5; i++ {
		if a, b := cached.Float64(), derived.Float64(); a != b {
			t.Errorf("Value %d: cached=%v derived=%v", i, a, b)
		}
	}

	// AND every call returns a new instance
	if DeriveRNG(key, "x") == DeriveRNG(key, "x") {
		t.Error("DeriveRNG returned a shared instance")
	}
}

// === fnv1a64 Tests ===

func TestFnv1a64_Collision(t *testing.T) {
	// Different subsystem names should produce different hashes (spot check)
	names := []string{
		SubsystemMeasurement,
		SubsystemTrial(0, 0),
		SubsystemTrial(0, 1),
		SubsystemTrial(1, 0),
		SubsystemTrial(10, 0),
		"",
	}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

func TestSubsystemTrial(t *testing.T) {
	tests := []struct {
		point, trial int
		want         string
	}{
		{0, 0, "trial_0_0"},
		{1, 12, "trial_1_12"},
		{10, 2, "trial_10_2"},
	}

	for _, tt := range tests {
		if got := SubsystemTrial(tt.point, tt.trial); got != tt.want {
			t.Errorf("SubsystemTrial(%d, %d) = %q, want %q", tt.point, tt.trial, got, tt.want)
		}
	}
}

// === Benchmark ===

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemMeasurement)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemMeasurement)
	}
}
