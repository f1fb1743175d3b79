package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical configuration
// MUST produce identical outcomes.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemMeasurement is the RNG subsystem for sequential RunTrial calls.
	// Uses the master seed directly so --seed maps onto a plain rand.Source.
	SubsystemMeasurement = "measurement"
)

// SubsystemTrial returns the subsystem name for trial t of sweep point p.
// Every sweep trial gets its own stream so results do not depend on which
// worker ran it.
func SubsystemTrial(point, trial int) string {
	return fmt.Sprintf("trial_%d_%d", point, trial)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemMeasurement: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
// Use DeriveRNG to build independent streams from several goroutines.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := DeriveRNG(p.key, name)
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// DeriveRNG returns a fresh, uncached RNG for the named subsystem using the
// same derivation as ForSubsystem. Safe to call concurrently; the returned
// *rand.Rand is not.
func DeriveRNG(key SimulationKey, name string) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(key, name)))
}

func deriveSeed(key SimulationKey, name string) int64 {
	if name == SubsystemMeasurement {
		return int64(key)
	}
	return int64(key) ^ fnv1a64(name)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
