package sim

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// WarmupThreshold is the elapsed time above which the first trial of a point
// is treated as start-up cost and left out of timing statistics.
const WarmupThreshold = 100 * time.Millisecond

// TrialStats accumulates the results of one sweep point. It is owned by a
// single goroutine and reset between points.
type TrialStats struct {
	Successes int
	Durations []time.Duration
}

// Record adds one trial.
func (s *TrialStats) Record(res TrialResult) {
	if res.Found {
		s.Successes++
	}
	s.Durations = append(s.Durations, res.Elapsed)
}

// Reset clears the accumulator for the next point.
func (s *TrialStats) Reset() {
	s.Successes = 0
	s.Durations = s.Durations[:0]
}

// Trials returns the number of recorded trials.
func (s *TrialStats) Trials() int {
	return len(s.Durations)
}

// TimingSamples returns the durations in milliseconds, dropping the first one
// when it exceeds WarmupThreshold.
func (s *TrialStats) TimingSamples() []float64 {
	durations := s.Durations
	if len(durations) > 0 && durations[0] > WarmupThreshold {
		durations = durations[1:]
	}
	return DurationsToMs(durations)
}

// DurationsToMs converts durations to fractional milliseconds.
func DurationsToMs(durations []time.Duration) []float64 {
	ms := make([]float64, len(durations))
	for i, d := range durations {
		ms[i] = float64(d) / float64(time.Millisecond)
	}
	return ms
}

// CalculateMeanStdev returns the mean and sample standard deviation. Empty
// input yields zeros; a single sample has zero deviation.
func CalculateMeanStdev(samples []float64) (mean, stdev float64) {
	switch len(samples) {
	case 0:
		return 0, 0
	case 1:
		return samples[0], 0
	}
	return stat.MeanStdDev(samples, nil)
}
