package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/grover-sim/grover-sim/sim/trace"
)

// TrialResult is the outcome of one simulated search.
type TrialResult struct {
	Outcome Outcome       // measured input bits, ancilla stripped
	Found   bool          // Outcome is a marked state
	Elapsed time.Duration // register allocation through measurement
}

// SimulationRunner executes Grover trials and parameter sweeps. It owns no
// quantum state: every trial allocates its own register and drops it after
// measurement.
type SimulationRunner struct {
	config RunnerConfig
	grover *GroverIterator
	trace  *trace.SimulationTrace

	mu  sync.Mutex      // guards rng
	rng *PartitionedRNG // sequential RunTrial stream
}

// NewSimulationRunner creates a runner. The config is validated by the caller
// (RunnerConfig.Validate); invalid Grover settings fall back to defaults.
func NewSimulationRunner(config RunnerConfig) *SimulationRunner {
	return &SimulationRunner{
		config: config,
		grover: NewGroverIterator(config.Grover),
		rng:    NewPartitionedRNG(NewSimulationKey(config.Seed)),
	}
}

// SetTrace attaches a trace that receives every sweep trial in order.
func (r *SimulationRunner) SetTrace(st *trace.SimulationTrace) {
	r.trace = st
}

// Config returns the runner configuration.
func (r *SimulationRunner) Config() RunnerConfig {
	return r.config
}

// RunTrial simulates one search over n input qubits with k iterations and
// measures the result. Draws come from the runner's sequential measurement
// stream, so repeated calls with the same seed replay the same outcomes.
func (r *SimulationRunner) RunTrial(n, k int) (TrialResult, error) {
	oracle, err := NewOracle(n, r.config.Marks...)
	if err != nil {
		return TrialResult{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runTrial(n, k, oracle, r.rng.ForSubsystem(SubsystemMeasurement))
}

func (r *SimulationRunner) runTrial(n, k int, oracle *Oracle, rng RandomSource) (TrialResult, error) {
	start := time.Now()
	s, err := r.grover.Run(n, oracle, k, r.config.Ancilla)
	if err != nil {
		return TrialResult{}, err
	}
	outcome, err := Measure(s, rng)
	if err != nil {
		return TrialResult{}, err
	}
	res := TrialResult{
		Outcome: outcome,
		Found:   oracle.IsMarked(outcome.Index()),
		Elapsed: time.Since(start),
	}
	logrus.Debugf("trial n=%d k=%d outcome=%s found=%v elapsed=%v", n, k, outcome, res.Found, res.Elapsed)
	return res, nil
}

// Sweep runs trials at every point and reports success counts in the order
// of points.
func (r *SimulationRunner) Sweep(points []SweepPoint, trials int) ([]SweepResult, error) {
	return r.SweepContext(context.Background(), points, trials)
}

// SweepContext is Sweep with cancellation; no new trials start once ctx is done.
func (r *SimulationRunner) SweepContext(ctx context.Context, points []SweepPoint, trials int) ([]SweepResult, error) {
	if err := validateSweep(points, trials); err != nil {
		return nil, err
	}
	logrus.Infof("Starting sweep over %d points, %d trials each, %d workers", len(points), trials, r.config.workerLimit())

	results := make([]SweepResult, 0, len(points))
	var stats TrialStats
	for i, p := range points {
		trialResults, err := r.runPoint(ctx, i, p, trials, r.config.workerLimit())
		if err != nil {
			return nil, err
		}
		stats.Reset()
		r.collect(p, trialResults, &stats)
		results = append(results, SweepResult{Point: p, Successes: stats.Successes, Trials: stats.Trials()})
		logrus.Infof("%s: %d / %d", p, stats.Successes, stats.Trials())
	}
	return results, nil
}

// TimeSweep runs trials at every point and reports elapsed-time statistics.
// Trials run one at a time so that timings are not skewed by contention.
func (r *SimulationRunner) TimeSweep(points []SweepPoint, trials int) ([]TimingResult, error) {
	return r.TimeSweepContext(context.Background(), points, trials)
}

// TimeSweepContext is TimeSweep with cancellation.
func (r *SimulationRunner) TimeSweepContext(ctx context.Context, points []SweepPoint, trials int) ([]TimingResult, error) {
	if err := validateSweep(points, trials); err != nil {
		return nil, err
	}
	logrus.Infof("Starting timing sweep over %d points, %d trials each", len(points), trials)

	results := make([]TimingResult, 0, len(points))
	var stats TrialStats
	for i, p := range points {
		trialResults, err := r.runPoint(ctx, i, p, trials, 1)
		if err != nil {
			return nil, err
		}
		stats.Reset()
		r.collect(p, trialResults, &stats)
		samples := stats.TimingSamples()
		mean, stdev := CalculateMeanStdev(samples)
		results = append(results, TimingResult{
			Point:     p,
			MeanMs:    mean,
			StdevMs:   stdev,
			Samples:   len(samples),
			Successes: stats.Successes,
			Trials:    stats.Trials(),
		})
		logrus.Infof("%s: mean=%.3fms stdev=%.3fms", p, mean, stdev)
	}
	return results, nil
}

// runPoint executes trials for one point on up to workers goroutines. Each
// trial uses its own RNG stream keyed by (point, trial), and results are
// stored by trial index.
func (r *SimulationRunner) runPoint(ctx context.Context, pointIdx int, p SweepPoint, trials, workers int) ([]TrialResult, error) {
	oracle, err := NewOracle(p.Qubits, r.config.Marks...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	results := make([]TrialResult, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for t := 0; t < trials; t++ {
		t := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := DeriveRNG(r.rng.Key(), SubsystemTrial(pointIdx, t))
			res, err := r.runTrial(p.Qubits, p.Iterations, oracle, rng)
			if err != nil {
				return fmt.Errorf("%s trial %d: %w", p, t, err)
			}
			results[t] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// collect folds trial results into stats in trial order and feeds the trace.
func (r *SimulationRunner) collect(p SweepPoint, trialResults []TrialResult, stats *TrialStats) {
	for t, res := range trialResults {
		stats.Record(res)
		if r.trace != nil {
			r.trace.RecordTrial(trace.TrialRecord{
				Qubits:     p.Qubits,
				Iterations: p.Iterations,
				Trial:      t,
				Outcome:    res.Outcome.String(),
				Found:      res.Found,
				ElapsedUs:  res.Elapsed.Microseconds(),
			})
		}
	}
}

func validateSweep(points []SweepPoint, trials int) error {
	if trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidSweep, trials)
	}
	for _, p := range points {
		if p.Qubits <= 0 {
			return fmt.Errorf("%w: %s has no input qubits", ErrInvalidSweep, p)
		}
		if p.Iterations < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidIterations, p)
		}
	}
	return nil
}
