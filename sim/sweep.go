package sim

import "fmt"

// SweepPoint is one (qubits, iterations) parameter pair.
type SweepPoint struct {
	Qubits     int
	Iterations int
}

func (p SweepPoint) String() string {
	return fmt.Sprintf("n=%d k=%d", p.Qubits, p.Iterations)
}

// ParamRange is an inclusive integer range. Step 0 means 1.
type ParamRange struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

// NewParamRange returns the inclusive range [min, max] with step 1.
func NewParamRange(min, max int) ParamRange {
	return ParamRange{Min: min, Max: max, Step: 1}
}

// Values returns the range members in ascending order.
func (r ParamRange) Values() []int {
	step := r.Step
	if step == 0 {
		step = 1
	}
	var vals []int
	for v := r.Min; v <= r.Max; v += step {
		vals = append(vals, v)
	}
	return vals
}

// validate checks that the range is non-empty and starts at or above floor.
func (r ParamRange) validate(name string, floor int) error {
	if r.Step < 0 {
		return fmt.Errorf("%w: %s step must be non-negative, got %d", ErrInvalidSweep, name, r.Step)
	}
	if r.Min < floor {
		return fmt.Errorf("%w: %s min must be >= %d, got %d", ErrInvalidSweep, name, floor, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: %s max %d below min %d", ErrInvalidSweep, name, r.Max, r.Min)
	}
	return nil
}

// SweepGrid returns every (qubits, iterations) pair in ascending order,
// qubits outermost. With optimal set, each qubit count gets a single point at
// OptimalIterations and the iteration range is ignored.
func SweepGrid(qubits, iterations ParamRange, optimal bool) []SweepPoint {
	var points []SweepPoint
	for _, n := range qubits.Values() {
		if optimal {
			points = append(points, SweepPoint{Qubits: n, Iterations: OptimalIterations(n)})
			continue
		}
		for _, k := range iterations.Values() {
			points = append(points, SweepPoint{Qubits: n, Iterations: k})
		}
	}
	return points
}

// SweepResult is the success count of one sweep point.
type SweepResult struct {
	Point     SweepPoint
	Successes int
	Trials    int
}

// SuccessRate returns Successes / Trials, or 0 with no trials.
func (r SweepResult) SuccessRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Successes) / float64(r.Trials)
}

// TimingResult is the elapsed-time summary of one sweep point.
type TimingResult struct {
	Point     SweepPoint
	MeanMs    float64
	StdevMs   float64
	Samples   int // durations kept after warm-up filtering
	Successes int
	Trials    int
}
