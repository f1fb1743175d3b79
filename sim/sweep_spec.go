package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SweepSpec describes a parameter sweep, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" and leave the CLI value alone.
type SweepSpec struct {
	Qubits     ParamRange `yaml:"qubits"`
	Iterations ParamRange `yaml:"iterations"`
	Optimal    bool       `yaml:"optimal"` // one point per qubit count at OptimalIterations
	Trials     int        `yaml:"trials"`
	Workers    *int       `yaml:"workers"`
	Seed       *int64     `yaml:"seed"`
	Ancilla    bool       `yaml:"ancilla"`
	Marks      []int      `yaml:"marks"`
}

// LoadSweepSpec reads and strictly parses a YAML sweep file; unknown keys
// are errors.
func LoadSweepSpec(path string) (*SweepSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep spec: %w", err)
	}
	var spec SweepSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing sweep spec: %w", err)
	}
	return &spec, nil
}

// Validate checks ranges and counts. Mark bounds depend on the qubit count
// and are checked per point when the oracle is built.
func (s *SweepSpec) Validate() error {
	if err := s.Qubits.validate("qubits", 1); err != nil {
		return err
	}
	total := s.Qubits.Max
	if s.Ancilla {
		total++
	}
	if total > MaxQubits {
		return fmt.Errorf("%w: %d qubits exceeds the %d-qubit limit", ErrInvalidDimension, total, MaxQubits)
	}
	if !s.Optimal {
		if err := s.Iterations.validate("iterations", 0); err != nil {
			return err
		}
	}
	if s.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidSweep, s.Trials)
	}
	if s.Workers != nil && *s.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidSweep, *s.Workers)
	}
	for _, m := range s.Marks {
		if m < 0 {
			return fmt.Errorf("%w: negative mark %d", ErrInvalidOracleTarget, m)
		}
	}
	return nil
}

// Points expands the spec into ascending sweep points. Optimal points account
// for the number of marks.
func (s *SweepSpec) Points() []SweepPoint {
	points := SweepGrid(s.Qubits, s.Iterations, s.Optimal)
	if s.Optimal && len(s.Marks) > 1 {
		for i := range points {
			points[i].Iterations = OptimalIterationsForMarks(points[i].Qubits, len(s.Marks))
		}
	}
	return points
}
