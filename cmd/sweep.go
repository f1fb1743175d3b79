package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/grover-sim/grover-sim/sim"
	"github.com/grover-sim/grover-sim/sim/trace"
)

var (
	qubitsMin        int    // Smallest qubit count in the sweep
	qubitsMax        int    // Largest qubit count in the sweep
	itersMin         int    // Smallest iteration count in the sweep
	itersMax         int    // Largest iteration count in the sweep
	sweepOptimal     bool   // One point per qubit count at the optimal iteration count
	sweepTrials      int    // Trials per sweep point
	presetName       string // Named sweep from defaults.yaml
	sweepConfigPath  string // Standalone sweep YAML file
	defaultsFilePath string // Path to defaults.yaml
	sweepTrace       string // Trial trace level for sweeps
)

// sweepCmd reports success counts over a (qubits, iterations) grid
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Measure success counts across qubit and iteration counts",
	Run: func(cmd *cobra.Command, args []string) {
		spec := mustResolveSweepSpec(cmd)
		runner := newSweepRunner(spec)
		st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(sweepTrace)})
		runner.SetTrace(st)

		results, err := runner.Sweep(spec.Points(), spec.Trials)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		printSweepTable(os.Stdout, results)
		if st.Config.Enabled() {
			printHistogram(os.Stdout, trace.Summarize(st))
		}
	},
}

// timingCmd reports mean and standard deviation of trial wall time
var timingCmd = &cobra.Command{
	Use:   "timing",
	Short: "Measure trial execution time across qubit and iteration counts",
	Run: func(cmd *cobra.Command, args []string) {
		spec := mustResolveSweepSpec(cmd)
		runner := newSweepRunner(spec)

		results, err := runner.TimeSweep(spec.Points(), spec.Trials)
		if err != nil {
			logrus.Fatalf("Timing sweep failed: %v", err)
		}
		printTimingTable(os.Stdout, results)
	},
}

// mustResolveSweepSpec builds the sweep from --preset or --config, then
// applies explicitly set flags on top. Exits on invalid input.
func mustResolveSweepSpec(cmd *cobra.Command) *sim.SweepSpec {
	if !trace.IsValidTraceLevel(sweepTrace) {
		logrus.Fatalf("Unknown trace level %q", sweepTrace)
	}
	var spec *sim.SweepSpec
	var err error
	switch {
	case presetName != "" && sweepConfigPath != "":
		logrus.Fatalf("--preset and --config are mutually exclusive")
	case presetName != "":
		spec, err = GetPreset(presetName, defaultsFilePath)
	case sweepConfigPath != "":
		spec, err = sim.LoadSweepSpec(sweepConfigPath)
	default:
		spec = &sim.SweepSpec{}
		// Flag defaults seed an ad-hoc sweep
		applySweepOverrides(spec, func(string) bool { return true })
	}
	if err != nil {
		logrus.Fatalf("Failed to load sweep: %v", err)
	}
	applySweepOverrides(spec, cmd.Flags().Changed)
	if err := spec.Validate(); err != nil {
		logrus.Fatalf("Invalid sweep: %v", err)
	}
	logrus.Infof("Sweep: qubits=%v iterations=%v optimal=%v trials=%d", spec.Qubits, spec.Iterations, spec.Optimal, spec.Trials)
	return spec
}

// applySweepOverrides copies every flag for which changed returns true into
// spec. Flags the user did not set leave preset values alone.
func applySweepOverrides(spec *sim.SweepSpec, changed func(name string) bool) {
	if changed("qubits-min") {
		spec.Qubits.Min = qubitsMin
	}
	if changed("qubits-max") {
		spec.Qubits.Max = qubitsMax
	}
	if changed("iterations-min") {
		spec.Iterations.Min = itersMin
	}
	if changed("iterations-max") {
		spec.Iterations.Max = itersMax
	}
	if changed("optimal") {
		spec.Optimal = sweepOptimal
	}
	if changed("trials") {
		spec.Trials = sweepTrials
	}
	if changed("ancilla") {
		spec.Ancilla = useAncilla
	}
	if changed("marks") {
		spec.Marks = marks
	}
	if changed("workers") {
		w := numWorkers
		spec.Workers = &w
	}
	if changed("seed") {
		s := seed
		spec.Seed = &s
	}
}

// newSweepRunner builds a runner from a resolved spec.
func newSweepRunner(spec *sim.SweepSpec) *sim.SimulationRunner {
	cfg := sim.NewRunnerConfig(seed, numWorkers, spec.Ancilla, spec.Marks)
	if spec.Seed != nil {
		cfg.Seed = *spec.Seed
	}
	if spec.Workers != nil {
		cfg.Workers = *spec.Workers
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return sim.NewSimulationRunner(cfg)
}

func addSweepFlags(c *cobra.Command) {
	c.Flags().IntVar(&qubitsMin, "qubits-min", 1, "Smallest qubit count")
	c.Flags().IntVar(&qubitsMax, "qubits-max", 8, "Largest qubit count")
	c.Flags().IntVar(&itersMin, "iterations-min", 0, "Smallest iteration count")
	c.Flags().IntVar(&itersMax, "iterations-max", 5, "Largest iteration count")
	c.Flags().BoolVar(&sweepOptimal, "optimal", false, "Use the optimal iteration count for each qubit count")
	c.Flags().IntVar(&sweepTrials, "trials", 100, "Trials per sweep point")
	c.Flags().StringVar(&presetName, "preset", "", "Named sweep from the defaults file")
	c.Flags().StringVar(&sweepConfigPath, "config", "", "Path to a sweep YAML file")
	c.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to the defaults file with sweep presets")
}

func init() {
	addSweepFlags(sweepCmd)
	addSweepFlags(timingCmd)
	sweepCmd.Flags().StringVar(&sweepTrace, "trace", "none", "Trial trace level (none, trials)")

	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(timingCmd)
}
