package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/grover-sim/grover-sim/sim"
	"github.com/grover-sim/grover-sim/sim/trace"
)

var (
	// Flags shared by every command
	seed       int64  // Seed for measurement randomness
	logLevel   string // Log verbosity level
	numWorkers int    // Concurrent trials per sweep point
	useAncilla bool   // Allocate an ancilla qubit beyond the input register
	marks      []int  // Marked input indices (empty = all-zero string)

	// run flags
	numQubits     int    // Input qubits
	numIterations int    // Grover iterations (-1 = optimal)
	numTrials     int    // Trials per run or sweep point
	singleIter    bool   // 3-qubit, 1-iteration variant printing only found outcomes
	traceLevel    string // Trial trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "grover-sim",
	Short: "State-vector simulator for Grover's search",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd repeats a single (qubits, iterations) search and prints every outcome
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run repeated Grover searches for one qubit count",
	Run: func(cmd *cobra.Command, args []string) {
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q", traceLevel)
		}
		n, k := numQubits, numIterations
		if singleIter {
			n, k = 3, 1
		}
		if k < 0 {
			k = sim.OptimalIterationsForMarks(n, max(len(marks), 1))
		}
		if numTrials <= 0 {
			logrus.Fatalf("--trials must be positive, got %d", numTrials)
		}

		cfg := sim.NewRunnerConfig(seed, numWorkers, useAncilla, marks)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		runner := sim.NewSimulationRunner(cfg)
		st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})

		logrus.Infof("Running %d trials with %d input qubits, %d iterations, ancilla=%v", numTrials, n, k, useAncilla)
		successes := 0
		for i := 0; i < numTrials; i++ {
			res, err := runner.RunTrial(n, k)
			if err != nil {
				logrus.Fatalf("Trial %d failed: %v", i, err)
			}
			if res.Found {
				successes++
			}
			if !singleIter || res.Found {
				printOutcome(os.Stdout, res)
			}
			st.RecordTrial(trace.TrialRecord{
				Qubits:     n,
				Iterations: k,
				Trial:      i,
				Outcome:    res.Outcome.String(),
				Found:      res.Found,
				ElapsedUs:  res.Elapsed.Microseconds(),
			})
		}
		printRunSummary(os.Stdout, successes, numTrials)
		if st.Config.Enabled() {
			printHistogram(os.Stdout, trace.Summarize(st))
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for measurement randomness")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&numWorkers, "workers", 0, "Concurrent trials per sweep point (0 = number of CPUs)")
	rootCmd.PersistentFlags().BoolVar(&useAncilla, "ancilla", false, "Allocate an ancilla qubit beyond the input register")
	rootCmd.PersistentFlags().IntSliceVar(&marks, "marks", nil, "Comma-separated marked input indices (default: the all-zero string)")

	runCmd.Flags().IntVar(&numQubits, "qubits", 3, "Number of input qubits")
	runCmd.Flags().IntVar(&numIterations, "iterations", -1, "Grover iterations (-1 = optimal for the qubit count)")
	runCmd.Flags().IntVar(&numTrials, "trials", 100, "Number of trials")
	runCmd.Flags().BoolVar(&singleIter, "single-iter", false, "Three qubits, one iteration; print only outcomes that found the target")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trial trace level (none, trials)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
