package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/grover-sim/grover-sim/sim"
)

var (
	optimalMin int // Smallest qubit count in the optimal table
	optimalMax int // Largest qubit count in the optimal table
)

// selftestCmd checks the oracle and diffusion operators against known vectors
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Verify the oracle and diffusion operators against known outputs",
	Run: func(cmd *cobra.Command, args []string) {
		results := sim.RunSelfTests()
		printSelfTests(os.Stdout, results)
		for _, r := range results {
			if !r.Passed {
				logrus.Fatalf("Self test %s failed", r.Name)
			}
		}
		fmt.Fprintln(os.Stdout, "Running tests finished!")
	},
}

// optimalCmd prints the optimal iteration count for a range of qubit counts
var optimalCmd = &cobra.Command{
	Use:   "optimal",
	Short: "Print optimal iteration counts and their success probability",
	Run: func(cmd *cobra.Command, args []string) {
		if optimalMin <= 0 || optimalMax < optimalMin || optimalMax > sim.MaxQubits {
			logrus.Fatalf("Invalid qubit range %d..%d (supported 1..%d)", optimalMin, optimalMax, sim.MaxQubits)
		}
		r := sim.NewParamRange(optimalMin, optimalMax)
		printOptimalTable(os.Stdout, r.Values(), max(len(marks), 1))
	},
}

func init() {
	optimalCmd.Flags().IntVar(&optimalMin, "qubits-min", 1, "Smallest qubit count")
	optimalCmd.Flags().IntVar(&optimalMax, "qubits-max", 12, "Largest qubit count")

	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(optimalCmd)
}
