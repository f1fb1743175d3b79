package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sim "github.com/grover-sim/grover-sim/sim"
	"github.com/grover-sim/grover-sim/sim/trace"
)

// Styles for terminal reports. Colors degrade to plain text when stdout is
// not a terminal.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7"))

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9ece6a"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f7768e"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

// histogramWidth is the bar length of the most frequent outcome.
const histogramWidth = 40

func printOutcome(w io.Writer, res sim.TrialResult) {
	if res.Found {
		fmt.Fprintln(w, passStyle.Render(res.Outcome.String()))
		return
	}
	fmt.Fprintln(w, res.Outcome.String())
}

func printRunSummary(w io.Writer, successes, total int) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Result of measurements: %d / %d\n", successes, total)
}

func printSweepTable(w io.Writer, results []sim.SweepResult) {
	fmt.Fprintln(w, headerStyle.Render("=== Success Counts ==="))
	fmt.Fprintf(w, "%6s %6s %10s %8s\n", "qubits", "iters", "successes", "rate")
	for _, r := range results {
		fmt.Fprintf(w, "%6d %6d %10s %7.1f%%\n",
			r.Point.Qubits, r.Point.Iterations,
			fmt.Sprintf("%d/%d", r.Successes, r.Trials), 100*r.SuccessRate())
	}
}

func printTimingTable(w io.Writer, results []sim.TimingResult) {
	fmt.Fprintln(w, headerStyle.Render("=== Trial Timing ==="))
	fmt.Fprintf(w, "%6s %6s %12s %12s %8s\n", "qubits", "iters", "mean (ms)", "stdev (ms)", "samples")
	for _, r := range results {
		fmt.Fprintf(w, "%6d %6d %12.4f %12.4f %8d\n",
			r.Point.Qubits, r.Point.Iterations, r.MeanMs, r.StdevMs, r.Samples)
	}
}

func printSelfTests(w io.Writer, results []sim.SelfTestResult) {
	for _, r := range results {
		status := passStyle.Render("PASS")
		if !r.Passed {
			status = failStyle.Render("FAIL")
		}
		line := fmt.Sprintf("%s %-34s max deviation %.3e", status, r.Name, r.MaxDeviation)
		if r.Err != nil {
			line += " " + failStyle.Render(r.Err.Error())
		}
		fmt.Fprintln(w, line)
	}
}

func printOptimalTable(w io.Writer, qubits []int, numMarks int) {
	fmt.Fprintln(w, headerStyle.Render("=== Optimal Iterations ==="))
	fmt.Fprintf(w, "%6s %10s %6s %10s\n", "qubits", "N", "k", "P(found)")
	for _, n := range qubits {
		k := sim.OptimalIterationsForMarks(n, numMarks)
		fmt.Fprintf(w, "%6d %10d %6d %10.6f\n", n, 1<<n, k, sim.SuccessProbability(n, numMarks, k))
	}
}

func printHistogram(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("=== Outcome Distribution ==="))
	outcomes := summary.SortedOutcomes()
	if len(outcomes) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(no trials recorded)"))
		return
	}
	top := summary.OutcomeDistribution[outcomes[0]]
	for _, o := range outcomes {
		count := summary.OutcomeDistribution[o]
		bar := strings.Repeat("#", max(1, count*histogramWidth/top))
		fmt.Fprintf(w, "%s %6d %s\n", o, count, dimStyle.Render(bar))
	}
	fmt.Fprintf(w, "found %d / %d, mean trial time %.1f us\n",
		summary.FoundCount, summary.TotalTrials, summary.MeanElapsedUs)
}
