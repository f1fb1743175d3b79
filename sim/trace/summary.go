package trace

import "sort"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTrials         int
	FoundCount          int
	MeanElapsedUs       float64
	MaxElapsedUs        int64
	UniqueOutcomes      int
	OutcomeDistribution map[string]int // measured bit-string → count
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		OutcomeDistribution: make(map[string]int),
	}
	if st == nil || len(st.Trials) == 0 {
		return summary
	}

	summary.TotalTrials = len(st.Trials)
	var totalElapsed int64
	for _, tr := range st.Trials {
		summary.OutcomeDistribution[tr.Outcome]++
		if tr.Found {
			summary.FoundCount++
		}
		totalElapsed += tr.ElapsedUs
		if tr.ElapsedUs > summary.MaxElapsedUs {
			summary.MaxElapsedUs = tr.ElapsedUs
		}
	}
	summary.MeanElapsedUs = float64(totalElapsed) / float64(len(st.Trials))
	summary.UniqueOutcomes = len(summary.OutcomeDistribution)

	return summary
}

// SortedOutcomes returns the distinct outcomes by descending count, ties
// broken lexicographically.
func (s *TraceSummary) SortedOutcomes() []string {
	outcomes := make([]string, 0, len(s.OutcomeDistribution))
	for o := range s.OutcomeDistribution {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		ci, cj := s.OutcomeDistribution[outcomes[i]], s.OutcomeDistribution[outcomes[j]]
		if ci != cj {
			return ci > cj
		}
		return outcomes[i] < outcomes[j]
	})
	return outcomes
}
