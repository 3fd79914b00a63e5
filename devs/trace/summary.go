package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalRoutings     int
	MessagesByKind    map[string]int         // coupling kind → messages routed
	TransitionsByKind map[TransitionKind]int // transition kind → count
	PerModel          map[string]int         // atomic model → transitions run
	InputsConsumed    int                    // messages seen by transitions
	OutputsProduced   int                    // messages emitted by output functions
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		MessagesByKind:    make(map[string]int),
		TransitionsByKind: make(map[TransitionKind]int),
		PerModel:          make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalRoutings = len(st.Routings)
	for _, r := range st.Routings {
		summary.MessagesByKind[r.Kind] += r.Messages
	}
	for _, tr := range st.Transitions {
		summary.TransitionsByKind[tr.Kind]++
		summary.PerModel[tr.Model]++
		summary.InputsConsumed += tr.Inputs
		summary.OutputsProduced += tr.Outputs
	}
	return summary
}
