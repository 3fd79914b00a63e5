package trace

import (
	"testing"
)

func TestSummarize_NilTrace_ReturnsZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalRoutings != 0 {
		t.Errorf("expected 0 routings, got %d", summary.TotalRoutings)
	}
	if summary.MessagesByKind == nil || summary.TransitionsByKind == nil || summary.PerModel == nil {
		t.Error("expected initialized maps on a nil trace")
	}
}

func TestSummarize_AggregatesRoutingsAndTransitions(t *testing.T) {
	// GIVEN a trace with mixed records
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelFull})
	st.RecordRouting(RoutingRecord{Kind: "EIC", Messages: 1})
	st.RecordRouting(RoutingRecord{Kind: "IC", Messages: 2})
	st.RecordRouting(RoutingRecord{Kind: "IC", Messages: 3})
	st.RecordRouting(RoutingRecord{Kind: "EOC", Messages: 2})
	st.RecordTransition(TransitionRecord{Model: "src", Kind: TransitionInternal, Outputs: 2})
	st.RecordTransition(TransitionRecord{Model: "dst", Kind: TransitionExternal, Inputs: 6})
	st.RecordTransition(TransitionRecord{Model: "src", Kind: TransitionConfluent, Inputs: 1, Outputs: 1})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts are aggregated per kind and per model
	if summary.TotalRoutings != 4 {
		t.Errorf("expected 4 routings, got %d", summary.TotalRoutings)
	}
	if summary.MessagesByKind["IC"] != 5 {
		t.Errorf("expected 5 IC messages, got %d", summary.MessagesByKind["IC"])
	}
	if summary.MessagesByKind["EOC"] != 2 {
		t.Errorf("expected 2 EOC messages, got %d", summary.MessagesByKind["EOC"])
	}
	if summary.TransitionsByKind[TransitionInternal] != 1 {
		t.Errorf("expected 1 internal transition, got %d", summary.TransitionsByKind[TransitionInternal])
	}
	if summary.PerModel["src"] != 2 {
		t.Errorf("expected 2 transitions for src, got %d", summary.PerModel["src"])
	}
	if summary.InputsConsumed != 7 {
		t.Errorf("expected 7 inputs consumed, got %d", summary.InputsConsumed)
	}
	if summary.OutputsProduced != 3 {
		t.Errorf("expected 3 outputs produced, got %d", summary.OutputsProduced)
	}
}
