package trace

// TraceLevel controls how much a SimulationTrace records.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelRouting captures coupling firings only.
	TraceLevelRouting TraceLevel = "routing"
	// TraceLevelFull captures coupling firings and atomic transitions.
	TraceLevelFull TraceLevel = "full"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:    true,
	TraceLevelRouting: true,
	TraceLevelFull:    true,
	"":                true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects records during a run.
type SimulationTrace struct {
	Config      TraceConfig
	Routings    []RoutingRecord
	Transitions []TransitionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Routings:    make([]RoutingRecord, 0),
		Transitions: make([]TransitionRecord, 0),
	}
}

// RoutingEnabled reports whether routing records are kept. Safe on nil.
func (st *SimulationTrace) RoutingEnabled() bool {
	return st != nil && (st.Config.Level == TraceLevelRouting || st.Config.Level == TraceLevelFull)
}

// TransitionsEnabled reports whether transition records are kept. Safe on nil.
func (st *SimulationTrace) TransitionsEnabled() bool {
	return st != nil && st.Config.Level == TraceLevelFull
}

// RecordRouting appends a routing record.
func (st *SimulationTrace) RecordRouting(record RoutingRecord) {
	st.Routings = append(st.Routings, record)
}

// RecordTransition appends a transition record.
func (st *SimulationTrace) RecordTransition(record TransitionRecord) {
	st.Transitions = append(st.Transitions, record)
}
