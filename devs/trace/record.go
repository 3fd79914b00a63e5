// Package trace provides routing and transition records for post-run analysis.
// This package has no dependencies on devs/engine; it stores pure data types.
package trace

// RoutingRecord captures one coupling firing: a non-empty source sequence
// appended to a destination sequence.
type RoutingRecord struct {
	Clock     int64
	Coupled   string // coupled model owning the coupling table
	Kind      string // EIC, IC or EOC
	FromModel string // empty for EIC
	FromPort  string
	ToModel   string // empty for EOC
	ToPort    string
	Messages  int
}

// TransitionKind names the transition an atomic model ran.
type TransitionKind string

const (
	TransitionInternal  TransitionKind = "internal"
	TransitionExternal  TransitionKind = "external"
	TransitionConfluent TransitionKind = "confluent"
)

// TransitionRecord captures one atomic state transition.
type TransitionRecord struct {
	Clock    int64
	Model    string
	Kind     TransitionKind
	Elapsed  int64 // external transitions only
	Inputs   int   // messages in the inbox when the transition ran
	Outputs  int   // messages produced by the output function, if imminent
	NextTime int64
}
