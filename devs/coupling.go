package devs

import "fmt"

// CouplingKind distinguishes the three coupling tables.
type CouplingKind string

const (
	KindEIC CouplingKind = "EIC"
	KindIC  CouplingKind = "IC"
	KindEOC CouplingKind = "EOC"
)

// Coupling is a directed edge between two ports. An empty model name refers
// to the enclosing coupled model itself: FromModel is empty for EIC, ToModel
// is empty for EOC.
type Coupling struct {
	FromModel string
	FromPort  Port
	ToModel   string
	ToPort    Port
}

func (c Coupling) String() string {
	return fmt.Sprintf("%s → %s", endpoint(c.FromModel, c.FromPort), endpoint(c.ToModel, c.ToPort))
}

func endpoint(model string, p Port) string {
	if model == "" {
		return "self." + p.Name
	}
	return model + "." + p.Name
}
