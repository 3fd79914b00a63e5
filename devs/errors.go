package devs

import (
	"errors"
	"fmt"
)

// Structural errors, reported when an engine tree is built.
var (
	ErrUnknownModel     = errors.New("unknown model")
	ErrUnknownPort      = errors.New("unknown port")
	ErrPortType         = errors.New("incompatible port types")
	ErrDuplicateModel   = errors.New("duplicate model")
	ErrSelfCoupling     = errors.New("internal coupling from a model to itself")
	ErrUnsupportedModel = errors.New("model is neither atomic nor coupled")
)

// Runtime errors.
var (
	ErrProtocol            = errors.New("simulation protocol violation")
	ErrNegativeTimeAdvance = errors.New("negative time advance")
	ErrUndeclaredOutput    = errors.New("output on undeclared port")
)

// CouplingError describes one coupling that could not be resolved.
type CouplingError struct {
	Coupled  string
	Kind     CouplingKind
	Coupling Coupling
	Err      error
}

func (e *CouplingError) Error() string {
	return fmt.Sprintf("coupled model %q: %s %s: %v", e.Coupled, e.Kind, e.Coupling, e.Err)
}

func (e *CouplingError) Unwrap() error { return e.Err }

// ProtocolError reports an engine call made out of phase.
type ProtocolError struct {
	Engine string
	Op     string
	T      Time
	Last   Time
	Next   Time
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s at t=%s (last=%s, next=%s): %s",
		e.Engine, e.Op, e.T, e.Last, e.Next, e.Reason)
}

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }
