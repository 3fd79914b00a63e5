package models

import (
	"github.com/inference-sim/pdevs/devs"
)

// EFPConfig parameterizes the ef-p frame.
type EFPConfig struct {
	Period          devs.Time
	FirstJob        devs.Time
	MaxJobs         int
	ServiceTime     devs.Time
	ObservationTime devs.Time
}

// EFP is the assembled frame plus handles on its atomic parts.
type EFP struct {
	Model      *devs.CoupledModel
	Frame      *devs.CoupledModel
	Generator  *Generator
	Processor  *Processor
	Transducer *Transducer
}

// Port names on the coupled models.
var (
	FrameIn  = devs.PortOf[Job]("in")
	FrameOut = devs.PortOf[Job]("out")
	EFPOut   = devs.PortOf[Job]("out")
	EFPIn    = devs.PortOf[Job]("in")
)

// NewEFP wires
//
//	ef  = {genr, transd}: ef.in → transd.solved, genr.out → transd.arrived,
//	      transd.stop → genr.stop, genr.out → ef.out
//	efp = {ef, proc}:     efp.in → proc.in, ef.out → proc.in,
//	      proc.out → ef.in, proc.out → efp.out
//
// efp.in lets a driver inject extra jobs straight into the processor.
func NewEFP(cfg EFPConfig) *EFP {
	genr := NewGenerator("genr", cfg.Period, cfg.FirstJob, cfg.MaxJobs)
	transd := NewTransducer("transd", cfg.ObservationTime)
	proc := NewProcessor("proc", cfg.ServiceTime)

	ef := devs.NewCoupled("ef", []devs.Port{FrameIn.Port}, []devs.Port{FrameOut.Port}).
		AddComponents(genr, transd).
		AddEIC(FrameIn.Port, transd.Name(), transd.Solved.Port).
		AddIC(genr.Name(), genr.Out.Port, transd.Name(), transd.Arrived.Port).
		AddIC(transd.Name(), transd.Stop.Port, genr.Name(), genr.Stop.Port).
		AddEOC(genr.Name(), genr.Out.Port, FrameOut.Port)

	efp := devs.NewCoupled("efp", []devs.Port{EFPIn.Port}, []devs.Port{EFPOut.Port}).
		AddComponents(ef, proc).
		AddEIC(EFPIn.Port, proc.Name(), proc.In.Port).
		AddIC(ef.Name(), FrameOut.Port, proc.Name(), proc.In.Port).
		AddIC(proc.Name(), proc.Out.Port, ef.Name(), FrameIn.Port).
		AddEOC(proc.Name(), proc.Out.Port, EFPOut.Port)

	return &EFP{Model: efp, Frame: ef, Generator: genr, Processor: proc, Transducer: transd}
}
