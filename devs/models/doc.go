// Package models provides reference DEVS models.
//
// The generator / processor / transducer trio composes into the classic
// "ef-p" experimental frame: a generator feeds jobs to a processor, a
// transducer measures turnaround and throughput, and stops the generator
// when the observation window closes.
//
// Recorder is a scriptable atomic model that logs every protocol call; the
// engine tests use it to check transition dispatch.
package models
