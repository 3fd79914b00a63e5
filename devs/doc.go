// Package devs provides the modeling vocabulary for the Parallel DEVS kernel.
//
// # Reading Guide
//
// Start with these files:
//   - time.go: simulation time in ticks and the Infinity sentinel
//   - bag.go: per-port message bags exchanged at one time instant
//   - model.go: Atomic and Coupled capability contracts
//   - coupling.go: EIC / IC / EOC edge records
//
// The engines that execute models live in devs/engine; decision traces in
// devs/trace; reference models in devs/models.
//
// # Key Interfaces
//
//   - Atomic: time advance, internal/external/confluent transitions, output
//   - Coupled: ordered components plus the three coupling tables
//   - Logger: category-tagged sink with lazily built messages
package devs
