// Package engine executes DEVS models with the Parallel DEVS protocol.
//
// A model hierarchy is turned into an engine tree once: every atomic model is
// wrapped in a Simulator, every coupled model in a Coordinator owning its
// children's engines in declaration order. Coupling tables are resolved to
// child indices at that point, so an unknown model or port is a build error
// and never a runtime lookup miss.
//
// A driver (see Runner) then repeats one cycle per event time t:
//
//	t := root.Next()
//	root.CollectOutputs(t) // imminent engines compute outputs, EOC routing
//	root.Route(t, input)   // EIC then IC routing, recursively
//	root.Advance(t)        // transitions, only after all routing is done
//
// Thread-safety: NOT thread-safe. All methods must be called from the same goroutine.
package engine
