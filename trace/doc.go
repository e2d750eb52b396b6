// Package trace defines the leveled progress sink consumed by every solver
// in minima, plus ready-made sink constructors backed by zap.
//
// 🚀 Why a sink and not a global logger?
//
//	Each solver call receives its own Sink as an explicit capability.
//	There is no package-level logging state anywhere in the module, so two
//	concurrent calls with independent sinks never interfere, and tests can
//	observe exactly the checkpoints a single call emitted.
//
// ✨ Variants:
//   - NewConsole — timestamped console output only
//   - NewFile    — timestamped file output only
//   - NewDual    — console and file fed from one tee
//   - Nop        — discard everything (the default inside solvers)
//
// Levels follow the usual {debug, info, warn, error} ladder; debug lines are
// only material when a sink was built with verbose=true.
//
// The zap cores behind every constructor serialize their own writes, so a
// single Sink may be shared between goroutines; the solvers themselves are
// strictly single-threaded per call.
package trace
