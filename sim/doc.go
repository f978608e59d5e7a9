// Package sim provides the discrete-event simulation engine for a
// three-stage manufacturing line (Prep → Assembly → Testing).
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - order.go: Order lifecycle (Prep → Assembly → Testing → Done) and the
//     day-boundary records (CarriedOrder, CompletedOrder)
//   - event.go: Event types that drive the simulation (OrderArrival,
//     ServiceComplete) over the deterministic heap in event_heap.go
//   - simulator.go: The one-day event loop, station handling, and the
//     boundary snapshot
//
// # Architecture
//
// One Simulator runs exactly one day: it restores the previous day's
// backlog, pre-generates arrivals, executes events strictly before the
// 24-hour horizon, and freezes whatever is still in flight with exact
// remaining durations. The campaign layer (campaign.go, dayrunner.go)
// threads state between days:
//
//	RunDay(state, machines, key) → DayResult → state.ApplyResult(result)
//
// RunDay is pure with respect to the campaign state; applying results and
// purchasing machines are the only mutations, and both book their cash
// movements in the ledger (ledger.go).
//
// The trace subpackage records order lifecycles (arrival, queue joins,
// service starts and finishes, completion) on the global clock when a
// LineTrace is attached to the Simulator; a nil trace records nothing.
//
// # Determinism
//
// All randomness flows through PartitionedRNG (rng.go): per-subsystem
// streams for arrivals and each stage's service times, derived from one
// SimulationKey. Same key, same config, same backlog ⇒ bit-for-bit
// identical DayResult. Same-timestamp events execute in scheduling order
// (event_heap.go), so ties never depend on map iteration or heap layout.
package sim
