// Package ticket provides the core discrete-event scheduler for combination
// tickets: a deterministic simulation of N vehicles through a fixed ordered
// sequence of workstation steps, subject to per-step server capacity,
// blocking-zone occupancy, and gate-buffer throttling.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - types.go: StepDef, Step, Zone, GateBuffer, TimelineRecord
//   - normalize.go: validation and derivation of the canonical route
//   - zonepool.go / gatepool.go: the two heap-backed resource pools
//   - simulator.go: the event loop that produces TimelineRecords
//
// # Key Interfaces
//
//   - Renderer: hands a RunResult to a pluggable output sink (see
//     render_table.go and render_msgpack.go for the two backends).
package ticket
