// Package sim provides the core engine for the single-synapse LTP model.
//
// # Reading Guide
//
// Start with these two files to understand the model:
//   - params.go: per-condition parameter records and the built-in condition set
//   - simulator.go: the time grid and the two-phase weight update loop
//
// # Architecture
//
// The sim package holds parameters, the stepping loop, and end-of-run
// reporting; pure data types live in the sub-package:
//   - sim/trace/: weight-trace recording and summary statistics
//
// Each condition is simulated independently on its own Simulator; there is no
// shared state between runs and no randomness anywhere in the model.
package sim
