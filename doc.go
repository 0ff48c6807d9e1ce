// Package searchclient provides a generic best-first state-space search engine.
//
// The engine pairs a Strategy, which owns the frontier and the explored set
// of one run, with a Heuristic, which scores box-pushing states for the
// informed strategies:
//
//   - NewBreadthFirst: FIFO frontier.
//   - NewDepthFirst: LIFO frontier.
//   - NewBestFirst: min-heap ordered by Heuristic.Score (A*, weighted A* or greedy).
//
// It exposes three drivers over a Strategy:
//
//   - Search: run to completion and get a Result.
//   - Stepper: expand one state at a time to drive UIs or debugging tools.
//   - Race: run several strategies side by side and keep the first solution.
//
// States are compared by Key, never by identity, so equal configurations
// reached along different paths are treated as duplicates.
package searchclient
