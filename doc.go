// Package littletsp solves the Travelling Salesman Problem exactly with
// the Little branch-and-bound method — and records every decision the
// algorithm makes as a replayable step trace.
//
// 🚀 What is littletsp?
//
//	A deterministic, exact TSP solver built around three ideas:
//		• Matrix reduction: row/column reduction of the cost matrix yields
//		  an admissible lower bound at every node of the search tree
//		• Regret branching: the zero cell whose exclusion would hurt the
//		  most (highest regret) splits each node into include/exclude
//		• Best-first search: a bound-ordered frontier with FIFO tie-break
//		  guarantees the first drained incumbent is optimal
//
// ✨ Why choose littletsp?
//
//   - Exact answers – the returned tour is provably optimal, not heuristic
//   - Full transparency – every reduction, regret pick and branch is a
//     StepRecord you can inspect, export as JSON, or replay in a TUI
//   - Deterministic – identical inputs produce identical traces, run after run
//   - Resumable – the Stepper advances one record per call, so callers
//     control pacing and cancellation
//
// The module is organized as:
//
//	matrix/  — dense cost matrix with forbidden/excluded sentinels and reduction
//	little/  — the branch-and-bound engine: Solve, Stepper, StepRecord
//	cmd/     — the littletsp CLI (solve, play, version)
//
// Quick start:
//
//	costs := [][]float64{
//	    {0, 10, 15, 20},
//	    {10, 0, 35, 25},
//	    {15, 35, 0, 30},
//	    {20, 25, 30, 0},
//	}
//	res, err := little.Solve(costs, nil, little.DefaultOptions())
//	// res.Tour is the closed optimal tour, res.Cost its total cost,
//	// res.Trace the full decision record.
//
//	go get github.com/littletsp/littletsp
package littletsp
