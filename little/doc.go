// Package little solves the Travelling Salesman Problem exactly using the
// Little branch-and-bound method: iterative matrix reduction, regret-based
// arc selection, and a best-first search over include/exclude branches with
// arc-based subtour elimination.
//
// Entry points:
//
//   - Solve       — run the search to completion on an n×n cost grid.
//   - SolveDense  — same, for a pre-built *matrix.Dense (e.g. FromGonum).
//   - NewStepper  — resumable engine: one immutable StepRecord per Next()
//     call, for step-by-step playback by external visualizers.
//
// Every algorithm decision (reduction, regret pick, branch, final) is
// recorded as a StepRecord. The ordered trace is the sole integration
// surface for visualization collaborators: they treat it as read-only and
// may render any prefix of it without re-invoking the engine.
//
// Determinism: identical inputs produce identical tours, costs, and traces.
// Ties in the frontier break by insertion order (FIFO among equal bounds);
// ties in regret selection break by row-major scan order.
//
// Complexity: worst case exponential in n (exact search); per branch node
// O(n²) for reduction plus O(n α(n)) for the connectivity guard.
package little
