// Package matrix provides the dense cost-matrix primitives used by the
// Little branch-and-bound solver.
//
// A cost matrix is an n×n grid of finite, non-negative arc costs plus two
// reserved sentinel values that never participate in arithmetic:
//
//   - Forbidden (+Inf) — "no edge allowed here": the diagonal (self-loops),
//     rows/columns eliminated after committing an arc, and reverse arcs.
//   - Excluded (−Inf) — an arc ruled out by an explicit search decision,
//     distinct from Forbidden so visualizers can tell the two apart.
//
// Both sentinels are non-finite, so a single finiteness predicate (IsCost)
// excludes them from every min/subtract pass, and ±Inf survives accidental
// addition of finite values unchanged.
//
// The central operation is Reduce: subtracting row/column minima to expose
// zero cells and accumulate a lower-bound contribution. Reduce is pure —
// it clones its input and never mutates it.
package matrix
