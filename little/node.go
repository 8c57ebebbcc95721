// Package little — branch node (one vertex of the conceptual search tree).

package little

import "github.com/littletsp/littletsp/matrix"

// branchNode owns a full working matrix (value semantics — never aliased
// with siblings), the cumulative lower bound, the number of arcs committed
// so far, and its own copies of the included/excluded arc sets.
type branchNode struct {
	mat      *matrix.Dense
	bound    float64
	level    int
	included []Arc
	excluded []Arc

	// seq is the frontier insertion number; it breaks bound ties FIFO so
	// the search order (and therefore the trace) is deterministic.
	seq uint64
}

// withArc returns a copy of arcs extended by a. The parent's slice is
// never shared: each child owns its own backing array.
func withArc(arcs []Arc, a Arc) []Arc {
	out := make([]Arc, len(arcs)+1)
	copy(out, arcs)
	out[len(arcs)] = a

	return out
}

// copyArcs returns an independent copy of arcs (nil stays nil-length).
func copyArcs(arcs []Arc) []Arc {
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}
