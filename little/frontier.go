// Package little — best-first search frontier.
//
// The frontier is a binary heap of branch nodes keyed by (bound, seq)
// ascending: lowest bound first, FIFO among equal bounds. The stable
// tie-break keeps runs byte-for-byte reproducible.

package little

import "container/heap"

// nodeHeap implements heap.Interface over *branchNode.
type nodeHeap []*branchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].bound != h[j].bound {
		return h[i].bound < h[j].bound
	}

	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*branchNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// frontier wraps nodeHeap with a typed push/pop surface and the insertion
// counter that feeds the FIFO tie-break.
type frontier struct {
	h    nodeHeap
	seqs uint64
}

// push inserts nd, stamping it with the next insertion number.
func (f *frontier) push(nd *branchNode) {
	nd.seq = f.seqs
	f.seqs++
	heap.Push(&f.h, nd)
}

// pop removes and returns the lowest-(bound, seq) node; nil when empty.
func (f *frontier) pop() *branchNode {
	if len(f.h) == 0 {
		return nil
	}

	return heap.Pop(&f.h).(*branchNode)
}

// empty reports whether no nodes remain.
func (f *frontier) empty() bool { return len(f.h) == 0 }
