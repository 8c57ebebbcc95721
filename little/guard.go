// Package little — connectivity guard (subtour elimination).
//
// The guard prevents the search from closing a cycle before exactly n arcs
// are committed and from merging two disjoint path segments into an
// illegal loop. It is rebuilt from a node's included arcs for every
// include attempt and never shared across branch nodes: a fresh, plain
// array-based union-find (parent + rank, path compression) plus
// successor/predecessor links for chain-endpoint walks, plus an iterative
// three-color cycle check over the tentative arc set.

package little

// guard is the ephemeral connectivity state for one include attempt.
type guard struct {
	n      int
	parent []int
	rank   []int
	next   []int // next[u] = v when arc u→v is included; -1 otherwise
	prev   []int // prev[v] = u when arc u→v is included; -1 otherwise
}

// newGuard builds the guard from a set of already-included arcs.
// The arc set is trusted to be consistent (single out-degree/in-degree);
// it was produced by previous guard-approved inclusions.
//
// Complexity: O(n + |included| α(n)).
func newGuard(n int, included []Arc) *guard {
	g := &guard{
		n:      n,
		parent: make([]int, n),
		rank:   make([]int, n),
		next:   make([]int, n),
		prev:   make([]int, n),
	}

	var i int
	for i = 0; i < n; i++ {
		g.parent[i] = i
		g.next[i] = -1
		g.prev[i] = -1
	}
	var a Arc
	for _, a = range included {
		g.next[a.From] = a.To
		g.prev[a.To] = a.From
		g.union(a.From, a.To)
	}

	return g
}

// find returns the representative of x's set, compressing paths
// iteratively (grandparent hops) to keep the walk stack-free.
func (g *guard) find(x int) int {
	for g.parent[x] != x {
		g.parent[x] = g.parent[g.parent[x]]
		x = g.parent[x]
	}

	return x
}

// union merges the sets containing a and b (union by rank).
func (g *guard) union(a, b int) {
	var (
		ra = g.find(a)
		rb = g.find(b)
	)
	if ra == rb {
		return
	}
	switch {
	case g.rank[ra] < g.rank[rb]:
		g.parent[ra] = rb
	case g.rank[ra] > g.rank[rb]:
		g.parent[rb] = ra
	default:
		g.parent[rb] = ra
		g.rank[ra]++
	}
}

// connected reports whether a and b already belong to the same chain.
func (g *guard) connected(a, b int) bool { return g.find(a) == g.find(b) }

// chainStart walks predecessor links from u to the start of its chain.
// Included arcs form simple paths, so the walk terminates within n hops.
func (g *guard) chainStart(u int) int {
	for g.prev[u] != -1 {
		u = g.prev[u]
	}

	return u
}

// chainEnd walks successor links from v to the end of its chain.
func (g *guard) chainEnd(v int) int {
	for g.next[v] != -1 {
		v = g.next[v]
	}

	return v
}

// chainSpan counts the cities on the chain starting at u.
func (g *guard) chainSpan(u int) int {
	span := 1
	for g.next[u] != -1 {
		u = g.next[u]
		span++
	}

	return span
}

// includeVerdict is the guard's decision about one tentative inclusion.
type includeVerdict struct {
	// premature is true when the arc would close a cycle before all n
	// cities are chained; the include child must be discarded outright.
	premature bool

	// blocked is the closing arc (end of the merged chain → start of the
	// merged chain) that must be set to the exclusion sentinel in the
	// include child's matrix. Valid only when hasBlock is true.
	blocked  Arc
	hasBlock bool
}

// checkInclude evaluates tentatively including arc on top of included.
// closingAllowed must be true only when arc is the n-th commitment — the
// one legal cycle closure.
//
// Steps:
//  1. Union-find pre-check: already-connected endpoints signal a cycle.
//  2. Chain-endpoint walk: the merged chain runs
//     chainStart(arc.From) … arc.From → arc.To … chainEnd(arc.To);
//     its closing arc (end → start) is reported for exclusion — unless the
//     merged chain already spans all n cities, in which case that arc is
//     the legal tour-completing commitment and must stay available.
//  3. Three-color cycle check over the tentative arc set, as a structural
//     backstop against inconsistent arc sets.
//
// Complexity: O(n) per attempt.
func checkInclude(n int, included []Arc, arc Arc, closingAllowed bool) includeVerdict {
	g := newGuard(n, included)

	if g.connected(arc.From, arc.To) {
		if !closingAllowed {
			return includeVerdict{premature: true}
		}
		// The single legal closure: no arc left to block.
		return includeVerdict{}
	}

	var (
		start = g.chainStart(arc.From)
		end   = g.chainEnd(arc.To)
	)

	g.next[arc.From] = arc.To
	g.prev[arc.To] = arc.From
	g.union(arc.From, arc.To)

	if hasCycle(n, g.next) && !closingAllowed {
		return includeVerdict{premature: true}
	}

	if closingAllowed {
		return includeVerdict{}
	}

	// A chain spanning every city has exactly one completion left: its
	// closing arc. Blocking it would strand the subtree one arc short.
	if g.chainSpan(start) == n {
		return includeVerdict{}
	}

	return includeVerdict{blocked: Arc{From: end, To: start}, hasBlock: true}
}

// Visit colors for the iterative cycle check.
const (
	colorWhite = iota // unvisited
	colorGray         // in progress (on the walk)
	colorBlack        // done
)

// hasCycle runs an iterative three-color scan over a successor table
// (out-degree ≤ 1). A step onto a gray node is a back-edge, i.e. a cycle.
// Explicit array state instead of recursion keeps larger n safe.
//
// Complexity: O(n) time, O(n) space.
func hasCycle(n int, next []int) bool {
	var (
		color = make([]int, n)
		s, u  int
	)
	for s = 0; s < n; s++ {
		if color[s] != colorWhite {
			continue
		}
		// Walk the single-successor chain from s.
		u = s
		for u != -1 && color[u] == colorWhite {
			color[u] = colorGray
			u = next[u]
		}
		if u != -1 && color[u] == colorGray {
			return true
		}
		// Repaint the walked chain black.
		u = s
		for u != -1 && color[u] == colorGray {
			color[u] = colorBlack
			u = next[u]
		}
	}

	return false
}
