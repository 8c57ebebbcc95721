// Package little — trace emission.
//
// The engine records one immutable StepRecord per decision. Records carry
// fresh snapshots only; no live engine state ever leaks through the trace.

package little

import (
	"fmt"
	"strconv"
	"strings"
)

// emit stamps rec with the next sequence number, applies the LeanTrace
// policy, appends it to the trace, and returns it.
func (s *Stepper) emit(rec StepRecord) StepRecord {
	rec.Seq = len(s.trace)
	if s.opts.LeanTrace {
		rec.Matrix = nil
		rec.Regrets = nil
	}
	s.trace = append(s.trace, rec)

	return rec
}

// fmtTour renders a closed tour as "0→1→3→2→0".
func fmtTour(tour []int) string {
	var (
		b strings.Builder
		i int
	)
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			b.WriteString("→")
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}

	return b.String()
}

// describeBranch builds the human-readable account of a branch record.
func describeBranch(arc Arc, excludeBound float64, includeBound float64, blocked []Arc, pruned bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "branched on %s: exclude bound %g", arc, excludeBound)
	if pruned {
		b.WriteString(", include child pruned (premature cycle)")
	} else {
		fmt.Fprintf(&b, ", include bound %g", includeBound)
	}

	var a Arc
	for _, a = range blocked {
		fmt.Fprintf(&b, ", blocked closing arc %s", a)
	}

	return b.String()
}
