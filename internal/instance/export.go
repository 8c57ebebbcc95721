// Trace export: a JSON rendering of a solver run for downstream viewers
// (graph renderers, decision-tree renderers, tabular step viewers).
//
// encoding/json cannot carry ±Inf, so matrix cells are rendered as
// strings: a number, "M" (forbidden), or "X" (excluded); regret cells
// that are not zero cells render as "".

package instance

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/littletsp/littletsp/little"
	"github.com/littletsp/littletsp/matrix"
)

// Export is the serialized form of one completed solver run.
type Export struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Instance    string    `json:"instance"`
	Labels      []string  `json:"labels,omitempty"`
	Tour        []int     `json:"tour"`
	Cost        float64   `json:"cost"`
	Steps       []Step    `json:"steps"`
}

// Step is the JSON-safe projection of a little.StepRecord.
type Step struct {
	Seq          int          `json:"seq"`
	Kind         string       `json:"kind"`
	Bound        float64      `json:"bound"`
	Description  string       `json:"description"`
	Arc          *little.Arc  `json:"arc,omitempty"`
	Matrix       [][]string   `json:"matrix,omitempty"`
	Regrets      [][]string   `json:"regrets,omitempty"`
	ExcludeBound *float64     `json:"exclude_bound,omitempty"`
	IncludeBound *float64     `json:"include_bound,omitempty"`
	Blocked      []little.Arc `json:"blocked,omitempty"`
	CyclePruned  bool         `json:"cycle_pruned,omitempty"`
}

// BuildExport projects a solver result into its serialized form, stamping
// it with a fresh run id.
func BuildExport(name string, res little.Result) Export {
	ex := Export{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Instance:    name,
		Labels:      res.Labels,
		Tour:        res.Tour,
		Cost:        res.Cost,
		Steps:       make([]Step, 0, len(res.Trace)),
	}

	for _, rec := range res.Trace {
		st := Step{
			Seq:         rec.Seq,
			Kind:        rec.Kind.String(),
			Bound:       rec.Bound,
			Description: rec.Description,
			Arc:         rec.Arc,
			Matrix:      renderMatrix(rec.Matrix),
			Regrets:     renderRegrets(rec.Regrets),
			Blocked:     rec.Blocked,
			CyclePruned: rec.CyclePruned,
		}
		if rec.Kind == little.StepBranch {
			eb := rec.ExcludeBound
			st.ExcludeBound = &eb
			if !math.IsInf(rec.IncludeBound, 1) {
				ib := rec.IncludeBound
				st.IncludeBound = &ib
			}
		}
		ex.Steps = append(ex.Steps, st)
	}

	return ex
}

// WriteJSON writes the export as indented JSON.
func WriteJSON(w io.Writer, ex Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ex); err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}

	return nil
}

// renderMatrix converts a snapshot to JSON-safe cells.
func renderMatrix(m [][]float64) [][]string {
	if m == nil {
		return nil
	}
	out := make([][]string, len(m))
	for i, row := range m {
		out[i] = make([]string, len(row))
		for j, x := range row {
			out[i][j] = RenderCell(x)
		}
	}

	return out
}

// renderRegrets converts a regret grid; NaN (not a zero cell) renders "".
func renderRegrets(m [][]float64) [][]string {
	if m == nil {
		return nil
	}
	out := make([][]string, len(m))
	for i, row := range m {
		out[i] = make([]string, len(row))
		for j, x := range row {
			if math.IsNaN(x) {
				out[i][j] = ""
				continue
			}
			out[i][j] = strconv.FormatFloat(x, 'g', -1, 64)
		}
	}

	return out
}

// RenderCell renders one matrix cell: a number, "M" (forbidden) or
// "X" (excluded). Shared with the playback TUI so both surfaces agree.
func RenderCell(x float64) string {
	switch {
	case matrix.IsForbidden(x):
		return "M"
	case matrix.IsExcluded(x):
		return "X"
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}
