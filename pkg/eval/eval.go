// Package eval supplies the sample computation set for the evalpool demo
// driver, plus the evaluation record and a tabular dump of a batch.
package eval

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/evalio/evalpool/pkg/pool"
)

// The four sample computations. The pool is agnostic to their identity;
// they exist so the demo has something to schedule.
func Add(a, b int) int      { return a + b }
func Subtract(a, b int) int { return a - b }
func Multiply(a, b int) int { return a * b }

// Divide panics when b is zero. The pool provides no fault isolation, so
// callers must not build a batch that divides by zero.
func Divide(a, b int) int { return a / b }

// Funcs is the cycle order used by NewBatch
var Funcs = []pool.Computation{Add, Subtract, Multiply, Divide}

// Names mirrors Funcs for diagnostics
var Names = []string{"add", "subtract", "multiply", "divide"}

// Evaluation pairs one parameter set with its in-flight result. The
// result cell stays nil until the evaluation has been submitted.
type Evaluation struct {
	Param1 int
	Param2 int
	Fn     pool.Computation
	Name   string
	Res    *pool.Result
}

// NewBatch builds n evaluations with parameters (2i, i), cycling through
// the sample computations by i mod len(Funcs). With this shape Divide is
// never reached with a zero divisor: the first divide lands on (6, 3).
func NewBatch(n int) []*Evaluation {
	evals := make([]*Evaluation, 0, n)
	for i := 0; i < n; i++ {
		evals = append(evals, &Evaluation{
			Param1: 2 * i,
			Param2: i,
			Fn:     Funcs[i%len(Funcs)],
			Name:   Names[i%len(Names)],
		})
	}
	return evals
}

// Dump writes an aligned table of parameters, results, and ready flags.
// Unsubmitted or unfinished evaluations show "-" in the result column.
func Dump(w io.Writer, evals []*Evaluation) error {
	tw := tabwriter.NewWriter(w, 4, 0, 2, ' ', tabwriter.AlignRight)

	rows := []struct {
		title string
		cell  func(e *Evaluation) string
	}{
		{"param1", func(e *Evaluation) string { return fmt.Sprintf("%d", e.Param1) }},
		{"param2", func(e *Evaluation) string { return fmt.Sprintf("%d", e.Param2) }},
		{"func", func(e *Evaluation) string { return e.Name }},
		{"result", func(e *Evaluation) string {
			if e.Res == nil {
				return "-"
			}
			v, ok := e.Res.Value()
			if !ok {
				return "-"
			}
			return fmt.Sprintf("%d", v)
		}},
		{"ready", func(e *Evaluation) string {
			if e.Res == nil {
				return "false"
			}
			return fmt.Sprintf("%t", e.Res.Ready())
		}},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s=", row.title); err != nil {
			return err
		}
		for _, e := range evals {
			if _, err := fmt.Fprintf(tw, "\t%s", row.cell(e)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}

	return tw.Flush()
}
