// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/matrix"
)

var log = logging.Logger("solver")

// Phase names a stage of the elimination state machine. It appears in log
// records and error messages; it is not retained between calls.
type Phase int

// Elimination phases.
const (
	PhaseInitialized Phase = iota
	PhaseForward
	PhaseBackSubstitution
	PhaseSolved
	PhaseSingular
	PhaseDimensionError
)

// String returns the human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseForward:
		return "forward elimination"
	case PhaseBackSubstitution:
		return "back substitution"
	case PhaseSolved:
		return "solved"
	case PhaseSingular:
		return "singular"
	case PhaseDimensionError:
		return "dimension error"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// GaussElimination solves A·x = b for a borrowed square A and vector b.
// It holds no state between Solve calls.
type GaussElimination[T any] struct {
	a     *matrix.Matrix[T]
	b     *matrix.Vector[T]
	field algebra.Field[T]
	opts  Options
}

// New prepares an elimination over a built-in numeric element type.
// Validation is deferred to Solve.
func New[T algebra.Number](a *matrix.Matrix[T], b *matrix.Vector[T], opts ...Option) *GaussElimination[T] {
	return NewWithField[T](a, b, algebra.NumberField[T]{}, opts...)
}

// NewWithField prepares an elimination over any element type with a Field.
// It panics when field is nil (programmer error); shape problems are
// reported by Solve.
func NewWithField[T any](a *matrix.Matrix[T], b *matrix.Vector[T], field algebra.Field[T], opts ...Option) *GaussElimination[T] {
	if field == nil {
		panic("solver: NewWithField: nil field")
	}

	return &GaussElimination[T]{a: a, b: b, field: field, opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (g *GaussElimination[T]) Options() Options { return g.opts }

// Solve runs elimination with partial pivoting and back-substitution.
//
// Implementation:
//   - Stage 1 (Validate): A square and len(b) == rows(A); else ErrDimensionMismatch.
//   - Stage 2 (Clone): copy A (column-major, stride n) and b into working storage.
//   - Stage 3 (Forward): per column k pick the largest-magnitude pivot in rows k..n-1
//     (first one wins ties), reject it when at or below the threshold, swap it
//     into row k, eliminate the rows below.
//   - Stage 4 (Back): x[i] = (rhs[i] - Σ_{j>i} U[i][j]·x[j]) / U[i][i], i = n-1..0.
//
// Errors:
//   - ErrDimensionMismatch (also for nil operands), ErrSingularMatrix.
//
// Determinism:
//   - Fixed loop orders and tie rule: identical inputs give identical outputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (g *GaussElimination[T]) Solve() (*matrix.Vector[T], error) {
	if err := matrix.ValidateSystem(g.a, g.b); err != nil {
		log.Debugw("rejecting system", "phase", PhaseDimensionError, "err", err)
		return nil, fmt.Errorf("%s: %s: %w: %w", opSolve, PhaseDimensionError, ErrDimensionMismatch, err)
	}

	n := g.a.Rows()
	f := g.field
	threshold := g.threshold()

	// Working copies: element (r, c) of A is w[c*n + r]; x starts as b.
	w := g.a.ColumnMajor()
	x := g.b.Values()

	var i, j, k, p int
	var mag, m float64
	for k = 0; k < n; k++ {
		// Column k is contiguous: w[k*n+k : k*n+n].
		col := k * n
		p, mag = k, f.Magnitude(w[col+k])
		for i = k + 1; i < n; i++ {
			if m = f.Magnitude(w[col+i]); m > mag {
				p, mag = i, m
			}
		}
		if !(mag > threshold) { // NaN magnitudes are singular too
			log.Debugw("singular pivot", "phase", PhaseSingular, "k", k, "magnitude", mag, "threshold", threshold)
			return nil, fmt.Errorf("%s: %s: pivot %d: |%g| <= %g: %w", opSolve, PhaseSingular, k, mag, threshold, ErrSingularMatrix)
		}

		if p != k {
			log.Debugw("pivot swap", "phase", PhaseForward, "k", k, "row", p, "magnitude", mag)
			for j = k; j < n; j++ { // columns < k are already eliminated
				w[j*n+k], w[j*n+p] = w[j*n+p], w[j*n+k]
			}
			x[k], x[p] = x[p], x[k]
		}

		pivot := w[col+k]
		for i = k + 1; i < n; i++ {
			mult := f.Div(w[col+i], pivot)
			w[col+i] = f.Zero()
			for j = k + 1; j < n; j++ {
				w[j*n+i] = f.Sub(w[j*n+i], f.Mul(mult, w[j*n+k]))
			}
			x[i] = f.Sub(x[i], f.Mul(mult, x[k]))
		}
	}

	log.Debugw("upper-triangular form reached", "phase", PhaseBackSubstitution, "n", n)
	for i = n - 1; i >= 0; i-- {
		sum := x[i]
		for j = i + 1; j < n; j++ {
			sum = f.Sub(sum, f.Mul(w[j*n+i], x[j]))
		}
		x[i] = f.Div(sum, w[i*n+i])
	}
	log.Debugw("system solved", "phase", PhaseSolved, "n", n)

	return matrix.NewVector(x)
}

// threshold returns the pivot magnitude at or below which Solve fails.
func (g *GaussElimination[T]) threshold() float64 {
	if !g.opts.relative {
		return g.opts.tol
	}

	scale := 0.0
	for v := range g.a.CellIter().All() {
		scale = max(scale, g.field.Magnitude(v))
	}

	return g.opts.tol * scale
}
