// Package hungarian defines the public types, options, and sentinel
// errors for the assignment solver.
package hungarian

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella sentinel for every caller-input error
// in this package. Specific sentinels below wrap it, so callers may
// match broadly (errors.Is(err, ErrInvalidInput)) or precisely.
var ErrInvalidInput = errors.New("hungarian: invalid input")

var (
	// ErrEmptyMatrix indicates the cost matrix has no rows or no columns.
	ErrEmptyMatrix = fmt.Errorf("%w: cost matrix must have at least one row and one column", ErrInvalidInput)
	// ErrRaggedMatrix indicates rows of differing lengths.
	ErrRaggedMatrix = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)
	// ErrNonFiniteCost indicates a NaN or ±Inf entry in the cost matrix.
	ErrNonFiniteCost = fmt.Errorf("%w: cost entries must be finite", ErrInvalidInput)
	// ErrPairOutOfRange indicates a candidate pair indexes outside the matrix.
	ErrPairOutOfRange = fmt.Errorf("%w: candidate pair outside matrix bounds", ErrInvalidInput)
	// ErrBadOptions indicates negative or non-finite Options fields.
	ErrBadOptions = fmt.Errorf("%w: options fields must be finite and non-negative", ErrInvalidInput)
)

// ErrNumericInstability is returned when the covering loop exhausts its
// round budget without covering every column. With a sane ZeroEps this
// cannot happen; it guards against zero-detection failures degenerating
// into an endless adjust/search cycle.
var ErrNumericInstability = errors.New("hungarian: covering loop exceeded its round budget")

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultZeroEps is the tolerance for zero detection in the reduced
	// matrix. Row/column subtraction leaves residues near 1e-16 on
	// typical inputs; 1e-9 absorbs them without masking genuine costs.
	DefaultZeroEps = 1e-9

	// DefaultCostTol is the cost-comparison tolerance used by VerifyOptimal.
	DefaultCostTol = 1e-6
)

// Pair is one (row, column) selection of the assignment.
type Pair struct {
	Row, Col int
}

// Result holds the outcome of Solve.
type Result struct {
	// Pairs is the optimal assignment in ascending row order, trimmed to
	// the original matrix bounds: len(Pairs) == min(rows, cols).
	Pairs []Pair

	// Cost is the sum of ORIGINAL matrix entries at Pairs.
	Cost float64
}

// RowToCol returns a rows-sized view of the assignment: out[r] is the
// column assigned to row r, or -1 when row r is unassigned (possible
// only when the matrix has more rows than columns).
// Complexity: O(rows + len(Pairs)).
func (r Result) RowToCol(rows int) []int {
	out := make([]int, rows)
	for i := range out {
		out[i] = -1
	}
	for _, p := range r.Pairs {
		if p.Row >= 0 && p.Row < rows {
			out[p.Row] = p.Col
		}
	}

	return out
}

// Options contains the tunable numeric parameters shared by Solve and
// VerifyOptimal.
//   - ZeroEps: treat reduced cells with |v| ≤ ZeroEps as zero (default 1e-9).
//   - CostTol: VerifyOptimal accepts |candidate − optimal| ≤ CostTol (default 1e-6).
//   - MaxRounds: cap on adjust/augment rounds of the covering loop;
//     0 derives the theoretical maximum size²+size+1.
type Options struct {
	ZeroEps   float64
	CostTol   float64
	MaxRounds int
}

// DefaultOptions returns Options with the documented defaults:
// ZeroEps=DefaultZeroEps, CostTol=DefaultCostTol, MaxRounds=0 (auto).
func DefaultOptions() Options {
	return Options{
		ZeroEps: DefaultZeroEps,
		CostTol: DefaultCostTol,
	}
}

// validate rejects option values that would invert acceptance logic or
// break termination accounting. Complexity: O(1).
func (o Options) validate() error {
	if isNonFinite(o.ZeroEps) || o.ZeroEps < 0 {
		return ErrBadOptions
	}
	if isNonFinite(o.CostTol) || o.CostTol < 0 {
		return ErrBadOptions
	}
	if o.MaxRounds < 0 {
		return ErrBadOptions
	}

	return nil
}

// roundBudget resolves MaxRounds against the working-matrix order:
// at most size augmentations, and at most size adjustments between two
// consecutive augmentations, hence size²+size+1 covers every run.
func (o Options) roundBudget(size int) int {
	if o.MaxRounds > 0 {
		return o.MaxRounds
	}

	return size*size + size + 1
}
