// Package hungarian implements the Hungarian (Kuhn–Munkres) method for
// the linear bipartite assignment problem, plus a primal–dual optimality
// check for caller-supplied assignments.
//
// What:
//
//   - Solve finds a minimum-cost one-to-one mapping of rows to columns
//     for an m×n cost matrix (each row/column used at most once).
//   - Rectangular inputs are padded to a square working matrix with
//     zero-cost dummy rows/columns; dummy pairs are trimmed from the
//     result, so len(Result.Pairs) == min(m, n).
//   - VerifyOptimal re-solves the matrix and accepts a candidate iff its
//     cost matches the true optimum within Options.CostTol.
//
// How:
//
//  1. Pad the matrix to size×size (size = max(m, n)), fill value 0.
//  2. Subtract each row's minimum, then each column's minimum — the
//     reduced matrix is non-negative and shares the optimal assignment.
//  3. Greedily star zeros with no star in their row/column, then cover
//     every column holding a star.
//  4. Until all columns are covered: prime an uncovered zero; if its row
//     holds a star, swap the coverage (cover the row, uncover the star's
//     column); otherwise flip the alternating star/prime chain rooted at
//     the prime, growing the matching by one. When no uncovered zero
//     exists, shift the matrix by the minimum uncovered value to expose
//     a fresh zero.
//  5. Read the starred cells back as the assignment and cost it against
//     the ORIGINAL matrix (reduction changes values, not structure).
//
// Determinism:
//
//   - Every scan is row-major, so ties break identically on every run:
//     two calls on the same matrix return the same Pairs, not merely the
//     same Cost.
//
// Complexity:
//
//   - Solve:          O(size³) time, O(size²) memory, size = max(m, n).
//   - VerifyOptimal:  one Solve plus an O(k) candidate summation.
//
// Options:
//
//   - Options.ZeroEps:   tolerance for "is this reduced cell zero"
//     (floating-point subtraction rarely yields exact zeros).
//   - Options.CostTol:   cost-comparison tolerance for VerifyOptimal.
//   - Options.MaxRounds: cap on adjust/augment rounds; 0 derives the
//     theoretical bound size²+size+1.
//
// Errors:
//
//   - ErrEmptyMatrix:        no rows or no columns.
//   - ErrRaggedMatrix:       rows of differing lengths.
//   - ErrNonFiniteCost:      NaN or ±Inf cost entry.
//   - ErrPairOutOfRange:     candidate pair outside matrix bounds.
//   - ErrBadOptions:         negative or non-finite Options fields.
//   - ErrNumericInstability: covering loop exceeded its round budget.
//
// All but the last wrap ErrInvalidInput; match with errors.Is.
package hungarian
