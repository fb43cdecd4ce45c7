package hungarian_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/assign/hungarian"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

// TestSolve_InputErrors verifies that Solve rejects empty, ragged, and
// non-finite matrices and bad option values with the right sentinels.
func TestSolve_InputErrors(t *testing.T) {
	cases := []struct {
		name  string
		costs [][]float64
		opts  hungarian.Options
		err   error
	}{
		{"NoRows", [][]float64{}, hungarian.DefaultOptions(), hungarian.ErrEmptyMatrix},
		{"NoCols", [][]float64{{}}, hungarian.DefaultOptions(), hungarian.ErrEmptyMatrix},
		{"Ragged", [][]float64{{1, 2}, {3}}, hungarian.DefaultOptions(), hungarian.ErrRaggedMatrix},
		{"NaN", [][]float64{{1, math.NaN()}, {3, 4}}, hungarian.DefaultOptions(), hungarian.ErrNonFiniteCost},
		{"PosInf", [][]float64{{1, math.Inf(1)}, {3, 4}}, hungarian.DefaultOptions(), hungarian.ErrNonFiniteCost},
		{"NegativeEps", [][]float64{{1}}, hungarian.Options{ZeroEps: -1}, hungarian.ErrBadOptions},
		{"NegativeTol", [][]float64{{1}}, hungarian.Options{CostTol: -1}, hungarian.ErrBadOptions},
		{"NegativeRounds", [][]float64{{1}}, hungarian.Options{MaxRounds: -1}, hungarian.ErrBadOptions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hungarian.Solve(tc.costs, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("Solve error = %v; want %v", err, tc.err)
			}
			// Every input failure must also match the umbrella sentinel.
			if !errors.Is(err, hungarian.ErrInvalidInput) {
				t.Errorf("Solve error = %v; want ErrInvalidInput match", err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Pinned scenarios
//----------------------------------------------------------------------------//

// TestSolve_Square3 pins the 3×3 reference scenario: optimal pairs
// (0,1),(1,0),(2,2) with total cost 5.
func TestSolve_Square3(t *testing.T) {
	costs := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	res, err := hungarian.Solve(costs, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []hungarian.Pair{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 2}}, res.Pairs)
	require.Equal(t, 5.0, res.Cost)
}

// TestSolve_Rect2x3 pins the rectangular scenario: the dummy row added
// by padding must be trimmed, leaving (0,1),(1,2) with cost 5.
func TestSolve_Rect2x3(t *testing.T) {
	costs := [][]float64{
		{10, 2, 9},
		{7, 5, 3},
	}
	res, err := hungarian.Solve(costs, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []hungarian.Pair{{Row: 0, Col: 1}, {Row: 1, Col: 2}}, res.Pairs)
	require.Equal(t, 5.0, res.Cost)
}

// TestSolve_Tall3x2 covers the transposed rectangle: one row stays
// unassigned and RowToCol reports it as -1.
func TestSolve_Tall3x2(t *testing.T) {
	costs := [][]float64{
		{10, 7},
		{2, 5},
		{9, 3},
	}
	res, err := hungarian.Solve(costs, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Pairs, 2)
	require.Equal(t, 5.0, res.Cost) // rows 1 and 2: 2 + 3

	rowToCol := res.RowToCol(3)
	require.Equal(t, []int{-1, 0, 1}, rowToCol)
}

// TestSolve_SingleCell checks the degenerate 1×1 matrix.
func TestSolve_SingleCell(t *testing.T) {
	res, err := hungarian.Solve([][]float64{{7}}, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []hungarian.Pair{{Row: 0, Col: 0}}, res.Pairs)
	require.Equal(t, 7.0, res.Cost)
}

// TestSolve_SingleRowStrip checks a 1×n strip: exactly the cheapest
// column is selected.
func TestSolve_SingleRowStrip(t *testing.T) {
	res, err := hungarian.Solve([][]float64{{9, 4, 6, 8}}, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []hungarian.Pair{{Row: 0, Col: 1}}, res.Pairs)
	require.Equal(t, 4.0, res.Cost)
}

// TestSolve_NegativeCosts verifies the solver does not require
// non-negative input (only the reduced matrix must be non-negative).
func TestSolve_NegativeCosts(t *testing.T) {
	costs := [][]float64{
		{-4, -1},
		{-2, -3},
	}
	res, err := hungarian.Solve(costs, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, -7.0, res.Cost) // (-4) + (-3)
	require.Equal(t, []hungarian.Pair{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, res.Pairs)
}

//----------------------------------------------------------------------------//
// Structural properties
//----------------------------------------------------------------------------//

// requireBijection asserts that pairs form a partial bijection within
// the given bounds: no row or column repeats.
func requireBijection(t *testing.T, pairs []hungarian.Pair, rows, cols int) {
	t.Helper()
	seenRow := make(map[int]bool, len(pairs))
	seenCol := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		require.GreaterOrEqual(t, p.Row, 0)
		require.Less(t, p.Row, rows)
		require.GreaterOrEqual(t, p.Col, 0)
		require.Less(t, p.Col, cols)
		require.False(t, seenRow[p.Row], "row %d repeated", p.Row)
		require.False(t, seenCol[p.Col], "col %d repeated", p.Col)
		seenRow[p.Row] = true
		seenCol[p.Col] = true
	}
}

// bruteForceOptimum enumerates every row→column injection and returns
// the minimal total cost. Exponential; test sizes stay tiny.
func bruteForceOptimum(costs [][]float64) float64 {
	rows, cols := len(costs), len(costs[0])
	usedCol := make([]bool, cols)
	k := rows
	if cols < k {
		k = cols
	}

	var rec func(row, picked int, acc float64) float64
	rec = func(row, picked int, acc float64) float64 {
		if picked == k {
			return acc
		}
		if row == rows {
			return math.Inf(1)
		}
		best := math.Inf(1)
		// Skip this row entirely (legal only while enough rows remain).
		if rows-row-1 >= k-picked {
			best = rec(row+1, picked, acc)
		}
		for c := 0; c < cols; c++ {
			if usedCol[c] {
				continue
			}
			usedCol[c] = true
			if v := rec(row+1, picked+1, acc+costs[row][c]); v < best {
				best = v
			}
			usedCol[c] = false
		}

		return best
	}

	return rec(0, 0, 0)
}

// TestSolve_RandomMatchesBruteForce cross-checks Solve against a
// brute-force optimum on seeded random matrices up to 6×6, including
// rectangular shapes and negative entries.
func TestSolve_RandomMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // fixed seed: reproducible failures
	for trial := 0; trial < 60; trial++ {
		rows := 1 + rng.Intn(6)
		cols := 1 + rng.Intn(6)
		costs := make([][]float64, rows)
		for i := range costs {
			costs[i] = make([]float64, cols)
			for j := range costs[i] {
				costs[i][j] = math.Round(rng.Float64()*40-20) / 2 // half-integers in [-10,10]
			}
		}

		res, err := hungarian.Solve(costs, hungarian.DefaultOptions())
		require.NoError(t, err, "trial %d (%dx%d)", trial, rows, cols)
		requireBijection(t, res.Pairs, rows, cols)
		require.Len(t, res.Pairs, minOf(rows, cols), "trial %d", trial)

		// Cost must round-trip against direct summation.
		direct, err := hungarian.AssignmentCost(costs, res.Pairs)
		require.NoError(t, err)
		require.InDelta(t, res.Cost, direct, 1e-9, "trial %d", trial)

		// And match the exhaustive optimum.
		require.InDelta(t, bruteForceOptimum(costs), res.Cost, 1e-9, "trial %d (%dx%d)", trial, rows, cols)
	}
}

// TestSolve_Deterministic runs the solver twice on independent copies
// of a tie-heavy matrix and demands identical Pairs, not just cost.
func TestSolve_Deterministic(t *testing.T) {
	costs := [][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}
	clone := make([][]float64, len(costs))
	for i := range costs {
		clone[i] = append([]float64(nil), costs[i]...)
	}

	first, err := hungarian.Solve(costs, hungarian.DefaultOptions())
	require.NoError(t, err)
	second, err := hungarian.Solve(clone, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, first.Pairs, second.Pairs)
	require.Equal(t, first.Cost, second.Cost)
}

// TestSolve_InputNotMutated guards the public contract that Solve
// operates on an internal copy.
func TestSolve_InputNotMutated(t *testing.T) {
	costs := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
	}
	want := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
	}
	_, err := hungarian.Solve(costs, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, want, costs)
}

// TestSolve_PaddingInvariance verifies that solving a rectangular
// matrix equals solving its explicitly padded square form and dropping
// dummy pairs.
func TestSolve_PaddingInvariance(t *testing.T) {
	rect := [][]float64{
		{10, 2, 9},
		{7, 5, 3},
	}
	padded := [][]float64{
		{10, 2, 9},
		{7, 5, 3},
		{0, 0, 0},
	}

	rectRes, err := hungarian.Solve(rect, hungarian.DefaultOptions())
	require.NoError(t, err)
	padRes, err := hungarian.Solve(padded, hungarian.DefaultOptions())
	require.NoError(t, err)

	trimmed := make([]hungarian.Pair, 0, len(padRes.Pairs))
	trimmedCost := 0.0
	for _, p := range padRes.Pairs {
		if p.Row < len(rect) && p.Col < len(rect[0]) {
			trimmed = append(trimmed, p)
			trimmedCost += rect[p.Row][p.Col]
		}
	}
	require.Equal(t, rectRes.Pairs, trimmed)
	require.Equal(t, rectRes.Cost, trimmedCost)
}

// TestSolve_RoundBudgetExceeded forces ErrNumericInstability via a
// round budget far below what the matrix needs.
func TestSolve_RoundBudgetExceeded(t *testing.T) {
	opts := hungarian.DefaultOptions()
	opts.MaxRounds = 1
	costs := [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{3, 6, 9, 12},
		{4, 8, 12, 16},
	}
	_, err := hungarian.Solve(costs, opts)
	require.ErrorIs(t, err, hungarian.ErrNumericInstability)
}

func minOf(a, b int) int {
	if a < b {
		return a
	}

	return b
}
