package hungarian

import "math"

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// validateCosts checks shape and numeric policy of the raw cost matrix
// and returns its (rows, cols) on success.
//
// Contract:
//   - at least one row and one column (ErrEmptyMatrix),
//   - every row the same length (ErrRaggedMatrix),
//   - every entry finite (ErrNonFiniteCost); negative costs are legal.
//
// Complexity: O(m×n).
func validateCosts(costs [][]float64) (int, int, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	rows, cols := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != cols {
			return 0, 0, ErrRaggedMatrix
		}
		for _, v := range row {
			if isNonFinite(v) {
				return 0, 0, ErrNonFiniteCost
			}
		}
	}

	return rows, cols, nil
}

// padSquare copies costs into a fresh size×size working matrix, where
// size = max(rows, cols); added dummy cells cost 0 so they never distort
// the optimum over the real cells. The input is never aliased: Solve
// owns the returned matrix exclusively and mutates it in place.
//
// Complexity: O(size²) time and memory.
func padSquare(costs [][]float64, rows, cols int) [][]float64 {
	size := rows
	if cols > size {
		size = cols
	}
	work := make([][]float64, size)
	for i := 0; i < size; i++ {
		work[i] = make([]float64, size)
		if i < rows {
			copy(work[i], costs[i])
		}
	}

	return work
}
