package hungarian

// reduceRowsCols subtracts each row's minimum from that row, then each
// column's minimum of the result from that column, mutating work in
// place. The reduced matrix is non-negative, carries at least one zero
// in every row and every column, and shares the optimal assignment with
// the input (subtracting a constant from a whole row or column shifts
// every feasible assignment's cost by the same amount).
//
// Runs once before the covering loop; the loop itself only performs the
// additive delta adjustment (see adjustUncovered).
//
// Complexity: O(size²) time, O(1) extra memory.
func reduceRowsCols(work [][]float64) {
	size := len(work)

	var (
		i, j int     // loop indices
		m    float64 // running minimum
	)

	// Row reduction.
	for i = 0; i < size; i++ {
		m = work[i][0]
		for j = 1; j < size; j++ {
			if work[i][j] < m {
				m = work[i][j]
			}
		}
		for j = 0; j < size; j++ {
			work[i][j] -= m
		}
	}

	// Column reduction.
	for j = 0; j < size; j++ {
		m = work[0][j]
		for i = 1; i < size; i++ {
			if work[i][j] < m {
				m = work[i][j]
			}
		}
		for i = 0; i < size; i++ {
			work[i][j] -= m
		}
	}
}
