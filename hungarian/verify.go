package hungarian

// AssignmentCost sums the cost-matrix entries at the given pairs.
// Pairs are taken as-is: duplicates are summed twice, and no bijection
// structure is enforced. Returns ErrPairOutOfRange when a pair indexes
// outside the matrix, alongside the matrix shape errors from
// validateCosts.
//
// Complexity: O(m×n) validation + O(len(pairs)) summation.
func AssignmentCost(costs [][]float64, pairs []Pair) (float64, error) {
	rows, cols, err := validateCosts(costs)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, p := range pairs {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return 0, ErrPairOutOfRange
		}
		total += costs[p.Row][p.Col]
	}

	return total, nil
}

// VerifyOptimal checks primal-dual optimality of a candidate assignment:
// it re-derives the true optimum with Solve on the same matrix and
// accepts iff |candidate cost − optimal cost| ≤ opts.CostTol.
//
// This is a pure cost re-derivation, NOT a structural check: a
// candidate with duplicate rows or columns is not rejected. Callers
// that need a valid bijection must validate that separately.
//
// Errors: ErrPairOutOfRange for out-of-bounds candidate pairs, plus
// every error Solve can return.
//
// Complexity: one Solve, O(size³).
func VerifyOptimal(costs [][]float64, candidate []Pair, opts Options) (bool, error) {
	if err := opts.validate(); err != nil {
		return false, err
	}
	candidateCost, err := AssignmentCost(costs, candidate)
	if err != nil {
		return false, err
	}
	res, err := Solve(costs, opts)
	if err != nil {
		return false, err
	}
	diff := candidateCost - res.Cost
	if diff < 0 {
		diff = -diff
	}

	return diff <= opts.CostTol, nil
}
