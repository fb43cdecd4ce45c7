// Package hungarian - Solve entry point and the covering-loop state
// machine.
//
// Design principles:
//   - Deterministic: row-major scans everywhere, no randomness.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where
//     a sentinel suffices.
//   - One owner: all mutable state lives in a coverState created and
//     discarded inside a single Solve call.
package hungarian

// solveState enumerates the phases of the covering loop.
type solveState int

const (
	// stateSearching - scan uncovered rows/columns for a zero.
	stateSearching solveState = iota
	// statePrimedFound - an uncovered zero has just been primed.
	statePrimedFound
	// stateAdjusting - no uncovered zero exists; shift matrix values.
	stateAdjusting
	// stateAugmenting - flip a star-free alternating chain.
	stateAugmenting
	// stateDone - every column is covered; the matching is perfect.
	stateDone
)

// Solve computes a minimum-cost assignment of rows to columns for an
// m×n cost matrix. Rectangular matrices are padded internally with
// zero-cost dummy rows/columns; dummy pairs never reach the result.
//
// Contracts:
//   - costs must be non-empty and rectangular with finite entries;
//     negative costs are allowed (only the internal reduced matrix must
//     be non-negative, which reduction guarantees).
//   - costs is read, never written: Solve copies it into a private
//     working matrix.
//   - len(Result.Pairs) == min(m, n); Result.Cost is summed from the
//     original matrix, and ties break row-major, so identical inputs
//     yield identical Pairs.
//
// Errors: ErrEmptyMatrix, ErrRaggedMatrix, ErrNonFiniteCost,
// ErrBadOptions, ErrNumericInstability.
//
// Complexity: O(size³) time, O(size²) memory, size = max(m, n).
func Solve(costs [][]float64, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Stage 1 - shape/numeric validation and square padding.
	rows, cols, err := validateCosts(costs)
	if err != nil {
		return Result{}, err
	}
	work := padSquare(costs, rows, cols)

	// Stage 2 - one-shot row/column reduction.
	reduceRowsCols(work)

	// Stage 3 - greedy starring, then the covering loop.
	st := newCoverState(work, opts.ZeroEps)
	st.starInitialZeros()
	if err = runCoveringLoop(st, opts.roundBudget(st.size)); err != nil {
		return Result{}, err
	}

	// Stage 4 - extract stars, trim dummy pairs, cost against the
	// ORIGINAL matrix (reduction shifted values, not structure).
	pairs := make([]Pair, 0, minInt(rows, cols))
	total := 0.0
	for _, p := range st.starredPairs() {
		if p.Row >= rows || p.Col >= cols {
			continue // dummy row or column
		}
		pairs = append(pairs, p)
		total += costs[p.Row][p.Col]
	}

	return Result{Pairs: pairs, Cost: total}, nil
}

// runCoveringLoop drives the star/prime state machine until every
// column is covered. Rounds (adjust or augment transitions) are capped
// by budget: at most size augmentations can occur, with at most size
// adjustments between two of them, so a healthy run never comes close.
// Exceeding the budget means zero detection has broken down and the
// loop would otherwise spin forever.
func runCoveringLoop(st *coverState, budget int) error {
	if st.coverStarredColumns() == st.size {
		return nil
	}

	var (
		state   = stateSearching
		primedR int
		primedC int
		rounds  int
		zr, zc  int
		found   bool
	)
	for state != stateDone {
		switch state {
		case stateSearching:
			zr, zc, found = st.findUncoveredZero()
			if !found {
				state = stateAdjusting

				continue
			}
			st.marks[zr][zc] = markPrimed
			primedR, primedC = zr, zc
			state = statePrimedFound

		case stateAdjusting:
			if rounds++; rounds > budget {
				return ErrNumericInstability
			}
			st.adjustUncovered()
			state = stateSearching

		case statePrimedFound:
			if starCol := st.starInRow(primedR); starCol >= 0 {
				// The primed zero shares its row with a star: mask the
				// row, expose the star's column, and keep searching.
				st.rowCover[primedR] = true
				st.colCover[starCol] = false
				state = stateSearching

				continue
			}
			state = stateAugmenting

		case stateAugmenting:
			if rounds++; rounds > budget {
				return ErrNumericInstability
			}
			st.flipChain(st.alternatingChain(primedR, primedC))
			st.clearPrimes()
			if st.coverStarredColumns() == st.size {
				state = stateDone

				continue
			}
			state = stateSearching
		}
	}

	return nil
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
