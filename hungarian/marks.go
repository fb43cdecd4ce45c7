package hungarian

// mark is the per-cell annotation driving the covering loop.
type mark uint8

const (
	// markNone - cell carries no annotation.
	markNone mark = iota
	// markStarred - cell belongs to the current partial matching.
	// Invariant: at most one star per row and per column.
	markStarred
	// markPrimed - cell is a candidate for augmentation; primes are
	// transient and cleared at the end of every augmenting step.
	markPrimed
)

// coverState owns the mutable solver state of exactly one Solve call:
// the reduced working matrix, per-cell marks, and row/column coverage.
// It is created, mutated, and discarded inside that call - no state
// survives across invocations.
//
// Invariant kept after every augmenting step: the set of covered
// columns equals the set of columns containing a star.
type coverState struct {
	size     int
	work     [][]float64
	marks    [][]mark
	rowCover []bool
	colCover []bool
	zeroEps  float64
}

// newCoverState wraps an already-padded working matrix. The matrix is
// adopted, not copied: the caller hands over exclusive ownership.
func newCoverState(work [][]float64, zeroEps float64) *coverState {
	size := len(work)
	marks := make([][]mark, size)
	for i := range marks {
		marks[i] = make([]mark, size)
	}

	return &coverState{
		size:     size,
		work:     work,
		marks:    marks,
		rowCover: make([]bool, size),
		colCover: make([]bool, size),
		zeroEps:  zeroEps,
	}
}

// isZero reports whether a reduced cell value counts as zero under the
// configured tolerance. Exact == comparison is unreliable after
// floating-point subtraction, so every zero test in the package funnels
// through here.
func (s *coverState) isZero(v float64) bool {
	if v < 0 {
		v = -v
	}

	return v <= s.zeroEps
}

// starInRow returns the column of the star in row r, or -1.
// Complexity: O(size).
func (s *coverState) starInRow(r int) int {
	for j := 0; j < s.size; j++ {
		if s.marks[r][j] == markStarred {
			return j
		}
	}

	return -1
}

// starInCol returns the row of the star in column c, or -1.
// Complexity: O(size).
func (s *coverState) starInCol(c int) int {
	for i := 0; i < s.size; i++ {
		if s.marks[i][c] == markStarred {
			return i
		}
	}

	return -1
}

// primeInRow returns the column of the prime in row r, or -1.
// Complexity: O(size).
func (s *coverState) primeInRow(r int) int {
	for j := 0; j < s.size; j++ {
		if s.marks[r][j] == markPrimed {
			return j
		}
	}

	return -1
}

// findUncoveredZero scans row-major for a zero cell whose row and
// column are both uncovered. Row-major order is the package's fixed
// tie-break rule; changing it would change which of several optimal
// assignments is returned. Complexity: O(size²).
func (s *coverState) findUncoveredZero() (int, int, bool) {
	for i := 0; i < s.size; i++ {
		if s.rowCover[i] {
			continue
		}
		for j := 0; j < s.size; j++ {
			if s.colCover[j] {
				continue
			}
			if s.isZero(s.work[i][j]) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// starInitialZeros performs the greedy starting pass: scan row-major
// and star every zero whose row and column hold no star yet. The pass
// need not find a maximum matching - the covering loop augments it to
// completion. Complexity: O(size²).
func (s *coverState) starInitialZeros() {
	colHasStar := make([]bool, s.size)
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			if colHasStar[j] || !s.isZero(s.work[i][j]) {
				continue
			}
			s.marks[i][j] = markStarred
			colHasStar[j] = true

			break // one star per row
		}
	}
}

// coverStarredColumns resets all coverage, then covers exactly the
// columns containing a star, restoring the coverage invariant. Returns
// the number of covered columns - the loop's termination measure.
// Complexity: O(size²).
func (s *coverState) coverStarredColumns() int {
	covered := 0
	for i := 0; i < s.size; i++ {
		s.rowCover[i] = false
	}
	for j := 0; j < s.size; j++ {
		s.colCover[j] = s.starInCol(j) >= 0
		if s.colCover[j] {
			covered++
		}
	}

	return covered
}

// adjustUncovered computes delta = min over cells at (uncovered row,
// uncovered column), subtracts it from every cell in an uncovered row
// and adds it to every cell in a covered column. Cells at (uncovered
// row, uncovered column) drop by delta, cells at (covered row, covered
// column) rise by delta, and the two mixed quadrants are untouched -
// so at least one new uncovered zero appears while the optimal
// structure is preserved. Complexity: O(size²).
func (s *coverState) adjustUncovered() {
	var (
		i, j  int
		delta float64
		first = true
	)
	for i = 0; i < s.size; i++ {
		if s.rowCover[i] {
			continue
		}
		for j = 0; j < s.size; j++ {
			if s.colCover[j] {
				continue
			}
			if first || s.work[i][j] < delta {
				delta = s.work[i][j]
				first = false
			}
		}
	}
	if first {
		// Every row or every column is covered; nothing to shift.
		return
	}
	for i = 0; i < s.size; i++ {
		for j = 0; j < s.size; j++ {
			if !s.rowCover[i] {
				s.work[i][j] -= delta
			}
			if s.colCover[j] {
				s.work[i][j] += delta
			}
		}
	}
}

// flipChain turns every starred cell of the chain into an unmarked one
// and every primed cell into a star, growing the matching by one. The
// chain alternates prime, star, prime, ... as built by
// alternatingChain. Complexity: O(len(chain)).
func (s *coverState) flipChain(chain []Pair) {
	for _, p := range chain {
		switch s.marks[p.Row][p.Col] {
		case markStarred:
			s.marks[p.Row][p.Col] = markNone
		case markPrimed:
			s.marks[p.Row][p.Col] = markStarred
		}
	}
}

// clearPrimes erases every transient prime mark. Complexity: O(size²).
func (s *coverState) clearPrimes() {
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			if s.marks[i][j] == markPrimed {
				s.marks[i][j] = markNone
			}
		}
	}
}

// starredPairs extracts the current matching in ascending row order.
// Complexity: O(size²).
func (s *coverState) starredPairs() []Pair {
	pairs := make([]Pair, 0, s.size)
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			if s.marks[i][j] == markStarred {
				pairs = append(pairs, Pair{Row: i, Col: j})
				break
			}
		}
	}

	return pairs
}
