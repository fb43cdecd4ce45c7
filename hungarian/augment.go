package hungarian

// alternatingChain builds the augmenting chain rooted at a freshly
// primed cell (r, c) whose row holds no star. Starting from the prime,
// it repeatedly appends the star in the current cell's column and then
// the prime in that star's row, until a column with no star ends the
// chain:
//
//	prime(r,c) → star(r',c) → prime(r',c') → star(r'',c') → …
//
// The prime lookup cannot miss: a row gains a star only through an
// earlier prime, and primes persist until the chain is flipped. The
// returned chain therefore has odd length and one more prime than
// stars, so flipping it grows the matching by exactly one.
//
// Complexity: O(size) lookups of O(size) each - O(size²) worst case.
func (s *coverState) alternatingChain(r, c int) []Pair {
	chain := []Pair{{Row: r, Col: c}}
	for {
		starRow := s.starInCol(chain[len(chain)-1].Col)
		if starRow < 0 {
			return chain
		}
		chain = append(chain, Pair{Row: starRow, Col: chain[len(chain)-1].Col})
		chain = append(chain, Pair{Row: starRow, Col: s.primeInRow(starRow)})
	}
}
