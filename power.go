package swizgen

// positions doles out the candidate symbols for each successive tuple
// position. Unlike a plain permutation there is no removal on choice:
// every position offers the whole alphabet, so symbols may repeat
// within a tuple. The only state is how many positions remain.
type positions struct {
	alphabet Alphabet
	remains  int
}

func newPositions(alphabet Alphabet, rank int) *positions {
	return &positions{
		alphabet: alphabet,
		remains:  rank,
	}
}

func (ps *positions) clone() *positions {
	return &positions{
		alphabet: ps.alphabet,
		remains:  ps.remains,
	}
}

// generate returns the candidates for the next position, or nil once
// every position has been filled, which terminates the enumeration.
func (ps *positions) generate() []Symbol {
	if ps.remains == 0 {
		return nil
	}
	ps.remains -= 1
	return ps.alphabet
}
