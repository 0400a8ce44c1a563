package swizgen

// Instances of TupleConsumer may be supplied to Product.ForEach, which
// calls Consume once for each tuple of the enumeration, in order.
type TupleConsumer interface {
	// Consume is called with the tuple's 0-based position within the
	// lexicographic enumeration, and the tuple itself. The tuple's
	// storage is reused between calls: copy it (Tuple.Copy) if you
	// need it after Consume returns.
	Consume(n int, tuple Tuple)
}

// TupleConsumerFunc adapts an ordinary function to the TupleConsumer
// interface.
type TupleConsumerFunc func(n int, tuple Tuple)

func (f TupleConsumerFunc) Consume(n int, tuple Tuple) {
	f(n, tuple)
}

// A Product enumerates the Cartesian power alphabet^rank: every
// ordered tuple of rank symbols drawn from the alphabet, repeats
// included. Enumeration is lexicographic in the alphabet's own order,
// with the rightmost position varying fastest, exactly like an
// odometer.
type Product struct {
	alphabet Alphabet
	rank     int
}

type node struct {
	n         int
	depth     int
	value     Symbol
	generator *positions
}

// Construct a Product from an alphabet and a rank. The alphabet must
// be non-empty and the rank non-negative; both are fixed for the life
// of the Product.
func NewProduct(alphabet Alphabet, rank int) *Product {
	return &Product{
		alphabet: alphabet,
		rank:     rank,
	}
}

// Len returns the number of tuples in the enumeration,
// len(alphabet)^rank.
func (p *Product) Len() int {
	l := 1
	for idx := 0; idx < p.rank; idx += 1 {
		l *= len(p.alphabet)
	}
	return l
}

// Iterate through every tuple in the current go-routine, in
// lexicographic order. The function f.Consume is invoked once for
// every tuple. It is supplied with the tuple's position in the
// enumeration, and the tuple itself. These arguments should be
// considered read-only, and the tuple is only valid until Consume
// returns.
func (p *Product) ForEach(f TupleConsumer) {
	tuple := make(Tuple, 0, p.rank+1)

	worklist := []*node{{
		n:         0,
		depth:     0,
		generator: newPositions(p.alphabet, p.rank),
	}}
	l := len(worklist)

	for l != 0 {
		l -= 1
		cur := worklist[l]
		worklist = worklist[:l]

		tuple = append(tuple[:cur.depth], cur.value)

		options := cur.generator.generate()
		optionCount := len(options)

		if optionCount == 0 {
			f.Consume(cur.n, tuple[1:])

		} else {
			// Children are pushed in reverse so that popping off the
			// end of the worklist walks the alphabet in order.
			for idx := optionCount - 1; idx >= 0; idx -= 1 {
				var gen *positions
				if idx == 0 {
					gen = cur.generator
				} else {
					gen = cur.generator.clone()
				}
				child := &node{
					n:         cur.n*optionCount + idx,
					depth:     cur.depth + 1,
					value:     options[idx],
					generator: gen,
				}
				worklist = append(worklist, child)
			}
			l += optionCount
		}
	}
}

// Every tuple's position within the enumeration is supplied to the
// consumer passed to ForEach. If you need to generate a specific
// tuple, that position can be provided to Tuple, which will construct
// the exact same tuple without running the enumeration. The result is
// freshly allocated.
func (p *Product) Tuple(n int) Tuple {
	tuple := make(Tuple, p.rank)
	base := len(p.alphabet)
	for idx := p.rank - 1; idx >= 0; idx -= 1 {
		tuple[idx] = p.alphabet[n%base]
		n /= base
	}
	return tuple
}
