package swizgen

// Filters are used to control which tuples of the enumeration are
// suppressed rather than emitted. If you implement your own, make sure
// it is a pure function: the same tuple must always get the same
// verdict, and the tuple argument must not be retained or mutated.
type Filter func(tuple Tuple) bool

// SuppressNone suppresses nothing: every tuple of the enumeration is
// emitted.
func SuppressNone(tuple Tuple) bool {
	return false
}

// CoveredBy returns a Filter which suppresses exactly the tuples whose
// symbols are all drawn from sub. Those are the swizzles already
// instantiated for the lower-rank vector type, so emitting them again
// would redefine accessors that exist.
//
// The covered set, sub^rank, is enumerated once up front and kept as a
// hash set keyed by tuple code; the returned Filter is a pure
// membership test. A tuple containing even one symbol from outside sub
// is never suppressed.
func CoveredBy(sub Alphabet, rank int) Filter {
	product := NewProduct(sub, rank)
	covered := make(map[string]struct{}, product.Len())
	product.ForEach(TupleConsumerFunc(func(n int, tuple Tuple) {
		covered[tuple.Code()] = struct{}{}
	}))
	return func(tuple Tuple) bool {
		_, found := covered[tuple.Code()]
		return found
	}
}
