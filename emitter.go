package swizgen

import (
	"fmt"
	"io"
)

// The invocation instantiated once per surviving tuple. The macro name
// and the "$n" placeholder are opaque here: they are resolved by the
// impl_swizzle_for_vec macro definition in the vector library, which
// splices the generated lines in for each scalar type.
const invocationFormat = "impl_swizzle_for_vec!($n -> %d: %s => %s);\n"

// An Emitter writes one macro invocation line per tuple of a Cartesian
// power, skipping the tuples its Filter suppresses. Suppressed tuples
// are skipped in place, so the surviving lines keep their relative
// order within the full enumeration.
type Emitter struct {
	product  *Product
	suppress Filter
	rank     int
	out      io.Writer
	emitted  int
	err      error
}

// Construct an Emitter for the rank-sized swizzles of a vector with
// the given components, suppressing the swizzles already covered by
// the covered sub-alphabet. Lines are written to out. Pass an empty
// covered alphabet to emit the whole enumeration.
func NewEmitter(components, covered Alphabet, rank int, out io.Writer) *Emitter {
	suppress := SuppressNone
	if len(covered) != 0 {
		suppress = CoveredBy(covered, rank)
	}
	return &Emitter{
		product:  NewProduct(components, rank),
		suppress: suppress,
		rank:     rank,
		out:      out,
	}
}

// Run enumerates the full Cartesian power, in lexicographic order, and
// writes the line for every tuple the filter lets through. It returns
// the first write error encountered; once a write has failed no
// further lines are written. On success the error is nil and Emitted
// reports how many lines were written.
func (e *Emitter) Run() error {
	e.emitted = 0
	e.err = nil
	e.product.ForEach(e)
	return e.err
}

// Emitted returns the number of lines written by the last Run.
func (e *Emitter) Emitted() int {
	return e.emitted
}

// Consume makes Emitter a TupleConsumer for its own Product; it is not
// intended to be called directly.
func (e *Emitter) Consume(n int, tuple Tuple) {
	if e.err != nil || e.suppress(tuple) {
		return
	}
	if _, err := fmt.Fprintf(e.out, invocationFormat, e.rank, tuple.Code(), tuple.Args()); err != nil {
		e.err = err
		return
	}
	e.emitted += 1
}
