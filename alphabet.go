package swizgen

import "strings"

// A Symbol is a single vector component name, such as 'x' or 'w'.
type Symbol byte

// An Alphabet is an ordered list of component names. The order
// matters: it induces the lexicographic order in which Product
// enumerates tuples. Treat an Alphabet as immutable once it has been
// handed to a constructor.
type Alphabet []Symbol

// The component alphabets of the vector library. Vec3Components is a
// prefix of Vec4Components, in the same relative order, which is what
// makes the covered-set subtraction in main/ well defined.
var (
	Vec4Components = Alphabet{'x', 'y', 'z', 'w'}
	Vec3Components = Alphabet{'x', 'y', 'z'}
)

// Contains reports whether s is one of the alphabet's symbols.
func (a Alphabet) Contains(s Symbol) bool {
	for _, elem := range a {
		if elem == s {
			return true
		}
	}
	return false
}

func (a Alphabet) String() string {
	return string(a)
}

// A Tuple is an ordered sequence of symbols, with repetition allowed.
// Two tuples are equal iff they have the same symbol at every
// position. Tuples passed to a TupleConsumer are only valid for the
// duration of the Consume call; use Copy to retain one.
type Tuple []Symbol

// Code returns the symbols concatenated with no separator, e.g. "wxy".
// It is the form used both in the emitted output and as the membership
// key of covered sets.
func (t Tuple) Code() string {
	return string(t)
}

// Args returns the symbols comma-and-space separated, e.g. "w, x, y",
// the argument-list form of the emitted macro invocation.
func (t Tuple) Args() string {
	parts := make([]string, len(t))
	for idx, s := range t {
		parts[idx] = string(rune(s))
	}
	return strings.Join(parts, ", ")
}

// Copy returns a fresh Tuple sharing no storage with the receiver.
func (t Tuple) Copy() Tuple {
	t2 := make(Tuple, len(t))
	copy(t2, t)
	return t2
}

func (t Tuple) String() string {
	return t.Code()
}
