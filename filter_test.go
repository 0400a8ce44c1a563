package swizgen_test

import (
	"strings"
	"testing"

	"github.com/monomere/swizgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuppressNone(t *testing.T) {
	for _, code := range []string{"xxx", "www", "xyw"} {
		assert.False(t, swizgen.SuppressNone(swizgen.Tuple(code)))
	}
}

func TestCoveredBySuppressesExactlySubPower(t *testing.T) {
	suppress := swizgen.CoveredBy(swizgen.Vec3Components, 3)

	suppressed := 0
	swizgen.NewProduct(swizgen.Vec4Components, 3).ForEach(
		swizgen.TupleConsumerFunc(func(n int, tuple swizgen.Tuple) {
			// A tuple is covered iff none of its symbols is w.
			want := !strings.ContainsRune(tuple.Code(), 'w')
			assert.Equal(t, want, suppress(tuple), "tuple %s", tuple.Code())
			if want {
				suppressed += 1
			}
		}))

	require.Equal(t, 27, suppressed)
}

func TestCoveredByNeedsEveryPosition(t *testing.T) {
	suppress := swizgen.CoveredBy(swizgen.Vec3Components, 3)

	// One symbol outside the sub-alphabet is enough to survive,
	// whichever position it occupies.
	for _, code := range []string{"wxx", "xwx", "xxw", "xyw", "www"} {
		assert.False(t, suppress(swizgen.Tuple(code)), "tuple %s must survive", code)
	}
	for _, code := range []string{"xxx", "xyz", "zzz", "zyx"} {
		assert.True(t, suppress(swizgen.Tuple(code)), "tuple %s must be suppressed", code)
	}
}

func TestCoveredByOtherRanks(t *testing.T) {
	suppress := swizgen.CoveredBy(swizgen.Alphabet{'x', 'y'}, 2)

	assert.True(t, suppress(swizgen.Tuple("xy")))
	assert.True(t, suppress(swizgen.Tuple("yy")))
	assert.False(t, suppress(swizgen.Tuple("xz")))
	assert.False(t, suppress(swizgen.Tuple("xyz")), "length mismatch is never covered")
}
