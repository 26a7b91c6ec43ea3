package randgen_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/internal/randgen"
)

// TestNew_Deterministic ensures equal seeds produce equal streams and seed 0 maps to DefaultSeed.
func TestNew_Deterministic(t *testing.T) {
	a := randgen.Ints(randgen.New(42), 16, -5, 5)
	b := randgen.Ints(randgen.New(42), 16, -5, 5)
	assert.Equal(t, a, b)

	zero := randgen.Ints(randgen.New(0), 8, 0, 100)
	def := randgen.Ints(randgen.New(randgen.DefaultSeed), 8, 0, 100)
	assert.Equal(t, def, zero)
}

// TestDerive_IndependentStreams checks that different stream ids diverge.
func TestDerive_IndependentStreams(t *testing.T) {
	s1 := randgen.Ints(randgen.Derive(nil, 1), 32, 0, 1<<20)
	s2 := randgen.Ints(randgen.Derive(nil, 2), 32, 0, 1<<20)
	assert.NotEqual(t, s1, s2)
}

// TestInts_Bounds covers range and degenerate inputs.
func TestInts_Bounds(t *testing.T) {
	xs := randgen.Ints(randgen.New(7), 500, -3, 3)
	require.Len(t, xs, 500)
	for _, x := range xs {
		assert.GreaterOrEqual(t, x, -3)
		assert.LessOrEqual(t, x, 3)
	}
	assert.Nil(t, randgen.Ints(nil, 0, 0, 1))
	assert.Nil(t, randgen.Ints(nil, 3, 2, 1))
}

// TestPalindrome_IsSymmetric validates both parities.
func TestPalindrome_IsSymmetric(t *testing.T) {
	rng := randgen.New(9)
	for n := 1; n <= 9; n++ {
		p := randgen.Palindrome(rng, n, 0, 9)
		require.Len(t, p, n)
		r := slices.Clone(p)
		slices.Reverse(r)
		assert.Equal(t, p, r, "n=%d", n)
	}
}
