package mutate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcrgen/core/oligo"
)

func hamming(a, b string) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

func TestMutate_LengthAndDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seq := oligo.Random(rng, 75)
	for _, k := range []int{1, 2, 3, 8, 75} {
		for i := 0; i < 200; i++ {
			out := Mutate(seq, k, rng)
			require.Equal(t, seq.Len(), out.Len())
			assert.LessOrEqual(t, hamming(seq.String(), out.String()), k)
			_, err := oligo.Parse(out.String())
			require.NoError(t, err)
		}
	}
}

func TestMutate_InputUntouched(t *testing.T) {
	seq := oligo.MustParse("ACGTACGTACGT")
	before := seq.String()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		Mutate(seq, 4, rng)
	}
	assert.Equal(t, before, seq.String())
}

func TestMutate_ClipsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seq := oligo.MustParse("AAAA")
	assert.Equal(t, 4, Mutate(seq, 0, rng).Len())
	assert.Equal(t, 4, Mutate(seq, 99, rng).Len())
	assert.Equal(t, 0, Mutate(oligo.Sequence{}, 3, rng).Len())
}

// Redraws are uniform over all four bases, the old one included.
func TestMutate_KeepsNoOpDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	seq := oligo.MustParse("A")
	counts := map[byte]int{}
	const n = 8000
	for i := 0; i < n; i++ {
		counts[Mutate(seq, 1, rng).String()[0]]++
	}
	for _, b := range []byte(oligo.Bases) {
		assert.InDelta(t, n/4, counts[b], n*0.05, "base %c", b)
	}
}

func TestMutate_Deterministic(t *testing.T) {
	seq := oligo.MustParse("ACGTACGTACGTACGTACGT")
	a := Mutate(seq, 3, rand.New(rand.NewSource(99)))
	b := Mutate(seq, 3, rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}

func TestPositions_Distinct(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		p := Positions(10, 6, rng)
		require.Len(t, p, 6)
		seen := map[int]bool{}
		for _, x := range p {
			assert.False(t, seen[x])
			assert.True(t, x >= 0 && x < 10)
			seen[x] = true
		}
	}
}
