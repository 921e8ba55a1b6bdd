// core/mutate/mutate.go
package mutate

import (
	"math/rand"

	"pcrgen/core/oligo"
)

// Mutate returns a copy of seq with howMany distinct positions redrawn
// uniformly from A/C/G/T. A draw may reproduce the old base, so the result
// can differ in fewer positions. howMany is clipped to [1, len(seq)].
func Mutate(seq oligo.Sequence, howMany int, rng *rand.Rand) oligo.Sequence {
	n := seq.Len()
	if n == 0 {
		return seq
	}
	if howMany < 1 {
		howMany = 1
	}
	if howMany > n {
		howMany = n
	}
	b := seq.Bytes()
	for _, i := range Positions(n, howMany, rng) {
		b[i] = oligo.Bases[rng.Intn(len(oligo.Bases))]
	}
	return oligo.FromBytes(b)
}

// Positions picks k distinct indices from [0, n) (partial Fisher–Yates).
func Positions(n, k int, rng *rand.Rand) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
