package oligo

import (
	"math/rand"

	"pcrgen/core/primer"
)

// Bases is the design alphabet in draw order.
const Bases = "ACGT"

// Sequence is an immutable A/C/G/T string. Its length never changes; mutation
// produces a new value.
type Sequence struct {
	s string
}

// Parse validates raw text (case-insensitive) and returns the canonical sequence.
func Parse(raw string) (Sequence, error) {
	s, err := Validate(raw)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{s: s}, nil
}

// MustParse is Parse for literals in tests and examples.
func MustParse(raw string) Sequence {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// FromBytes wraps b without validation; callers guarantee A/C/G/T content.
func FromBytes(b []byte) Sequence { return Sequence{s: string(b)} }

// Random draws n bases uniformly from rng.
func Random(rng *rand.Rand, n int) Sequence {
	b := make([]byte, n)
	for i := range b {
		b[i] = Bases[rng.Intn(len(Bases))]
	}
	return Sequence{s: string(b)}
}

func (q Sequence) String() string { return q.s }
func (q Sequence) Len() int       { return len(q.s) }
func (q Sequence) Bytes() []byte  { return []byte(q.s) }

// Slice returns bases [i, j) as a plain string.
func (q Sequence) Slice(i, j int) string { return q.s[i:j] }

// RevComp returns the reverse complement (5'→3' of the bottom strand).
func (q Sequence) RevComp() Sequence {
	return Sequence{s: RevComp(q.s)}
}

// Complement returns the base-wise complement without reversing.
func (q Sequence) Complement() Sequence {
	return Sequence{s: Complement(q.s)}
}

// RevComp returns the reverse complement of an A/C/G/T string.
func RevComp(s string) string {
	return string(primer.RevComp([]byte(s)))
}

// Complement complements s in place order (3'→5' view of the bottom strand).
func Complement(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = primer.Complement(b[i])
	}
	return string(b)
}

// GCCount counts G and C bases.
func GCCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			n++
		}
	}
	return n
}

// GCPercent returns the GC content of s in percent; 0 for an empty string.
func GCPercent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	return 100 * float64(GCCount(s)) / float64(len(s))
}

// LongestRun reports the longest stretch of one repeated base and that base.
func LongestRun(s string) (length int, base byte) {
	run := 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if run > length {
			length, base = run, s[i]
		}
	}
	return length, base
}

// Reverse reverses s (used for 3'→5' display of the reverse primer).
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
