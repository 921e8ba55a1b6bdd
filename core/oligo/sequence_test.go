package oligo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "acg t", want: "ACGT"},
		{in: "'GgCc'", want: "GGCC"},
		{in: "ACGN", wantErr: true},
		{in: "ACGU", wantErr: true},
		{in: "AC-G", wantErr: true},
		{in: "", wantErr: true},
		{in: "  ", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.Zero(t, got.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestValidateNamesBadBase(t *testing.T) {
	_, err := Validate("ACGN")
	assert.ErrorContains(t, err, "'N' at 4")
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("ACGX") })
	assert.Equal(t, "ACGT", MustParse("acgt").String())
}

func TestHelpers(t *testing.T) {
	n, b := LongestRun("AACCCG")
	assert.Equal(t, 3, n)
	assert.Equal(t, byte('C'), b)
	n, _ = LongestRun("")
	assert.Zero(t, n)

	assert.Equal(t, 0.0, GCPercent(""))
	assert.Equal(t, 50.0, GCPercent("ACGT"))
	assert.Equal(t, 3, GCCount("GGCA"))

	assert.Equal(t, "CGTT", RevComp("AACG"))
	assert.Equal(t, "", RevComp(""))
	assert.Equal(t, "TTGC", Complement("AACG"))
	assert.Equal(t, "GCAA", Reverse("AACG"))
}

func TestSequenceMethods(t *testing.T) {
	s := MustParse("AACG")
	assert.Equal(t, "CGTT", s.RevComp().String())
	assert.Equal(t, "TTGC", s.Complement().String())
	assert.Equal(t, "AC", s.Slice(1, 3))

	b := s.Bytes()
	b[0] = 'T'
	assert.Equal(t, "AACG", s.String(), "Bytes returns a copy")
}

func TestRandom(t *testing.T) {
	a := Random(rand.New(rand.NewSource(7)), 200)
	b := Random(rand.New(rand.NewSource(7)), 200)
	assert.Equal(t, a, b)
	assert.Equal(t, 200, a.Len())
	_, err := Validate(a.String())
	assert.NoError(t, err)
}
