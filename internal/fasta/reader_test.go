package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFASTA(t *testing.T) {
	in := ">t1 first template\nacgt\nGGCC\n; comment\n\n>t2\nTTTT\n"
	recs, err := Parse(strings.NewReader(in), "x")
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: "t1", Seq: "ACGTGGCC"}, {ID: "t2", Seq: "TTTT"}}, recs)
}

func TestParseBareLines(t *testing.T) {
	recs, err := Parse(strings.NewReader("acgt\n# skip\n\nGG CC\n"), "in")
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: "in:1", Seq: "ACGT"}, {ID: "in:4", Seq: "GGCC"}}, recs)
}

func TestParseEmptyHeader(t *testing.T) {
	_, err := Parse(strings.NewReader(">\nACGT\n"), "bad")
	assert.ErrorContains(t, err, "bad:1")
}

func TestReadFileGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a.fa")
	require.NoError(t, os.WriteFile(plain, []byte(">a\nACGT\n"), 0o644))

	// gzip without the suffix: detected by magic number
	zipped := filepath.Join(dir, "b.fa")
	f, err := os.Create(zipped)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(">b\nGGCC\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	for path, want := range map[string]Record{plain: {"a", "ACGT"}, zipped: {"b", "GGCC"}} {
		recs, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []Record{want}, recs)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.fa"))
	assert.Error(t, err)
}
