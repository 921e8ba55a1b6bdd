// Package fasta reads candidate templates for scoring.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Record is one named sequence, upper-cased with whitespace removed.
type Record struct {
	ID  string
	Seq string
}

// Parse reads FASTA from r. Input without any '>' header is read as one
// sequence per non-empty line, named name:LINE. Lines starting with ';' or
// '#' are comments.
func Parse(r io.Reader, name string) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)

	var (
		out    []Record
		cur    *Record
		body   strings.Builder
		lineNo int
	)
	flush := func() {
		if cur != nil {
			cur.Seq = body.String()
			out = append(out, *cur)
			cur = nil
		}
		body.Reset()
	}
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "", line[0] == ';', line[0] == '#':
			continue
		case line[0] == '>':
			flush()
			id := strings.Fields(line[1:])
			if len(id) == 0 {
				return nil, fmt.Errorf("%s:%d: empty FASTA header", name, lineNo)
			}
			cur = &Record{ID: id[0]}
		case cur == nil:
			out = append(out, Record{ID: fmt.Sprintf("%s:%d", name, lineNo), Seq: clean(line)})
		default:
			body.WriteString(clean(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	flush()
	return out, nil
}

// ReadFile parses path. "-" is stdin; gzip input is recognised by its magic
// number, so compressed stdin works too.
func ReadFile(path string) ([]Record, error) {
	var src io.Reader = os.Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		src = fh
	}
	br := bufio.NewReader(src)
	if sig, _ := br.Peek(2); bytes.Equal(sig, gzipMagic) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gr.Close()
		return Parse(gr, path)
	}
	return Parse(br, path)
}

func clean(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
