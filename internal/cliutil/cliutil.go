// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pcrgen/core/oligo"
)

// Warnf prints a user-facing warning to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// Input is one positional argument: a literal sequence or a file to read.
type Input struct {
	Literal string // upper-cased bases when the argument is a sequence
	Path    string
}

// ClassifyPositionals splits arguments into literal sequences and paths. An
// argument made only of bases that is not an existing file is a sequence.
// Paths go through ExpandPositionals.
func ClassifyPositionals(posArgs []string) ([]Input, error) {
	var out []Input
	for _, a := range posArgs {
		if norm, err := oligo.Validate(a); err == nil && norm != "" && !exists(a) {
			out = append(out, Input{Literal: norm})
			continue
		}
		paths, err := ExpandPositionals([]string{a})
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			out = append(out, Input{Path: p})
		}
	}
	return out, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
