package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.fq")}); err == nil {
		t.Fatalf("expected no-match error")
	}
}

func TestClassifyPositionals(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "in.fa")
	_ = os.WriteFile(f, []byte(">a\nACGT\n"), 0o644)

	got, err := ClassifyPositionals([]string{"acgt", f, "-"})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 inputs, got %v", got)
	}
	if got[0].Literal != "ACGT" || got[0].Path != "" {
		t.Errorf("literal not recognised: %+v", got[0])
	}
	if got[1].Path != f || got[2].Path != "-" {
		t.Errorf("paths not kept: %+v", got[1:])
	}
}

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "run %d", 3)
	Warnf(&b, true, "hidden")
	if b.String() != "WARN: run 3\n" {
		t.Fatalf("got %q", b.String())
	}
}
