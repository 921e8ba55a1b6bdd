// core/layout/template.go
package layout

import (
	"fmt"

	"pcrgen/core/oligo"
)

// Template binds a sequence to its regions. All accessors are projections of
// Seq; nothing is cached.
type Template struct {
	Seq     oligo.Sequence
	Regions Regions
}

// New checks that seq fits the layout.
func New(seq oligo.Sequence, r Regions) (Template, error) {
	if seq.Len() != r.SeqLength {
		return Template{}, &LayoutError{
			SeqLength:    r.SeqLength,
			PrimerLength: r.PrimerLength,
			ProbeLength:  r.ProbeLength,
			ProbeGap:     r.ProbeGap,
			Reason:       fmt.Sprintf("sequence has %d bases, layout expects %d", seq.Len(), r.SeqLength),
		}
	}
	return Template{Seq: seq, Regions: r}, nil
}

// With returns a template over seq with the same regions. seq must have the
// same length.
func (t Template) With(seq oligo.Sequence) Template {
	return Template{Seq: seq, Regions: t.Regions}
}

func (t Template) span(s Span) string { return t.Seq.Slice(s.Start, s.End) }

// Fwd is the top strand 5'→3'.
func (t Template) Fwd() string { return t.Seq.String() }

// Rev is the bottom strand 5'→3'.
func (t Template) Rev() string { return oligo.RevComp(t.Seq.String()) }

// Complement is the bottom strand aligned under Fwd (3'→5').
func (t Template) Complement() string { return oligo.Complement(t.Seq.String()) }

func (t Template) FwdPrimer() string { return t.span(t.Regions.FwdPrimer) }

// RevPrimer is the reverse primer 5'→3'.
func (t Template) RevPrimer() string { return oligo.RevComp(t.span(t.Regions.RevPrimer)) }

func (t Template) Probe() string  { return t.span(t.Regions.Probe) }
func (t Template) Gap() string    { return t.span(t.Regions.Gap) }
func (t Template) Spacer() string { return t.span(t.Regions.Spacer) }

// Clamp is the 3' end of the forward primer, k bases.
func (t Template) Clamp(k int) string { return t.span(t.Regions.Clamp(k)) }

// ThreePrimeEnds returns the last k bases of the forward template, reverse
// template, forward primer and reverse primer, in that order.
func (t Template) ThreePrimeEnds(k int) []string {
	return []string{
		tail(t.Fwd(), k),
		tail(t.Rev(), k),
		tail(t.FwdPrimer(), k),
		tail(t.RevPrimer(), k),
	}
}

func tail(s string, k int) string {
	if k >= len(s) {
		return s
	}
	if k <= 0 {
		return ""
	}
	return s[len(s)-k:]
}
