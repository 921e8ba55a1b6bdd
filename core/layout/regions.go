// core/layout/regions.go
package layout

import "fmt"

// Default geometry of a qPCR template.
const (
	DefaultSeqLength    = 75
	DefaultPrimerLength = 22
	DefaultProbeLength  = 25
	DefaultProbeGap     = 3
	DefaultClampLength  = 5
)

// LayoutError reports geometry parameters that cannot form a template.
type LayoutError struct {
	SeqLength    int
	PrimerLength int
	ProbeLength  int
	ProbeGap     int
	Reason       string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid layout (length=%d primer=%d probe=%d gap=%d): %s",
		e.SeqLength, e.PrimerLength, e.ProbeLength, e.ProbeGap, e.Reason)
}

// Span is a half-open window [Start, End) on the forward strand.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int { return s.End - s.Start }

// Regions is the fixed decomposition of a template:
//
//	fwd primer | spacer | probe | gap | rev primer window
//
// The probe ends ProbeGap bases before the reverse primer window.
type Regions struct {
	SeqLength    int
	PrimerLength int
	ProbeLength  int
	ProbeGap     int

	FwdPrimer Span
	Spacer    Span
	Probe     Span
	Gap       Span
	RevPrimer Span // forward-strand window; the primer is its reverse complement
}

// DeriveRegions validates the geometry once and computes every window.
func DeriveRegions(seqLength, primerLength, probeLength, probeGap int) (Regions, error) {
	fail := func(reason string) (Regions, error) {
		return Regions{}, &LayoutError{
			SeqLength:    seqLength,
			PrimerLength: primerLength,
			ProbeLength:  probeLength,
			ProbeGap:     probeGap,
			Reason:       reason,
		}
	}
	switch {
	case seqLength <= 0:
		return fail("sequence length must be > 0")
	case primerLength <= 0:
		return fail("primer length must be > 0")
	case probeLength <= 0:
		return fail("probe length must be > 0")
	case probeGap < 0:
		return fail("probe gap must be >= 0")
	}
	need := 2*primerLength + probeLength + probeGap
	if need > seqLength {
		return fail(fmt.Sprintf("primers, probe and gap need %d bases, only %d available", need, seqLength))
	}

	revStart := seqLength - primerLength
	probeEnd := revStart - probeGap
	probeStart := probeEnd - probeLength
	r := Regions{
		SeqLength:    seqLength,
		PrimerLength: primerLength,
		ProbeLength:  probeLength,
		ProbeGap:     probeGap,
		FwdPrimer:    Span{0, primerLength},
		Spacer:       Span{primerLength, probeStart},
		Probe:        Span{probeStart, probeEnd},
		Gap:          Span{probeEnd, revStart},
		RevPrimer:    Span{revStart, seqLength},
	}
	return r, nil
}

// MustDeriveRegions panics on an invalid layout; for fixed literals.
func MustDeriveRegions(seqLength, primerLength, probeLength, probeGap int) Regions {
	r, err := DeriveRegions(seqLength, primerLength, probeLength, probeGap)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegions is the 75/22/25/3 layout.
func DefaultRegions() Regions {
	return MustDeriveRegions(DefaultSeqLength, DefaultPrimerLength, DefaultProbeLength, DefaultProbeGap)
}

// Clamp is the window of the last k bases of the forward primer, clipped to
// the primer.
func (r Regions) Clamp(k int) Span {
	if k > r.PrimerLength {
		k = r.PrimerLength
	}
	if k < 0 {
		k = 0
	}
	return Span{r.FwdPrimer.End - k, r.FwdPrimer.End}
}
