package pretty

import (
	"strconv"
	"strings"

	"pcrgen/core/layout"
	"pcrgen/core/oligo"
)

// Options control the ASCII rendering.
type Options struct {
	// Ruler adds a tick row and a position row every 10 bases.
	Ruler bool

	// Header prefixes the block with Sequence(sequence=...).
	Header bool

	TickGlyph  string // every base, default "."
	HalfGlyph  string // every 5th base, default ":"
	TenthGlyph string // every 10th base, default "|"
}

// DefaultOptions keeps the classic layout plus a ruler.
var DefaultOptions = Options{
	Ruler:      true,
	Header:     false,
	TickGlyph:  ".",
	HalfGlyph:  ":",
	TenthGlyph: "|",
}

// Render draws a template as:
//
//	fwd primer   probe          (aligned above the template)
//	template 5'→3'
//	complement 3'→5'
//	             rev primer 3'→5'
//
// The layout is derived from the regions alone.
func Render(t layout.Template, opt Options) string {
	r := t.Regions
	var b strings.Builder
	if opt.Header {
		b.WriteString("Sequence(sequence=")
		b.WriteString(t.Fwd())
		b.WriteString(")\n")
	}

	b.WriteString(t.FwdPrimer())
	b.WriteString(strings.Repeat(" ", r.Spacer.Len()))
	b.WriteString(t.Probe())
	b.WriteByte('\n')

	b.WriteString(t.Fwd())
	b.WriteByte('\n')
	b.WriteString(t.Complement())
	b.WriteByte('\n')

	b.WriteString(strings.Repeat(" ", r.RevPrimer.Start))
	b.WriteString(oligo.Reverse(t.RevPrimer()))
	b.WriteByte('\n')

	if opt.Ruler {
		b.WriteString(ticks(r.SeqLength, opt))
		b.WriteByte('\n')
		b.WriteString(positions(r.SeqLength))
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func ticks(n int, opt Options) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		switch {
		case i%10 == 0:
			b.WriteString(glyph(opt.TenthGlyph, "|"))
		case i%5 == 0:
			b.WriteString(glyph(opt.HalfGlyph, ":"))
		default:
			b.WriteString(glyph(opt.TickGlyph, "."))
		}
	}
	return b.String()
}

// positions right-aligns each multiple of 10 under its tick.
func positions(n int) string {
	row := []byte(strings.Repeat(" ", n))
	for p := 10; p <= n; p += 10 {
		label := strconv.Itoa(p)
		start := p - len(label)
		if start < 0 {
			continue
		}
		copy(row[start:p], label)
	}
	return strings.TrimRight(string(row), " ")
}
