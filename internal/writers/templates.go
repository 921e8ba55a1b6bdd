package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pcrgen/core/layout"
	"pcrgen/core/oligo"
	"pcrgen/internal/output"
	"pcrgen/internal/pretty"
	"pcrgen/pkg/api"
)

// TemplateOptions controls template rendering.
type TemplateOptions struct {
	Header  bool // TSV header row
	Verbose bool // text: list every rule, not just failing ones
	Pretty  pretty.Options
}

// StartTemplateWriter spins up a writer goroutine for templates in the given
// format. json and yaml buffer the whole batch; the others stream.
func StartTemplateWriter(out io.Writer, format string, opt TemplateOptions, bufSize int) (chan<- api.TemplateV1, <-chan error) {
	switch format {
	case output.FormatJSON:
		return collect(out, bufSize, func(w io.Writer, list []api.TemplateV1) error {
			return output.EncodePretty(w, nonNil(list))
		})
	case output.FormatYAML:
		return collect(out, bufSize, func(w io.Writer, list []api.TemplateV1) error {
			return output.EncodeYAML(w, nonNil(list))
		})
	case output.FormatJSONL:
		var enc *json.Encoder
		return start(out, bufSize, func(bw *bufio.Writer, t api.TemplateV1) error {
			if enc == nil {
				enc = json.NewEncoder(bw)
			}
			return enc.Encode(t)
		})
	case output.FormatFASTA:
		return start(out, bufSize, func(bw *bufio.Writer, t api.TemplateV1) error {
			return output.WriteFASTA(bw, []api.TemplateV1{t})
		})
	case output.FormatTSV:
		header := opt.Header
		return start(out, bufSize, func(bw *bufio.Writer, t api.TemplateV1) error {
			err := output.WriteTSV(bw, []api.TemplateV1{t}, header)
			header = false
			return err
		})
	case output.FormatText:
		return start(out, bufSize, func(bw *bufio.Writer, t api.TemplateV1) error {
			_, err := io.WriteString(bw, RenderText(t, opt))
			return err
		})
	default:
		in := make(chan api.TemplateV1, 1)
		done := make(chan error, 1)
		go func() {
			drain(in)
			done <- fmt.Errorf("unknown template format %q (no writer registered)", format)
		}()
		return in, done
	}
}

// RenderText is the human-readable block for one template: a summary line,
// the pretty alignment and the cost breakdown.
func RenderText(t api.TemplateV1, opt TemplateOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# template %d  %s  cost=%.2f  gc=%.1f%%  tm fwd/rev/probe=%.1f/%.1f/%.1f\n",
		t.Run+1, t.Status, t.Cost, t.GC, t.TmFwd, t.TmRev, t.TmProbe)
	if tpl, err := fromAPI(t); err == nil {
		b.WriteString(pretty.Render(tpl, opt.Pretty))
	} else {
		b.WriteString(t.Sequence)
		b.WriteByte('\n')
	}
	for _, r := range t.Rules {
		if r.Cost == 0 && !opt.Verbose {
			continue
		}
		fmt.Fprintf(&b, "  %.1f %s", r.Cost, r.Name)
		if r.Note != "" {
			fmt.Fprintf(&b, " %s", r.Note)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// fromAPI rebuilds the layout from the wire regions.
func fromAPI(t api.TemplateV1) (layout.Template, error) {
	seq, err := oligo.Parse(t.Sequence)
	if err != nil {
		return layout.Template{}, err
	}
	rg := t.Regions
	r, err := layout.DeriveRegions(t.Length,
		rg.FwdPrimer.End-rg.FwdPrimer.Start,
		rg.Probe.End-rg.Probe.Start,
		rg.Gap.End-rg.Gap.Start)
	if err != nil {
		return layout.Template{}, err
	}
	return layout.New(seq, r)
}

func nonNil(list []api.TemplateV1) []api.TemplateV1 {
	if list == nil {
		return []api.TemplateV1{}
	}
	return list
}
