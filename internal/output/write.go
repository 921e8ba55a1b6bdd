// internal/output/write.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"pcrgen/pkg/api"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeYAML writes v as a YAML document.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFASTA writes one record per template; the header carries run, status
// and cost.
func WriteFASTA(w io.Writer, list []api.TemplateV1) error {
	for _, t := range list {
		if _, err := fmt.Fprintf(w, ">pcrgen_%d id=%s status=%s cost=%.2f len=%d\n%s\n",
			t.Run+1, t.ID, t.Status, t.Cost, t.Length, t.Sequence); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV writes templates as a tab-delimited table.
func WriteTSV(w io.Writer, list []api.TemplateV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, t := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%.2f\t%s\t%s\t%s\t%s\t%.1f\t%.2f\t%.2f\t%.2f\t%d\t%d\n",
			t.ID, t.Run, t.Status, t.Cost, t.Sequence, t.FwdPrimer, t.Probe, t.RevPrimer,
			t.GC, t.TmFwd, t.TmRev, t.TmProbe, t.Iterations, t.Seed); err != nil {
			return err
		}
	}
	return nil
}
