package writers

import (
	"fmt"
	"io"
	"text/tabwriter"

	"pcrgen/internal/output"
	"pcrgen/pkg/api"
)

// Writer registries (format → handler) for one-shot payloads.
var (
	StatsWriters = map[string]func(io.Writer, api.StatsV1) error{}
	RuleWriters  = map[string]func(io.Writer, []api.RuleV1) error{}
)

func init() {
	StatsWriters[output.FormatText] = writeStatsText
	StatsWriters[output.FormatJSON] = func(w io.Writer, s api.StatsV1) error { return output.EncodePretty(w, s) }
	StatsWriters[output.FormatYAML] = func(w io.Writer, s api.StatsV1) error { return output.EncodeYAML(w, s) }

	RuleWriters[output.FormatText] = writeRulesText
	RuleWriters[output.FormatJSON] = func(w io.Writer, r []api.RuleV1) error { return output.EncodePretty(w, r) }
	RuleWriters[output.FormatYAML] = func(w io.Writer, r []api.RuleV1) error { return output.EncodeYAML(w, r) }
}

// WriteStats dispatches on format.
func WriteStats(format string, w io.Writer, s api.StatsV1) error {
	fn, ok := StatsWriters[format]
	if !ok {
		return fmt.Errorf("unknown stats format %q (no writer registered)", format)
	}
	return fn(w, s)
}

// WriteRules dispatches on format.
func WriteRules(format string, w io.Writer, r []api.RuleV1) error {
	fn, ok := RuleWriters[format]
	if !ok {
		return fmt.Errorf("unknown rules format %q (no writer registered)", format)
	}
	return fn(w, r)
}

func writeStatsText(w io.Writer, s api.StatsV1) error {
	_, err := fmt.Fprintf(w,
		"length %d, %d samples, seed %d\n"+
			"Tm  mean %.2f sd %.2f min %.2f max %.2f\n"+
			"GC  mean %.2f sd %.2f min %.2f max %.2f\n"+
			"Tm/GC correlation %.3f\n",
		s.Length, s.Samples, s.Seed,
		s.Tm.Mean, s.Tm.StdDev, s.Tm.Min, s.Tm.Max,
		s.GC.Mean, s.GC.StdDev, s.GC.Min, s.GC.Max,
		s.Correlation)
	return err
}

func writeRulesText(w io.Writer, list []api.RuleV1) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWEIGHT\tDEFAULT\tDESCRIPTION")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s\n", r.Name, r.Weight, r.DefaultWeight, r.Description)
	}
	return tw.Flush()
}
