// pkg/api/templates_v1.go
package api

import (
	"fmt"

	"github.com/google/uuid"
)

// TemplateV1 is the stable JSON/JSONL/YAML schema for one designed template.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TemplateV1 struct {
	ID         string       `json:"id" yaml:"id"`
	Run        int          `json:"run" yaml:"run"`
	Sequence   string       `json:"sequence" yaml:"sequence"`
	Length     int          `json:"length" yaml:"length"`
	FwdPrimer  string       `json:"fwd_primer" yaml:"fwd_primer"`
	RevPrimer  string       `json:"rev_primer" yaml:"rev_primer"`
	Probe      string       `json:"probe" yaml:"probe"`
	Regions    RegionsV1    `json:"regions" yaml:"regions"`
	Status     string       `json:"status" yaml:"status"` // "converged" | "exhausted" | "cancelled" | "scored"
	Converged  bool         `json:"converged" yaml:"converged"`
	Cost       float64      `json:"cost" yaml:"cost"`
	Iterations int          `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	Accepted   int          `json:"accepted,omitempty" yaml:"accepted,omitempty"`
	Seed       int64        `json:"seed,omitempty" yaml:"seed,omitempty"`
	GC         float64      `json:"gc" yaml:"gc"`
	TmFwd      float64      `json:"tm_fwd" yaml:"tm_fwd"`
	TmRev      float64      `json:"tm_rev" yaml:"tm_rev"`
	TmProbe    float64      `json:"tm_probe" yaml:"tm_probe"`
	Rules      []RuleCostV1 `json:"rules,omitempty" yaml:"rules,omitempty"`
	SourceID   string       `json:"source_id,omitempty" yaml:"source_id,omitempty"`
}

// SpanV1 is a half-open [start,end) window on the forward strand.
type SpanV1 struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

type RegionsV1 struct {
	FwdPrimer SpanV1 `json:"fwd_primer" yaml:"fwd_primer"`
	Probe     SpanV1 `json:"probe" yaml:"probe"`
	Gap       SpanV1 `json:"gap" yaml:"gap"`
	RevPrimer SpanV1 `json:"rev_primer" yaml:"rev_primer"`
}

// RuleCostV1 is one rule's line in a template's cost breakdown.
type RuleCostV1 struct {
	Name    string  `json:"name" yaml:"name"`
	Weight  float64 `json:"weight" yaml:"weight"`
	Penalty float64 `json:"penalty" yaml:"penalty"`
	Cost    float64 `json:"cost" yaml:"cost"`
	Note    string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// RuleV1 describes a registered rule (the `rules` listing).
type RuleV1 struct {
	Name          string  `json:"name" yaml:"name"`
	Description   string  `json:"description" yaml:"description"`
	DefaultWeight float64 `json:"default_weight" yaml:"default_weight"`
	Weight        float64 `json:"weight" yaml:"weight"`
}

// SummaryV1 summarises one sampled distribution.
type SummaryV1 struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// StatsV1 is the `analyze` result.
type StatsV1 struct {
	Length      int       `json:"length" yaml:"length"`
	Samples     int       `json:"samples" yaml:"samples"`
	Seed        int64     `json:"seed" yaml:"seed"`
	Tm          SummaryV1 `json:"tm" yaml:"tm"`
	GC          SummaryV1 `json:"gc" yaml:"gc"`
	Correlation float64   `json:"tm_gc_correlation" yaml:"tm_gc_correlation"`
}

// templateNS scopes template IDs.
var templateNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("pcrgen/template/v1"))

// TemplateID is a stable name-based UUID: the same sequence from the same
// seed always gets the same ID.
func TemplateID(sequence string, seed int64) string {
	return uuid.NewSHA1(templateNS, []byte(fmt.Sprintf("%d:%s", seed, sequence))).String()
}
