// Package writers turns designed templates, sample statistics and the rule
// listing into serialized output.
//
// Writers own all presentation knowledge (pretty blocks, TSV, FASTA, JSON,
// JSONL, YAML). The core packages stay domain-only. Structured formats go
// through pkg/api (v1) for a stable wire format.
package writers
