package output

// Output formats understood by every command.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
	FormatFASTA = "fasta"
	FormatTSV   = "tsv"
)

// TSVHeader is the canonical header row for TSV template output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\trun\tstatus\tcost\tsequence\tfwd_primer\tprobe\trev_primer\tgc\ttm_fwd\ttm_rev\ttm_probe\titerations\tseed"
