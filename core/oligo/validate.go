// core/oligo/validate.go
package oligo

import (
	"fmt"
	"unicode"
)

// Normalize removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or an error if any char is not A/C/G/T.
// Templates are designed base by base, so ambiguity codes are rejected here.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return s, fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(s); i++ {
		if !isBase(s[i]) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T", rune(s[i]), i+1)
		}
	}
	return s, nil
}

func isBase(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }
