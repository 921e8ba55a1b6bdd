// core/primer/match.go
package primer

import "bytes"

// Match is one binding site of a pattern.
type Match struct {
	Pos        int
	Mismatches int
}

// FindMatches reports every start position (overlaps included) where pattern
// pairs with seq with at most maxMM mismatches. The last terminalWindow
// pattern bases must match exactly.
func FindMatches(seq, pattern []byte, maxMM, terminalWindow int) []Match {
	pl := len(pattern)
	if pl == 0 || len(seq) < pl {
		return nil
	}
	var out []Match
	if maxMM == 0 {
		for i := 0; ; {
			j := bytes.Index(seq[i:], pattern)
			if j < 0 {
				return out
			}
			out = append(out, Match{Pos: i + j})
			i += j + 1
		}
	}

	cutoff := max(pl-max(terminalWindow, 0), 0)
window:
	for pos := 0; pos+pl <= len(seq); pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if seq[pos+j] == pattern[j] {
				continue
			}
			if j >= cutoff {
				continue window
			}
			if mm++; mm > maxMM {
				continue window
			}
		}
		out = append(out, Match{Pos: pos, Mismatches: mm})
	}
	return out
}

// CountBothStrands counts binding sites of pattern on seq and on its reverse
// complement. The 3'-most base of the pattern must match exactly when
// mismatches are allowed, since that is the base a polymerase extends from.
func CountBothStrands(seq, pattern []byte, maxMM int) int {
	tw := 0
	if maxMM > 0 {
		tw = 1
	}
	n := len(FindMatches(seq, pattern, maxMM, tw))
	n += len(FindMatches(RevComp(seq), pattern, maxMM, tw))
	return n
}
