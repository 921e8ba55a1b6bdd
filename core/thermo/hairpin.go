// core/thermo/hairpin.go
package thermo

import "math"

// HairpinPenalty scores the longest intramolecular stem (≥3 bp, loop ≥3)
// and weights it up to 2x when the stem sits within 8 bases of the 3' end.
func HairpinPenalty(seq5to3 string) float64 {
	b := []byte(seq5to3)
	n := len(b)
	maxStem := 0
	minDist := n
	for i := 0; i < n; i++ {
		for j := i + 3; j < n; j++ {
			k := 0
			for (j-k)-(i+k) >= 4 {
				if !wc(b[i+k], b[j-k]) {
					break
				}
				k++
			}
			if k < 3 {
				continue
			}
			d := (n - 1) - j // bases between the stem and the 3' end
			switch {
			case k > maxStem:
				maxStem = k
				minDist = d
			case k == maxStem && d < minDist:
				minDist = d
			}
		}
	}
	if maxStem == 0 {
		return 0
	}
	return float64(maxStem) * (1.0 + math.Max(0, 1.0-float64(minDist)/8.0))
}
