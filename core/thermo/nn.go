// core/thermo/nn.go
// Nearest-neighbor thermodynamics for perfect-match DNA duplexes (SantaLucia
// unified set). Units: ΔH in kcal/mol, ΔS in cal/(K·mol). Tm in °C.
//
// Steps:
//  1. Sum initiation + per-stack ΔH/ΔS + terminal AT penalties + symmetry.
//  2. Salt correction to ΔS for monovalent ions: ΔS([Na+]) = ΔS(1M) + 0.368*(n-1)*ln[Na+].
//  3. Two-state Tm (K): Tm = ΔH*1000 / (ΔS_Na + R ln(CT/x)) − 273.15 (°C).
//
// This package has no app/output deps; the optimizer core imports it cleanly.
package thermo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Gas constant in cal/(K·mol)
const Rcal = 1.9872

// NNParams holds nearest-neighbor propagation parameters.
type NNParams struct {
	DH float64 // kcal/mol
	DS float64 // cal/(K·mol)
}

// stacks is indexed by the top-strand dinucleotide (5'→3'); the bottom strand
// is its Watson–Crick partner. SantaLucia & Hicks (2004), Table 1.
var stacks [4][4]NNParams

func init() {
	set := func(top string, p NNParams) {
		stacks[baseIdx(top[0])][baseIdx(top[1])] = p
	}
	set("AA", NNParams{-7.6, -21.3})
	set("TT", NNParams{-7.6, -21.3})
	set("AT", NNParams{-7.2, -20.4})
	set("TA", NNParams{-7.2, -21.3})
	set("CA", NNParams{-8.5, -22.7})
	set("TG", NNParams{-8.5, -22.7})
	set("GT", NNParams{-8.4, -22.4})
	set("AC", NNParams{-8.4, -22.4})
	set("CT", NNParams{-7.8, -21.0})
	set("AG", NNParams{-7.8, -21.0})
	set("GA", NNParams{-8.2, -22.2})
	set("TC", NNParams{-8.2, -22.2})
	set("CG", NNParams{-10.6, -27.2})
	set("GC", NNParams{-9.8, -24.4})
	set("GG", NNParams{-8.0, -19.9})
	set("CC", NNParams{-8.0, -19.9})
}

// Initiation / terminal / symmetry (1 M Na+).
var (
	initDH, initDS       = +0.2, -5.7
	termAT_DH, termAT_DS = +2.2, +6.9 // once per terminal AT pair
	symmDH, symmDS       = 0.0, -1.4  // self-complementary correction
)

// TmInput describes solution and concentration.
type TmInput struct {
	CT float64 // total strand conc (mol/L); non-self: formula uses ln(CT/x)
	Na float64 // monovalent cations (mol/L), e.g. 0.05 for 50 mM
	X  int     // duplex type: 4 (non-self, default) or 1 (self-compl)
}

// Result reports ΔH/ΔS (1M and salt-corrected) and Tm.
type Result struct {
	DH_kcal float64 // total ΔH (kcal/mol)
	DS_cal  float64 // total ΔS at 1 M (cal/K·mol)
	DS_Na   float64 // ΔS corrected by [Na+] (cal/K·mol)
	TmC     float64 // melting temperature (°C)
}

// Tm computes the melting temperature of seq (5'→3') annealed to its exact
// complement. Only A/C/G/T bases are supported; at least 2 bases are needed.
func Tm(seq5to3 string, in TmInput) (Result, error) {
	var out Result

	p := strings.ToUpper(strings.TrimSpace(seq5to3))
	if len(p) < 2 {
		return out, errors.New("Tm: sequence needs at least 2 bases")
	}
	if in.CT <= 0 {
		return out, errors.New("Tm: CT must be > 0")
	}
	if in.Na <= 0 {
		return out, errors.New("Tm: [Na+] must be > 0")
	}
	x := in.X
	if x != 1 && x != 4 {
		x = 4
	}

	n := len(p)
	DH := initDH
	DS := initDS
	for i := 0; i < n-1; i++ {
		a, b := baseIdx(p[i]), baseIdx(p[i+1])
		if a < 0 || b < 0 {
			return out, fmt.Errorf("Tm: non-ACGT base near pos %d", i+1)
		}
		DH += stacks[a][b].DH
		DS += stacks[a][b].DS
	}

	if isAT(p[0]) {
		DH += termAT_DH
		DS += termAT_DS
	}
	if isAT(p[n-1]) {
		DH += termAT_DH
		DS += termAT_DS
	}
	if x == 1 && isSelfCompl(p) {
		DH += symmDH
		DS += symmDS
	}

	DS_Na := DS + 0.368*float64(n-1)*math.Log(in.Na)

	tmK := (DH * 1000.0) / (DS_Na + Rcal*math.Log(in.CT/float64(x)))
	out.DH_kcal = DH
	out.DS_cal = DS
	out.DS_Na = DS_Na
	out.TmC = tmK - 273.15
	return out, nil
}

// ---------- helpers ----------

func baseIdx(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

func isAT(b byte) bool { return b == 'A' || b == 'T' }

func isSelfCompl(s string) bool {
	n := len(s)
	for i := 0; i < n; i++ {
		if !wc(s[i], s[n-1-i]) {
			return false
		}
	}
	return true
}

func wc(a, b byte) bool {
	switch a {
	case 'A':
		return b == 'T'
	case 'C':
		return b == 'G'
	case 'G':
		return b == 'C'
	case 'T':
		return b == 'A'
	default:
		return false
	}
}
