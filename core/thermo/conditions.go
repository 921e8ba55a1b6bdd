// core/thermo/conditions.go
package thermo

import (
	"fmt"
	"math"
	"strings"
)

// Conditions is a lightweight holder for the wet-lab knobs the oracle uses.
type Conditions struct {
	NaM          float64 // monovalent cations, mol/L
	MgM          float64 // magnesium, mol/L (0 = ignore)
	PrimerTotalM float64 // total strand concentration, mol/L
}

// DefaultConditions: 50 mM Na+, 25 nM of each strand.
var DefaultConditions = Conditions{
	NaM:          0.05,
	PrimerTotalM: 5e-8,
}

// Validate rejects non-positive salt or strand concentrations.
func (c Conditions) Validate() error {
	if c.NaM <= 0 {
		return fmt.Errorf("Na+ concentration must be > 0, got %g M", c.NaM)
	}
	if c.MgM < 0 {
		return fmt.Errorf("Mg2+ concentration must be >= 0, got %g M", c.MgM)
	}
	if c.PrimerTotalM <= 0 {
		return fmt.Errorf("strand concentration must be > 0, got %g M", c.PrimerTotalM)
	}
	return nil
}

// EffectiveMonovalent folds Mg2+ into a Na+-equivalent (Owczarzy-lite:
// Na + 3.8*sqrt(Mg)) when magnesium is set.
func (c Conditions) EffectiveMonovalent() float64 {
	if c.MgM > 0 {
		return c.NaM + 3.8*math.Sqrt(c.MgM)
	}
	return c.NaM
}

// ParseConc parses "50mM", "250nM", "3uM" → mol/L.
func ParseConc(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := ""
	val := 0.0
	n, err := fmt.Sscanf(s, "%f%s", &val, &unit)
	if n == 0 && err != nil {
		return 0, fmt.Errorf("invalid conc %q: %w", s, err)
	}
	switch unit {
	case "m", "":
		return val, nil
	case "mm":
		return val * 1e-3, nil
	case "um", "µm", "μm":
		return val * 1e-6, nil
	case "nm":
		return val * 1e-9, nil
	default:
		return 0, fmt.Errorf("unknown unit %q in %q", unit, s)
	}
}
