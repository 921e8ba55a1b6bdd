package thermo

//go:generate mockgen -source=oracle.go -destination=mocks/oracle_mock.go -package=mocks Oracle

// Oracle returns the melting temperature (°C) of a perfect-match duplex.
// Implementations must be deterministic; GC-richer and longer fragments
// should melt higher.
type Oracle interface {
	MeltingTemp(seq string) float64
}

// NearestNeighbor is the default Oracle backed by Tm.
type NearestNeighbor struct {
	Cond Conditions
}

// Default uses DefaultConditions.
var Default Oracle = NearestNeighbor{Cond: DefaultConditions}

// MeltingTemp returns 0 for fragments the model cannot score (fewer than 2
// bases or non-ACGT); rule inputs are always valid templates.
func (nn NearestNeighbor) MeltingTemp(seq string) float64 {
	res, err := Tm(seq, TmInput{
		CT: nn.Cond.PrimerTotalM,
		Na: nn.Cond.EffectiveMonovalent(),
		X:  4,
	})
	if err != nil {
		return 0
	}
	return res.TmC
}
