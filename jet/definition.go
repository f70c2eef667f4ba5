package jet

import (
	"fmt"
	"math"
)

// Definition is a jet clustering configuration.
type Definition struct {
	Algorithm Algorithm
	Radius    float64
	MinPt     float64
}

// DefaultDefinition is anti-kt with R = 0.4 and no transverse momentum cut.
func DefaultDefinition() Definition {
	return Definition{Algorithm: AntiKt, Radius: 0.4}
}

// Validate reports configurations that cannot be clustered. A zero radius is
// accepted: it disables merging for kt and anti-kt.
func (def Definition) Validate() error {
	switch def.Algorithm {
	case AntiKt, Kt, CambridgeAachen:
	default:
		return fmt.Errorf("jet: invalid algorithm %v", def.Algorithm)
	}
	if math.IsNaN(def.Radius) || math.IsInf(def.Radius, 0) || def.Radius < 0 {
		return fmt.Errorf("jet: invalid radius %v", def.Radius)
	}
	if math.IsNaN(def.MinPt) || math.IsInf(def.MinPt, 0) || def.MinPt < 0 {
		return fmt.Errorf("jet: invalid minimum transverse momentum %v", def.MinPt)
	}
	return nil
}

func (def Definition) String() string {
	return fmt.Sprintf("%v R=%g pT>%g", def.Algorithm, def.Radius, def.MinPt)
}

// Measure returns the distance measure of def.
func (def Definition) Measure() Measure {
	return NewMeasure(def.Algorithm, def.Radius)
}

// Cluster clusters particles and keeps the jets with pT > MinPt.
// The cut is applied once clustering is complete.
func (def Definition) Cluster(particles []PseudoJet) []PseudoJet {
	return def.Cut(Cluster(particles, def.Measure()))
}

// Cut filters jets in place, keeping those with pT > MinPt.
func (def Definition) Cut(jets []PseudoJet) []PseudoJet {
	minPt2 := def.MinPt * def.MinPt
	out := jets[:0]
	for _, j := range jets {
		if j.pt2 > minPt2 {
			out = append(out, j)
		}
	}
	return out
}
