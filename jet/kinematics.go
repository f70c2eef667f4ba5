package jet

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Pt2 returns the squared transverse momentum px² + py².
func Pt2(p fmom.P4) float64 {
	px, py := p.Px(), p.Py()
	return px*px + py*py
}

// Pt returns the transverse momentum.
func Pt(p fmom.P4) float64 {
	return math.Sqrt(Pt2(p))
}

// Rapidity returns atanh(pz/E). Unphysical four-momenta (|pz| >= E or
// E == 0) give ±Inf or NaN; callers decide what to do with those.
func Rapidity(p fmom.P4) float64 {
	return math.Atanh(p.Pz() / p.E())
}

// Phi returns the azimuthal angle atan2(py, px) in (-π, π].
func Phi(p fmom.P4) float64 {
	phi := math.Atan2(p.Py(), p.Px())
	if phi == -math.Pi {
		phi = math.Pi
	}
	return phi
}

// DeltaPhi returns phi1 - phi2 wrapped into (-π, π].
func DeltaPhi(phi1, phi2 float64) float64 {
	dphi := phi1 - phi2
	switch {
	case dphi > math.Pi:
		dphi -= 2 * math.Pi
	case dphi <= -math.Pi:
		dphi += 2 * math.Pi
	}
	return dphi
}

// DeltaR2 returns Δy² + Δφ² between two pseudo-jets.
func DeltaR2(a, b *PseudoJet) float64 {
	dy := a.rap - b.rap
	dphi := DeltaPhi(a.phi, b.phi)
	return dy*dy + dphi*dphi
}

// Add returns the component-wise sum of two four-momenta.
func Add(a, b fmom.P4) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(
		a.Px()+b.Px(),
		a.Py()+b.Py(),
		a.Pz()+b.Pz(),
		a.E()+b.E(),
	)
}
