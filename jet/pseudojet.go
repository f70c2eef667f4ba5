package jet

import (
	"math"
	"sort"

	"go-hep.org/x/hep/fmom"
)

// PseudoJet is a four-momentum with cached rapidity, azimuth and squared
// transverse momentum. It is both the input and the output of the clustering.
type PseudoJet struct {
	P4 fmom.PxPyPzE

	rap, phi, pt2 float64

	// indices of the input pseudo-jets merged into this one
	constituents []int
}

// New creates a pseudo-jet from its momentum components and energy.
func New(px, py, pz, e float64) PseudoJet {
	return FromP4(fmom.NewPxPyPzE(px, py, pz, e))
}

// FromP4 creates a pseudo-jet from a four-momentum.
func FromP4(p fmom.PxPyPzE) PseudoJet {
	return PseudoJet{
		P4:  p,
		rap: Rapidity(&p),
		phi: Phi(&p),
		pt2: Pt2(&p),
	}
}

func (j *PseudoJet) Px() float64 { return j.P4[0] }
func (j *PseudoJet) Py() float64 { return j.P4[1] }
func (j *PseudoJet) Pz() float64 { return j.P4[2] }
func (j *PseudoJet) E() float64  { return j.P4[3] }

// M returns the invariant mass, negative for spacelike four-momenta.
func (j *PseudoJet) M() float64 {
	m2 := j.E()*j.E() - j.Px()*j.Px() - j.Py()*j.Py() - j.Pz()*j.Pz()
	if m2 < 0 {
		return -math.Sqrt(-m2)
	}
	return math.Sqrt(m2)
}

func (j *PseudoJet) Rapidity() float64 { return j.rap }
func (j *PseudoJet) Phi() float64      { return j.phi }
func (j *PseudoJet) Pt2() float64      { return j.pt2 }
func (j *PseudoJet) Pt() float64       { return math.Sqrt(j.pt2) }

// Constituents returns the indices of the clustering inputs that were
// merged into j. Jets returned by the event adapter index the event's
// outgoing particles instead.
func (j *PseudoJet) Constituents() []int { return j.constituents }

// WithConstituents returns a copy of j with the given constituent indices.
func (j *PseudoJet) WithConstituents(idx []int) PseudoJet {
	c := *j
	c.constituents = idx
	return c
}

// merge returns the recombination of a and b in the E scheme.
func merge(a, b *PseudoJet) PseudoJet {
	j := FromP4(Add(&a.P4, &b.P4))
	j.constituents = make([]int, 0, len(a.constituents)+len(b.constituents))
	j.constituents = append(j.constituents, a.constituents...)
	j.constituents = append(j.constituents, b.constituents...)
	return j
}

// SumP4 returns the four-momentum sum of all jets.
func SumP4(jets []PseudoJet) fmom.PxPyPzE {
	var sum fmom.PxPyPzE
	for i := range jets {
		sum = Add(&sum, &jets[i].P4)
	}
	return sum
}

// SortByPt sorts jets by decreasing transverse momentum.
func SortByPt(jets []PseudoJet) {
	sort.SliceStable(jets, func(i, j int) bool {
		return jets[i].pt2 > jets[j].pt2
	})
}
