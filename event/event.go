package event

import (
	"math"

	"go-hep.org/x/hep/fmom"

	"github.com/decibelcooper/evil/jet"
)

// Particle is an outgoing particle of an event. Y, Phi and Pt are computed
// once by NewParticle.
type Particle struct {
	ID int
	P  fmom.PxPyPzE

	Y, Phi, Pt float64
}

func NewParticle(id int, p fmom.PxPyPzE) Particle {
	return Particle{
		ID:  id,
		P:   p,
		Y:   jet.Rapidity(&p),
		Phi: jet.Phi(&p),
		Pt:  jet.Pt(&p),
	}
}

func (p *Particle) IsParton() bool       { return IsParton(p.ID) }
func (p *Particle) IsHadron() bool       { return IsHadron(p.ID) }
func (p *Particle) Name() string         { return Name(p.ID) }
func (p *Particle) Spin() SpinType       { return Spin(p.ID) }

// IsFinite reports whether the four-momentum and the rapidity are finite.
func (p *Particle) IsFinite() bool {
	for _, v := range p.P {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Event is the list of outgoing particles of a collision, in file order.
type Event struct {
	Out []Particle
}

// RapidityRange returns the smallest and largest finite rapidity of the
// outgoing particles, or (0, 0) for an event without any.
func (evt *Event) RapidityRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range evt.Out {
		y := evt.Out[i].Y
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
