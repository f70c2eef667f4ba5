package jet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go-hep.org/x/hep/fmom"
)

func TestPhiRange(t *testing.T) {
	for _, tc := range []struct {
		px, py float64
		want   float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{0, -1, -math.Pi / 2},
		{-1, 0, math.Pi},
		{-1, math.Copysign(0, -1), math.Pi},
		{0, 0, 0},
	} {
		p := fmom.NewPxPyPzE(tc.px, tc.py, 0, 1)
		assert.InDelta(t, tc.want, Phi(&p), 1e-15, "px=%v py=%v", tc.px, tc.py)
	}
}

func TestDeltaPhiWraps(t *testing.T) {
	eps := 1e-3
	d := DeltaPhi(math.Pi-eps, -math.Pi+eps)
	assert.InDelta(t, -2*eps, d, 1e-12)
	d = DeltaPhi(-math.Pi+eps, math.Pi-eps)
	assert.InDelta(t, 2*eps, d, 1e-12)
	assert.Equal(t, math.Pi, DeltaPhi(math.Pi, 0))
	assert.Equal(t, math.Pi, DeltaPhi(0, math.Pi))
}

func TestDeltaR2AcrossBoundary(t *testing.T) {
	eps := 0.01
	a := massless(10, 0.5, math.Pi-eps)
	b := massless(10, 0.5, -math.Pi+eps)
	assert.InDelta(t, 4*eps*eps, DeltaR2(&a, &b), 1e-10)
}

func TestRapidityAndPt(t *testing.T) {
	p := fmom.NewPxPyPzE(3, 4, 0, 5)
	assert.Equal(t, 5.0, Pt(&p))
	assert.Equal(t, 25.0, Pt2(&p))
	assert.Equal(t, 0.0, Rapidity(&p))

	j := massless(20, 1.5, -2)
	assert.InDelta(t, 1.5, j.Rapidity(), 1e-12)
	assert.InDelta(t, -2, j.Phi(), 1e-12)
	assert.InDelta(t, 20, j.Pt(), 1e-12)
	assert.InDelta(t, 0, j.M(), 1e-5)

	// unphysical inputs are not masked
	p = fmom.NewPxPyPzE(0, 0, 1, 1)
	assert.True(t, math.IsInf(Rapidity(&p), 1))
	p = fmom.NewPxPyPzE(0, 0, 0, 0)
	assert.True(t, math.IsNaN(Rapidity(&p)))
}

func TestAdd(t *testing.T) {
	a := fmom.NewPxPyPzE(1, 2, 3, 10)
	b := fmom.NewPxPyPzE(-1, 0.5, 2, 5)
	sum := Add(&a, &b)
	assert.Equal(t, fmom.NewPxPyPzE(0, 2.5, 5, 15), sum)
}

// massless builds a massless pseudo-jet from (pT, y, φ).
func massless(pt, y, phi float64) PseudoJet {
	return New(
		pt*math.Cos(phi),
		pt*math.Sin(phi),
		pt*math.Sinh(y),
		pt*math.Cosh(y),
	)
}
