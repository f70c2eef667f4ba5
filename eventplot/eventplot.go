// Package eventplot draws the outgoing particles and the jets of an event in
// the rapidity/azimuth and rapidity/transverse momentum planes.
package eventplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/decibelcooper/evil"
	"github.com/decibelcooper/evil/event"
	"github.com/decibelcooper/evil/jet"
)

// Kind is the plane an event is drawn in.
type Kind int

const (
	YPhi Kind = iota
	YLogPt
)

func (k Kind) String() string {
	if k == YLogPt {
		return "ylogpt"
	}
	return "yphi"
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "yphi", "y-phi":
		return YPhi, nil
	case "ylogpt", "y-logpt":
		return YLogPt, nil
	}
	return 0, fmt.Errorf("eventplot: unknown plot kind %q", s)
}

const (
	phiAxisMax  = 3.25
	glyphRadius = 3 * vg.Millimeter / 2
	circlePts   = 64
)

var jetColor = color.NRGBA{R: 255, G: 140, A: 64}

// palette indices into plotutil.DefaultColors, by |id|
var colorIndex = map[int]int{
	1: 0, 2: 1, 3: 2, 4: 3, 5: 4,
	11: 5, 12: 6, 13: 0, 14: 1, 15: 2, 16: 3,
	21: 4, 22: 5, 23: 6, 24: 0, 25: 1,
}

// particleStyle draws bosons as circles and fermions as squares, hollow for
// antiparticles.
func particleStyle(id int) draw.GlyphStyle {
	style := draw.GlyphStyle{
		Color:  color.Gray{Y: 128},
		Radius: glyphRadius,
		Shape:  draw.PyramidGlyph{},
	}
	if i, ok := colorIndex[abs(id)]; ok {
		style.Color = plotutil.Color(i)
	}
	anti := event.IsAntiparticle(id)
	switch event.Spin(id) {
	case event.Boson:
		style.Shape = draw.CircleGlyph{}
		if anti {
			style.Shape = draw.RingGlyph{}
		}
	case event.Fermion:
		style.Shape = draw.BoxGlyph{}
		if anti {
			style.Shape = draw.SquareGlyph{}
		}
	}
	return style
}

// Draw draws evt and its jets of radius r.
func Draw(kind Kind, evt *event.Event, jets []jet.PseudoJet, r float64) (*plot.Plot, error) {
	if kind == YLogPt {
		return DrawYLogPt(evt, jets, r)
	}
	return DrawYPhi(evt, jets, r)
}

// DrawYPhi draws the particles at (y, φ) and each jet as a disc of radius r,
// repeated across the φ = ±π boundary.
func DrawYPhi(evt *event.Event, jets []jet.PseudoJet, r float64) (*plot.Plot, error) {
	p, err := newPlot()
	if err != nil {
		return nil, err
	}
	p.Y.Label.Text = "φ"
	p.Y.Min, p.Y.Max = -phiAxisMax, phiAxisMax
	p.Y.Tick.Marker = evil.PhiTicks{}

	for i := range jets {
		for _, shift := range []float64{-2 * math.Pi, 0, 2 * math.Pi} {
			disc := JetCircle(jets[i].Rapidity(), jets[i].Phi()+shift, r)
			if err := addJet(p, disc); err != nil {
				return nil, err
			}
		}
	}

	err = addParticles(p, evt, func(pt *event.Particle) (x, y float64) {
		return evil.YToCoord(pt.Y), pt.Phi
	})
	return p, err
}

// DrawYLogPt draws the particles at (y, log10 pT) and each jet as a box
// spanning y ± r up to its transverse momentum.
func DrawYLogPt(evt *event.Event, jets []jet.PseudoJet, r float64) (*plot.Plot, error) {
	p, err := newPlot()
	if err != nil {
		return nil, err
	}
	lo, hi := LogPtRange(evt, jets)
	p.Y.Label.Text = "pT (GeV)"
	p.Y.Min, p.Y.Max = lo, hi
	p.Y.Tick.Marker = evil.LogTicks{}

	for i := range jets {
		if jets[i].Pt2() <= 0 {
			continue
		}
		box := JetBox(jets[i].Rapidity(), math.Log10(jets[i].Pt()), r, lo)
		if err := addJet(p, box); err != nil {
			return nil, err
		}
	}

	err = addParticles(p, evt, func(pt *event.Particle) (x, y float64) {
		return evil.YToCoord(pt.Y), math.Log10(pt.Pt)
	})
	return p, err
}

// LogPtRange returns the log10 pT axis range covering the particles and
// jets, with a margin of a tenth of the range and at least 0.1 decades.
// Without any positive pT the range covers 1 to 10 GeV.
func LogPtRange(evt *event.Event, jets []jet.PseudoJet) (lo, hi float64) {
	ptMin, ptMax := math.Inf(1), 0.
	update := func(pt float64) {
		if pt <= 0 || math.IsNaN(pt) || math.IsInf(pt, 0) {
			return
		}
		ptMin = math.Min(ptMin, pt)
		ptMax = math.Max(ptMax, pt)
	}
	for i := range evt.Out {
		update(evt.Out[i].Pt)
	}
	for i := range jets {
		update(jets[i].Pt())
	}
	if ptMin > ptMax {
		ptMin, ptMax = 1, 10
	}
	lo, hi = math.Log10(ptMin), math.Log10(ptMax)
	margin := 0.1 * math.Max(hi-lo, 1)
	return lo - margin, hi + margin
}

// JetCircle returns the outline of a disc of radius r around (y, phi), with
// the rapidity mapped onto the compressed axis.
func JetCircle(y, phi, r float64) plotter.XYs {
	pts := make(plotter.XYs, circlePts)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circlePts
		pts[i].X = evil.YToCoord(y + r*math.Cos(a))
		pts[i].Y = phi + r*math.Sin(a)
	}
	return pts
}

// JetBox returns the outline of the box from (y-r, bottom) to
// (y+r, logPt), with the rapidity mapped onto the compressed axis.
func JetBox(y, logPt, r, bottom float64) plotter.XYs {
	x0, x1 := evil.YToCoord(y-r), evil.YToCoord(y+r)
	return plotter.XYs{
		{X: x0, Y: bottom},
		{X: x1, Y: bottom},
		{X: x1, Y: logPt},
		{X: x0, Y: logPt},
	}
}

func newPlot() (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = "y"
	p.X.Min, p.X.Max = -1.05*evil.RapidityAxisMax, 1.05*evil.RapidityAxisMax
	p.X.Tick.Marker = evil.RapidityTicks{}
	p.Legend.Top = true
	return p, nil
}

func addJet(p *plot.Plot, outline plotter.XYs) error {
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	poly.Color = jetColor
	poly.LineStyle.Width = 0
	p.Add(poly)
	return nil
}

// addParticles adds one scatter per particle id, with a legend entry each.
// Particles without finite coordinates are left out.
func addParticles(p *plot.Plot, evt *event.Event, pos func(*event.Particle) (x, y float64)) error {
	byID := make(map[int]plotter.XYs)
	for i := range evt.Out {
		pt := &evt.Out[i]
		x, y := pos(pt)
		if !finite(x) || !finite(y) {
			continue
		}
		byID[pt.ID] = append(byID[pt.ID], struct{ X, Y float64 }{x, y})
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		s, err := plotter.NewScatter(byID[id])
		if err != nil {
			return err
		}
		s.GlyphStyle = particleStyle(id)
		p.Add(s)
		p.Legend.Add(event.Name(id), s)
	}
	return nil
}

// Save writes p to path, in the format given by its extension (png, svg,
// pdf, eps, ...), with a size in inches.
func Save(p *plot.Plot, width, height float64, path string) error {
	return p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
