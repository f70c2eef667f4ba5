package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/pkg/profile"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/evil"
	"github.com/decibelcooper/evil/event"
	"github.com/decibelcooper/evil/evio"
	"github.com/decibelcooper/evil/jet"
)

var (
	radii     = evil.FloatArrayFlags{Array: []float64{0.4}}
	algorithm = jet.AntiKt
	minPt     = flag.Float64("minpt", 0, "minimum jet transverse momentum (GeV)")
	maxPt     = flag.Float64("maxpt", 100, "upper edge of the leading jet pT histogram (GeV)")
	nBins     = flag.Int("nbins", 50, "number of pT bins")
	maxJets   = flag.Int("maxjets", 20, "upper edge of the jet multiplicity histogram")
	hadrons   = flag.Bool("hadrons", false, "also cluster hadrons")
	workers   = flag.Int("j", 0, "number of clustering workers, 0 for one per CPU")
	title     = flag.String("title", "", "plot title")
	prefix    = flag.String("prefix", "out", "output file prefix")
	verbosity = flag.String("v", "warn", "log verbosity: off, error, warn, info or debug")
	doProfile = flag.Bool("profile", false, "write a CPU profile")
)

func init() {
	flag.Var(&radii, "radius", "jet radius, may be repeated or comma separated")
	flag.Var(&algorithm, "algorithm", "clustering algorithm: anti-kt, kt or Cambridge/Aachen")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <event-files>...

Histograms the leading jet transverse momentum and the jet multiplicity of
all events, for each jet radius.

options:
`,
	)
	flag.PrintDefaults()
}

type hists struct {
	radius  float64
	leading *hbook.H1D
	nJets   *hbook.H1D
}

func main() {
	log.SetPrefix("jetpt: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 || len(radii.Array) == 0 || *nBins < 1 || *maxPt <= 0 || *maxJets < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *doProfile {
		defer profile.Start().Stop()
	}

	logger, err := evil.NewLogger(*verbosity)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	evts, err := evio.Load(ctx, flag.Args(), logger)
	if err != nil {
		log.Fatal(err)
	}

	sel := event.Partons
	if *hadrons {
		sel = event.PartonsAndHadrons
	}

	var all []hists
	for _, r := range radii.Array {
		settings := event.ClusterSettings{
			Enabled:    true,
			Definition: jet.Definition{Algorithm: algorithm, Radius: r, MinPt: *minPt},
			Selection:  sel,
			Logger:     logger,
		}
		h, err := makeHists(ctx, evts, settings)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("clustered events",
			zap.Stringer("definition", settings.Definition),
			zap.Int("events", len(evts)),
			zap.Float64("mean-jets", h.nJets.XMean()),
		)
		all = append(all, h)
	}

	ptPlot := newPlot("leading jet pT (GeV)")
	nPlot := newPlot("number of jets")
	for i, h := range all {
		label := fmt.Sprintf("R = %v", h.radius)
		addHist(ptPlot, h.leading, label, lineColor(i))
		addHist(nPlot, h.nJets, label, lineColor(i))
	}

	for _, out := range []struct {
		p    *plot.Plot
		name string
	}{
		{ptPlot, *prefix + "_pt"},
		{nPlot, *prefix + "_njets"},
	} {
		if out.p.Y.Max <= out.p.Y.Min {
			// no entries
			out.p.Y.Max = out.p.Y.Min + 1
		}
		for _, ext := range []string{".pdf", ".png"} {
			if err := out.p.Save(6*vg.Inch, 4*vg.Inch, out.name+ext); err != nil {
				log.Fatal(err)
			}
		}
	}
}

func makeHists(ctx context.Context, evts []event.Event, settings event.ClusterSettings) (hists, error) {
	h := hists{
		radius:  settings.Definition.Radius,
		leading: hbook.NewH1D(*nBins, 0, *maxPt),
		nJets:   hbook.NewH1D(*maxJets+1, -0.5, float64(*maxJets)+0.5),
	}

	jets, err := settings.ClusterAll(ctx, evts, *workers)
	if err != nil {
		return h, err
	}
	for _, js := range jets {
		h.nJets.Fill(float64(len(js)), 1)
		if len(js) == 0 {
			continue
		}
		jet.SortByPt(js)
		h.leading.Fill(js[0].Pt(), 1)
	}
	return h, nil
}

func newPlot(xLabel string) *plot.Plot {
	p, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}
	p.Title.Text = *title
	p.X.Label.Text = xLabel
	p.X.Tick.Marker = evil.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = evil.PreciseTicks{NSuggestedTicks: 5}
	p.Legend.Top = true
	return p
}

func addHist(p *plot.Plot, hist *hbook.H1D, label string, c color.Color) {
	h := hplot.NewH1D(hist)
	h.FillColor = nil
	h.LineStyle.Color = c
	h.Infos.Style = hplot.HInfoNone

	p.Add(h)
	p.Legend.Add(label, h)
}

func lineColor(i int) color.Color {
	switch i {
	case 0:
		return color.RGBA{A: 255}
	case 1:
		return color.RGBA{G: 255, A: 255}
	case 2:
		return color.RGBA{B: 255, A: 255}
	case 3:
		return color.RGBA{R: 255, B: 127, G: 127, A: 255}
	}
	return plotutil.Color(i)
}
