package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/decibelcooper/evil"
	"github.com/decibelcooper/evil/eventplot"
	"github.com/decibelcooper/evil/evio"
	"github.com/decibelcooper/evil/jet"
)

var (
	configFile = flag.String("config", "", "gcfg configuration file")
	eventNum   = flag.Int("event", 0, "index of the event to draw, counted over all input files")
	kind       = flag.String("kind", "yphi", "plot kind: yphi or ylogpt")
	output     = flag.String("output", "out.svg", "output file (png, svg, pdf or eps)")
	cluster    = flag.Bool("cluster", false, "cluster the event into jets")
	algorithm  = jet.AntiKt
	radius     = flag.Float64("radius", 0.4, "jet radius")
	minPt      = flag.Float64("minpt", 0, "minimum jet transverse momentum (GeV)")
	hadrons    = flag.Bool("hadrons", false, "also cluster hadrons")
	verbosity  = flag.String("v", "warn", "log verbosity: off, error, warn, info or debug")
	doProfile  = flag.Bool("profile", false, "write a CPU profile")
	printCfg   = flag.Bool("example-config", false, "print an example configuration file and exit")
)

func init() {
	flag.Var(&algorithm, "algorithm", "clustering algorithm: anti-kt, kt or Cambridge/Aachen")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <event-files>...

Draws one event of LHEF, HepMC or proio files, optionally with its jets.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("evil: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if *printCfg {
		fmt.Println(evil.ExampleConfigFile)
		return
	}
	if flag.NArg() < 1 {
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

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	plotKind, err := eventplot.ParseKind(cfg.Plot.Kind)
	if err != nil {
		log.Fatal(err)
	}

	evts, err := evio.Load(context.Background(), flag.Args(), logger)
	if err != nil {
		log.Fatal(err)
	}
	if *eventNum < 0 || *eventNum >= len(evts) {
		log.Fatalf("event %d out of range, %d events read", *eventNum, len(evts))
	}
	evt := &evts[*eventNum]

	settings := cfg.Settings()
	settings.Logger = logger
	jets, err := settings.Jets(evt)
	if err != nil {
		log.Fatal(err)
	}
	jet.SortByPt(jets)
	logger.Info("event clustered",
		zap.Int("event", *eventNum),
		zap.Int("particles", len(evt.Out)),
		zap.Int("jets", len(jets)),
		zap.Stringer("definition", settings.Definition),
	)

	p, err := eventplot.Draw(plotKind, evt, jets, settings.Definition.Radius)
	if err != nil {
		log.Fatal(err)
	}
	p.Title.Text = fmt.Sprintf("event %d", *eventNum)
	if settings.Enabled {
		p.Title.Text += ", " + settings.Definition.String()
	}

	if err := eventplot.Save(p, cfg.Plot.Width, cfg.Plot.Height, *output); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// given on the command line on top of it.
func loadConfig() (evil.Config, error) {
	cfg := evil.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = evil.ReadConfig(*configFile); err != nil {
			return cfg, err
		}
	}
	err := cfg.ApplyFlags(flag.CommandLine)
	return cfg, err
}
