package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decibelcooper/evil"
	"github.com/decibelcooper/evil/event"
	"github.com/decibelcooper/evil/evio"
	"github.com/decibelcooper/evil/jet"
)

var (
	configFile = flag.String("config", "", "gcfg configuration file; only the Clustering section is used")
	algorithm  = jet.AntiKt
	radius     = flag.Float64("radius", 0.4, "jet radius")
	minPt      = flag.Float64("minpt", 0, "minimum jet transverse momentum (GeV)")
	hadrons    = flag.Bool("hadrons", false, "also cluster hadrons")
	workers    = flag.Int("j", 0, "number of clustering workers, 0 for one per CPU")
	verbosity  = flag.String("v", "warn", "log verbosity: off, error, warn, info or debug")
)

func init() {
	flag.Var(&algorithm, "algorithm", "clustering algorithm: anti-kt, kt or Cambridge/Aachen")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <event-files>...

Prints the jets of every event, ordered by transverse momentum.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("dumpjets: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	logger, err := evil.NewLogger(*verbosity)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := evil.DefaultConfig()
	if *configFile != "" {
		if cfg, err = evil.ReadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.ApplyFlags(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	cfg.Clustering.Enabled = true
	settings := cfg.Settings()
	settings.Logger = logger

	ctx := context.Background()
	evts, err := evio.Load(ctx, flag.Args(), logger)
	if err != nil {
		log.Fatal(err)
	}
	jets, err := settings.ClusterAll(ctx, evts, *workers)
	if err != nil {
		log.Fatal(err)
	}

	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, "# %v\n", settings.Definition)
	for i := range evts {
		dump(w, i, &evts[i], jets[i])
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

func dump(w io.Writer, i int, evt *event.Event, jets []jet.PseudoJet) {
	jet.SortByPt(jets)
	lo, hi := evt.RapidityRange()
	fmt.Fprintf(w, "event %d: %d particles in y [%.2f, %.2f], %d jets\n",
		i, len(evt.Out), lo, hi, len(jets),
	)
	for k := range jets {
		j := &jets[k]
		fmt.Fprintf(w, "  %3d  y=%8.4f  phi=%8.4f  pt=%10.4f  m=%9.4f  n=%d\n",
			k, j.Rapidity(), j.Phi(), j.Pt(), j.M(), len(j.Constituents()),
		)
	}
}
