package evio

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/hepmc"
	"go-hep.org/x/hep/lhef"

	"github.com/decibelcooper/evil/event"
)

// statusFinal is the final-state status code shared by LHEF and HepMC.
const statusFinal = 1

// builder collects the outgoing particles of one event.
type builder struct {
	evt event.Event
}

func (b *builder) add(id, status int, px, py, pz, e float64) {
	if status != statusFinal {
		return
	}
	b.evt.Out = append(b.evt.Out, event.NewParticle(id, fmom.NewPxPyPzE(px, py, pz, e)))
}

// ReadLHEF reads all events of a Les Houches Event File.
func ReadLHEF(r io.Reader) ([]event.Event, error) {
	dec, err := lhef.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("evio: LHEF header: %w", err)
	}

	var evts []event.Event
	for {
		hepeup, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return evts, fmt.Errorf("evio: LHEF event %d: %w", len(evts), err)
		}

		var b builder
		for i := range hepeup.IDUP {
			p := hepeup.PUP[i]
			b.add(int(hepeup.IDUP[i]), int(hepeup.ISTUP[i]), p[0], p[1], p[2], p[3])
		}
		evts = append(evts, b.evt)
	}
	return evts, nil
}

// ReadHepMC reads all events of a HepMC2 ASCII file. Particles are kept in
// barcode order.
func ReadHepMC(r io.Reader) ([]event.Event, error) {
	dec := hepmc.NewDecoder(r)

	var evts []event.Event
	for {
		var evt hepmc.Event
		err := dec.Decode(&evt)
		if err == io.EOF {
			break
		}
		if err != nil {
			return evts, fmt.Errorf("evio: HepMC event %d: %w", len(evts), err)
		}

		barcodes := make([]int, 0, len(evt.Particles))
		for bc := range evt.Particles {
			barcodes = append(barcodes, bc)
		}
		sort.Ints(barcodes)

		var b builder
		for _, bc := range barcodes {
			p := evt.Particles[bc]
			m := &p.Momentum
			b.add(int(p.PdgID), int(p.Status), m.Px(), m.Py(), m.Pz(), m.E())
		}
		evts = append(evts, b.evt)
	}
	return evts, nil
}

// ReadProio reads the "GenStable" particles of all events of a proio file.
func ReadProio(name string) ([]event.Event, error) {
	reader, err := proio.Open(name)
	if err != nil {
		return nil, fmt.Errorf("evio: %w", err)
	}
	defer reader.Close()

	var evts []event.Event
	for evt := range reader.ScanEvents() {
		var b builder
		for _, id := range evt.TaggedEntries("GenStable") {
			part, ok := evt.GetEntry(id).(*eic.Particle)
			if !ok {
				continue
			}
			px := float64(part.GetP().GetX())
			py := float64(part.GetP().GetY())
			pz := float64(part.GetP().GetZ())
			mass := float64(part.GetMass())
			e := math.Sqrt(px*px + py*py + pz*pz + mass*mass)
			b.add(int(part.GetPdg()), statusFinal, px, py, pz, e)
		}
		evts = append(evts, b.evt)
	}
	return evts, nil
}
