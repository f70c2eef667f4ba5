package event

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decibelcooper/evil/jet"
)

// Selection picks the outgoing particles that enter the jet clustering.
type Selection int

const (
	// Partons selects quarks and gluons.
	Partons Selection = iota
	// PartonsAndHadrons also selects the hadrons of IsHadron.
	PartonsAndHadrons
)

func (s Selection) Accepts(p *Particle) bool {
	switch s {
	case PartonsAndHadrons:
		return p.IsParton() || p.IsHadron()
	default:
		return p.IsParton()
	}
}

// Inputs returns the clusterable particles of evt as pseudo-jets, together
// with their indices in evt.Out. Particles with non-finite momenta are
// skipped and counted.
func Inputs(evt *Event, sel Selection) (parts []jet.PseudoJet, idx []int, skipped int) {
	for i := range evt.Out {
		p := &evt.Out[i]
		if !sel.Accepts(p) {
			continue
		}
		if !p.IsFinite() {
			skipped++
			continue
		}
		parts = append(parts, jet.FromP4(p.P))
		idx = append(idx, i)
	}
	return parts, idx, skipped
}

// Cluster clusters the selected particles of evt and applies the minimum
// transverse momentum cut of def. The constituents of the returned jets are
// indices into evt.Out. The jets are in no particular order.
func Cluster(evt *Event, def jet.Definition, sel Selection) ([]jet.PseudoJet, error) {
	jets, _, err := cluster(evt, def, sel)
	return jets, err
}

func cluster(evt *Event, def jet.Definition, sel Selection) ([]jet.PseudoJet, int, error) {
	if err := def.Validate(); err != nil {
		return nil, 0, fmt.Errorf("event: %w", err)
	}

	parts, idx, skipped := Inputs(evt, sel)
	jets := def.Cluster(parts)
	for i := range jets {
		cs := jets[i].Constituents()
		out := make([]int, len(cs))
		for k, c := range cs {
			out[k] = idx[c]
		}
		jets[i] = jets[i].WithConstituents(out)
	}
	return jets, skipped, nil
}

// ClusterSettings is the application-level clustering configuration.
type ClusterSettings struct {
	Enabled    bool
	Definition jet.Definition
	Selection  Selection

	// Logger reports skipped particles. A nil Logger discards them.
	Logger *zap.Logger
}

// Jets returns the jets of evt, or nil when clustering is disabled.
// Selected particles with non-finite momenta are left out and logged.
func (s ClusterSettings) Jets(evt *Event) ([]jet.PseudoJet, error) {
	if !s.Enabled {
		return nil, nil
	}
	jets, skipped, err := cluster(evt, s.Definition, s.Selection)
	if skipped > 0 {
		s.logger().Warn("skipped non-finite particles",
			zap.Int("skipped", skipped),
			zap.Int("particles", len(evt.Out)),
		)
	}
	return jets, err
}

func (s ClusterSettings) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
