package jet

import (
	"fmt"
	"strings"
)

// Algorithm selects the distance measure of a sequential recombination.
type Algorithm int

const (
	AntiKt Algorithm = iota
	Kt
	CambridgeAachen
)

var algorithmNames = [...]string{
	AntiKt:          "anti-kt",
	Kt:              "kt",
	CambridgeAachen: "Cambridge/Aachen",
}

func (alg Algorithm) String() string {
	if alg < 0 || int(alg) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(alg))
	}
	return algorithmNames[alg]
}

// ParseAlgorithm accepts the algorithm names case-insensitively, plus the
// short forms "antikt", "ca" and "cambridge".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "anti-kt", "antikt", "anti_kt":
		return AntiKt, nil
	case "kt":
		return Kt, nil
	case "cambridge/aachen", "cambridge-aachen", "cambridge", "ca":
		return CambridgeAachen, nil
	}
	return 0, fmt.Errorf("jet: unknown algorithm %q", s)
}

// Set implements flag.Value.
func (alg *Algorithm) Set(s string) error {
	v, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*alg = v
	return nil
}

func (alg Algorithm) MarshalText() ([]byte, error) {
	return []byte(alg.String()), nil
}

func (alg *Algorithm) UnmarshalText(text []byte) error {
	return alg.Set(string(text))
}

// Measure is a sequential-recombination distance. Pair distances must have
// the form min(B_i, B_j)·ΔR²_ij/R², where B is the beam distance; Cluster
// relies on it to only look at geometric nearest neighbours.
type Measure interface {
	// Beam returns the distance d_iB between j and the beam.
	Beam(j *PseudoJet) float64
	// Pair returns the distance d_ij.
	Pair(a, b *PseudoJet) float64
}

// NewMeasure returns the distance measure of alg with radius r.
func NewMeasure(alg Algorithm, r float64) Measure {
	invR2 := 1 / (r * r)
	switch alg {
	case Kt:
		return ktMeasure{invR2}
	case CambridgeAachen:
		return caMeasure{invR2}
	default:
		return antiKtMeasure{invR2}
	}
}

type ktMeasure struct{ invR2 float64 }

func (m ktMeasure) Beam(j *PseudoJet) float64 { return j.pt2 }

func (m ktMeasure) Pair(a, b *PseudoJet) float64 {
	return min(a.pt2, b.pt2) * DeltaR2(a, b) * m.invR2
}

type antiKtMeasure struct{ invR2 float64 }

func (m antiKtMeasure) Beam(j *PseudoJet) float64 { return 1 / j.pt2 }

func (m antiKtMeasure) Pair(a, b *PseudoJet) float64 {
	return min(1/a.pt2, 1/b.pt2) * DeltaR2(a, b) * m.invR2
}

type caMeasure struct{ invR2 float64 }

func (m caMeasure) Beam(j *PseudoJet) float64 { return 1 }

func (m caMeasure) Pair(a, b *PseudoJet) float64 {
	return DeltaR2(a, b) * m.invR2
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
