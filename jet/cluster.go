package jet

import (
	"math"
)

// Cluster runs the sequential recombination of particles with measure m and
// returns every final jet, without any transverse momentum cut. The input
// slice is not modified. Constituents of the returned jets index particles.
func Cluster(particles []PseudoJet, m Measure) []PseudoJet {
	if len(particles) == 0 {
		return nil
	}

	ws := newWorkspace(particles, m)
	jets := make([]PseudoJet, 0, len(particles))
	for len(ws.active) > 0 {
		i, j := ws.closest()
		if j < 0 {
			jets = append(jets, ws.jets[i])
			ws.finalize(i)
			continue
		}
		ws.recombine(i, j)
	}
	return jets
}

// workspace is the working set of a clustering. Pseudo-jets live in an arena
// and are referred to by their arena index; merged jets are appended, so the
// arena holds at most 2n-1 entries.
type workspace struct {
	m    Measure
	jets []PseudoJet
	beam []float64 // cached d_iB
	nn   []int     // geometric nearest neighbour, -1 if none
	nnR2 []float64 // ΔR² to nn

	active []int // arena indices of live jets
	pos    []int // position of each arena index in active, -1 once removed
}

func newWorkspace(particles []PseudoJet, m Measure) *workspace {
	n := len(particles)
	ws := &workspace{
		m:      m,
		jets:   make([]PseudoJet, 0, 2*n-1),
		beam:   make([]float64, 0, 2*n-1),
		nn:     make([]int, 0, 2*n-1),
		nnR2:   make([]float64, 0, 2*n-1),
		active: make([]int, 0, n),
		pos:    make([]int, 0, 2*n-1),
	}
	for i := range particles {
		j := particles[i]
		j.constituents = []int{i}
		ws.push(j)
	}
	for _, i := range ws.active {
		ws.updateNN(i)
	}
	return ws
}

// push adds j to the arena and to the active set.
func (ws *workspace) push(j PseudoJet) int {
	idx := len(ws.jets)
	ws.jets = append(ws.jets, j)
	ws.beam = append(ws.beam, ws.m.Beam(&ws.jets[idx]))
	ws.nn = append(ws.nn, -1)
	ws.nnR2 = append(ws.nnR2, math.Inf(1))
	ws.pos = append(ws.pos, len(ws.active))
	ws.active = append(ws.active, idx)
	return idx
}

// remove drops i from the active set in O(1).
func (ws *workspace) remove(i int) {
	p := ws.pos[i]
	last := ws.active[len(ws.active)-1]
	ws.active[p] = last
	ws.pos[last] = p
	ws.active = ws.active[:len(ws.active)-1]
	ws.pos[i] = -1
}

// updateNN recomputes the nearest neighbour of i over the active set.
func (ws *workspace) updateNN(i int) {
	ws.nn[i] = -1
	ws.nnR2[i] = math.Inf(1)
	for _, k := range ws.active {
		if k == i {
			continue
		}
		if d := DeltaR2(&ws.jets[i], &ws.jets[k]); d < ws.nnR2[i] {
			ws.nn[i] = k
			ws.nnR2[i] = d
		}
	}
}

// closest returns the pair with the smallest distance, or (i, -1) when the
// beam distance of i is the smallest. The first active jet is the fallback,
// so a step always makes progress even when every distance is NaN or +Inf.
func (ws *workspace) closest() (int, int) {
	bi, bj := ws.active[0], -1
	best := ws.beam[bi]
	for _, i := range ws.active {
		if d := ws.beam[i]; d < best {
			bi, bj, best = i, -1, d
		}
		k := ws.nn[i]
		if k < 0 {
			continue
		}
		if d := ws.m.Pair(&ws.jets[i], &ws.jets[k]); d < best {
			bi, bj, best = i, k, d
		}
	}
	return bi, bj
}

func (ws *workspace) finalize(i int) {
	ws.remove(i)
	for _, k := range ws.active {
		if ws.nn[k] == i {
			ws.updateNN(k)
		}
	}
}

func (ws *workspace) recombine(i, j int) {
	ws.remove(i)
	ws.remove(j)
	n := ws.push(merge(&ws.jets[i], &ws.jets[j]))
	for _, k := range ws.active {
		if k == n {
			continue
		}
		d := DeltaR2(&ws.jets[k], &ws.jets[n])
		if d < ws.nnR2[n] {
			ws.nn[n] = k
			ws.nnR2[n] = d
		}
		switch {
		case ws.nn[k] == i || ws.nn[k] == j:
			ws.updateNN(k)
		case d < ws.nnR2[k]:
			ws.nn[k] = n
			ws.nnR2[k] = d
		}
	}
}
