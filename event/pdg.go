package event

import "fmt"

const gluon = 21

// IsParton reports whether id is a quark (|id| <= 5) or a gluon.
func IsParton(id int) bool {
	return id == gluon || abs(id) <= 5
}

// IsHadron reports whether |id| is one of the common light, strange, charm
// and bottom hadrons.
func IsHadron(id int) bool {
	_, ok := hadrons[abs(id)]
	return ok
}

var hadrons = map[int]struct{}{
	// light and strange mesons
	111: {}, 211: {}, 113: {}, 213: {}, 221: {}, 223: {}, 331: {}, 333: {},
	130: {}, 310: {}, 311: {}, 321: {}, 313: {}, 323: {},
	// charm and bottom mesons, quarkonia
	411: {}, 421: {}, 431: {}, 413: {}, 423: {}, 433: {}, 441: {}, 443: {},
	511: {}, 521: {}, 531: {}, 541: {}, 513: {}, 523: {}, 553: {},
	// baryons
	2212: {}, 2112: {}, 2224: {}, 2214: {}, 2114: {}, 1114: {},
	3122: {}, 3222: {}, 3212: {}, 3112: {}, 3322: {}, 3312: {}, 3334: {},
	4122: {}, 4222: {}, 4212: {}, 4112: {}, 4232: {}, 4132: {}, 4332: {},
	5122: {}, 5222: {}, 5212: {}, 5112: {}, 5232: {}, 5132: {}, 5332: {},
}

// SpinType classifies particles for drawing.
type SpinType int

const (
	Unknown SpinType = iota
	Fermion
	Boson
)

func (s SpinType) String() string {
	switch s {
	case Fermion:
		return "fermion"
	case Boson:
		return "boson"
	}
	return "unknown"
}

// Spin returns the spin type of the fundamental particle id.
func Spin(id int) SpinType {
	switch a := abs(id); {
	case a >= 1 && a <= 16:
		return Fermion
	case a >= 21 && a <= 25:
		return Boson
	}
	return Unknown
}

var names = map[int]string{
	1: "d", 2: "u", 3: "s", 4: "c", 5: "b", 6: "t",
	11: "e⁻", 12: "νₑ", 13: "μ⁻", 14: "ν(μ)", 15: "τ⁻", 16: "ν(τ)",
	21: "g", 22: "γ", 23: "Z", 24: "W⁺", 25: "h",
	-1: "d̄", -2: "ū", -3: "s̄", -4: "c̄", -5: "b̄", -6: "t̄",
	-11: "e⁺", -12: "ν̄ₑ", -13: "μ⁺", -14: "ν̄(μ)", -15: "τ⁺", -16: "ν̄(τ)",
	-24: "W⁻",
	111: "π⁰", 211: "π⁺", -211: "π⁻", 2212: "p", -2212: "p̄", 2112: "n", -2112: "n̄",
	130: "K⁰(L)", 310: "K⁰(S)", 321: "K⁺", -321: "K⁻",
}

// IsAntiparticle reports whether id is the negative code of an
// antiparticle.
func IsAntiparticle(id int) bool { return id < 0 }

// Name returns a printable particle name, or the numeric id when unknown.
func Name(id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprint(id)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
