package evil

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = 4
	}

	if max <= min {
		panic("illegal range")
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult := int(n / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta := float64(majorMult) * tens
	val := math.Floor(min/majorDelta) * majorDelta
	// Makes a list of non-truncated y-values.
	var labels []float64
	for val <= max {
		if val >= min {
			labels = append(labels, val)
		}
		val += majorDelta
	}
	prec := int(math.Ceil(math.Log10(val)) - math.Floor(math.Log10(majorDelta)))
	// Makes a list of big ticks.
	var ticks []plot.Tick
	for _, v := range labels {
		vRounded := round(v, prec)
		ticks = append(ticks, plot.Tick{Value: vRounded, Label: formatFloatTick(vRounded, -1)})
	}
	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}

	val = math.Floor(min/minorDelta) * minorDelta
	for val <= max {
		found := false
		for _, t := range ticks {
			if t.Value == val {
				found = true
			}
		}
		if val >= min && val <= max && !found {
			ticks = append(ticks, plot.Tick{Value: val})
		}
		val += minorDelta
	}
	return ticks
}

// RapidityTicks marks integer rapidities on a compressed rapidity axis
// (see YToCoord). The ends of the axis are labelled ±∞.
type RapidityTicks struct{}

func (RapidityTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	add := func(coord float64, label string) {
		if coord >= min && coord <= max {
			ticks = append(ticks, plot.Tick{Value: coord, Label: label})
		}
	}
	for y := -int(RapidityAxisMax); y <= int(RapidityAxisMax); y++ {
		add(YToCoord(float64(y)), strconv.Itoa(y))
		if y < int(RapidityAxisMax) {
			add(YToCoord(float64(y)+0.5), "")
		}
	}
	add(-RapidityAxisMax, "-∞")
	add(RapidityAxisMax, "∞")
	return ticks
}

// PhiTicks marks multiples of π/2 with minor ticks every π/8.
type PhiTicks struct{}

var phiLabels = map[int]string{
	-4: "-π", -2: "-π/2", 0: "0", 2: "π/2", 4: "π",
}

func (PhiTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for k := -8; k <= 8; k++ {
		v := float64(k) * math.Pi / 8
		if v < min || v > max {
			continue
		}
		tick := plot.Tick{Value: v}
		if k%2 == 0 {
			tick.Label = phiLabels[k/2]
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// LogTicks marks powers of ten on an axis holding log10 values, with minor
// ticks at the intermediate integer multiples.
type LogTicks struct{}

func (LogTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for n := math.Floor(min); n <= math.Ceil(max); n++ {
		if n >= min && n <= max {
			ticks = append(ticks, plot.Tick{Value: n, Label: "10" + superscript(int(n))})
		}
		for k := 2; k < 10; k++ {
			v := n + math.Log10(float64(k))
			if v >= min && v <= max {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}

var superscriptDigits = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func superscript(i int) string {
	var sb strings.Builder
	if i < 0 {
		sb.WriteRune('⁻')
		i = -i
	}
	for _, c := range strconv.Itoa(i) {
		sb.WriteRune(superscriptDigits[c-'0'])
	}
	return sb.String()
}

func round(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	// Fast path for positive precision on integers.
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}

	if x == 0 {
		return 0
	}

	return x / pow
}

func formatFloatTick(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}
