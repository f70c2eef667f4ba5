package evil

import "math"

const (
	// RapidityAxisMax is the plot coordinate of infinite rapidity.
	RapidityAxisMax = 5.
	// rapidityCut is where the rapidity axis starts being compressed.
	rapidityCut = 4.
)

// YToCoord maps a rapidity onto the plot axis. It is the identity for
// |y| <= 4 and saturates exponentially towards ±RapidityAxisMax beyond,
// so that forward particles stay on the plot.
func YToCoord(y float64) float64 {
	a := math.Abs(y)
	if a <= rapidityCut {
		return y
	}
	const dy = RapidityAxisMax - rapidityCut
	return math.Copysign(rapidityCut+dy*(1-math.Exp(-(a-rapidityCut)/dy)), y)
}

// CoordToY is the inverse of YToCoord.
func CoordToY(c float64) float64 {
	a := math.Abs(c)
	if a <= rapidityCut {
		return c
	}
	if a >= RapidityAxisMax {
		return math.Copysign(math.Inf(1), c)
	}
	const dy = RapidityAxisMax - rapidityCut
	return math.Copysign(rapidityCut-dy*math.Log(1-(a-rapidityCut)/dy), c)
}
