package pixel

import "math"

// DefaultGamma is the encoding gamma assumed for typical sRGB-like input
// when the caller does not supply one.
const DefaultGamma = 0.45455

// LUT is a per-gamma linearization table mapping 8-bit channel values to
// perceptual channel values. Building the table costs 256 math.Pow calls;
// converting a pixel afterwards is three array lookups and one divide.
type LUT struct {
	table [256]float32
}

// NewLUT builds the linearization table for the given gamma. Gamma values
// <= 0 fall back to DefaultGamma.
func NewLUT(gamma float64) *LUT {
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	l := &LUT{}
	exp := 1.0 / gamma
	for i := range l.table {
		l.table[i] = float32(math.Pow(float64(i)/255.0, exp))
	}
	return l
}

// Convert linearizes an 8-bit pixel into a perceptual pixel. Color
// channels go through the gamma table; alpha is scaled to [0,1] without
// gamma correction.
func (l *LUT) Convert(p RGBA) F {
	return F{
		R: l.table[p.R],
		G: l.table[p.G],
		B: l.table[p.B],
		A: float32(p.A) / 255.0,
	}
}
