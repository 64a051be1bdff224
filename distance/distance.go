// Package distance provides the perceptual color metric used for
// nearest-color selection.
package distance

import "github.com/huequant/huequant/pixel"

// Func is a function type for color distance calculation.
type Func func(a, b pixel.F) float32

// ColorDifference returns the squared difference between two perceptual
// pixels, summed over all four channels. Smaller is closer. The value is
// a squared quantity, not a length; callers only ever compare distances.
func ColorDifference(a, b pixel.F) float32 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	da := a.A - b.A
	return dr*dr + dg*dg + db*db + da*da
}
