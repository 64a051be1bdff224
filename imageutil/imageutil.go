// Package imageutil prepares standard library images and importance
// maps for histogram building.
package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/huequant/huequant/pixel"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// FromImage converts any image.Image into the flat raster the histogram
// builder consumes. Color values are kept non-premultiplied.
func FromImage(src image.Image) *pixel.Image {
	b := src.Bounds()
	out := pixel.NewImage(b.Dx(), b.Dy())

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < out.Height; y++ {
			row := out.Row(y)
			off := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
			for x := range row {
				row[x] = pixel.RGBA{
					R: nrgba.Pix[off],
					G: nrgba.Pix[off+1],
					B: nrgba.Pix[off+2],
					A: nrgba.Pix[off+3],
				}
				off += 4
			}
		}
		return out
	}

	for y := 0; y < out.Height; y++ {
		row := out.Row(y)
		for x := range row {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[x] = pixel.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return out
}

// ImportanceFromGray maps an 8-bit gray image to a row-major importance
// slice in [0, 1], aligned with the raster grid.
func ImportanceFromGray(gray *image.Gray) []float32 {
	b := gray.Bounds()
	out := make([]float32, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, float32(gray.GrayAt(x, y).Y)/255.0)
		}
	}
	return out
}

// Resize scales src to the given dimensions, returning a
// non-premultiplied RGBA image.
func Resize(src image.Image, width, height int, interp Interpolation) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	scalerFor(interp).Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGray scales a grayscale image to the given dimensions. Use it to
// bring an importance source (e.g. a saliency map) onto the raster grid
// before ImportanceFromGray.
func ResizeGray(src *image.Gray, width, height int, interp Interpolation) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	scalerFor(interp).Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
