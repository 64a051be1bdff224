package imageutil_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huequant/huequant/imageutil"
	"github.com/huequant/huequant/pixel"
)

func TestFromImage_NRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 128})
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	img := imageutil.FromImage(src)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 2, img.Height)

	assert.Equal(t, pixel.RGBA{R: 255, A: 255}, img.At(0, 0))
	assert.Equal(t, pixel.RGBA{G: 255, A: 255}, img.At(1, 0))
	assert.Equal(t, pixel.RGBA{B: 255, A: 128}, img.At(0, 1))
	assert.Equal(t, pixel.RGBA{R: 10, G: 20, B: 30, A: 40}, img.At(1, 1))
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 1, A: 255})
	src.SetNRGBA(6, 5, color.NRGBA{R: 2, A: 255})

	img := imageutil.FromImage(src)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 1, img.Height)
	assert.Equal(t, pixel.RGBA{R: 1, A: 255}, img.At(0, 0))
	assert.Equal(t, pixel.RGBA{R: 2, A: 255}, img.At(1, 0))
}

func TestFromImage_GenericModel(t *testing.T) {
	// Paletted images take the slow conversion path.
	src := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{
		color.NRGBA{R: 200, G: 100, B: 50, A: 255},
	})

	img := imageutil.FromImage(src)
	assert.Equal(t, pixel.RGBA{R: 200, G: 100, B: 50, A: 255}, img.At(0, 0))
}

func TestImportanceFromGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 0})
	gray.SetGray(1, 0, color.Gray{Y: 255})

	imp := imageutil.ImportanceFromGray(gray)
	require.Len(t, imp, 2)
	assert.Equal(t, float32(0), imp[0])
	assert.Equal(t, float32(1), imp[1])
}

func TestResize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 100, G: 150, B: 200, A: 255})
		}
	}

	dst := imageutil.Resize(src, 2, 2, imageutil.InterpolationNearest)
	require.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
	assert.Equal(t, color.NRGBA{R: 100, G: 150, B: 200, A: 255}, dst.NRGBAAt(0, 0))
}

func TestResizeGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetGray(x, y, color.Gray{Y: 77})
		}
	}

	dst := imageutil.ResizeGray(src, 8, 8, imageutil.InterpolationLinear)
	require.Equal(t, image.Rect(0, 0, 8, 8), dst.Bounds())
	assert.Equal(t, uint8(77), dst.GrayAt(3, 3).Y)

	imp := imageutil.ImportanceFromGray(dst)
	assert.Len(t, imp, 64)
}
