// Package pixel provides the shared pixel representations used across
// huequant: packed 8-bit RGBA pixels, perceptual float pixels, and the
// posterization and linearization primitives that map between them.
package pixel

// RGBA is an 8-bit-per-channel pixel with straight (non-premultiplied)
// alpha.
type RGBA struct {
	R, G, B, A uint8
}

// Pack encodes the pixel as a single 32-bit key for fast equality checks
// and hashing. Layout: A<<24 | B<<16 | G<<8 | R.
func (p RGBA) Pack() uint32 {
	return uint32(p.A)<<24 | uint32(p.B)<<16 | uint32(p.G)<<8 | uint32(p.R)
}

// Unpack decodes a key produced by Pack.
func Unpack(key uint32) RGBA {
	return RGBA{
		R: uint8(key),
		G: uint8(key >> 8),
		B: uint8(key >> 16),
		A: uint8(key >> 24),
	}
}

// PosterizeMask returns a mask over packed keys that zeroes the lowest
// ignoreBits bits of every channel. Masking merges near-duplicate colors,
// bounding the number of distinguishable colors; ignoreBits must be in
// 0..7 (0 keeps all bits).
func PosterizeMask(ignoreBits int) uint32 {
	channel := uint32(255>>ignoreBits) << ignoreBits
	return channel<<24 | channel<<16 | channel<<8 | channel
}

// F is a perceptual pixel: four linearized float32 channels with alpha
// carried in [0,1]. All distance computations operate on F values.
type F struct {
	R, G, B, A float32
}

// Image is a flat row-major 8-bit raster. Pix holds Width*Height pixels;
// row y occupies Pix[y*Width : (y+1)*Width].
type Image struct {
	Pix    []RGBA
	Width  int
	Height int
}

// NewImage allocates a zeroed raster of the given dimensions. Negative
// dimensions are treated as zero.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Pix:    make([]RGBA, width*height),
		Width:  width,
		Height: height,
	}
}

// Row returns the pixels of row y.
func (m *Image) Row(y int) []RGBA {
	return m.Pix[y*m.Width : (y+1)*m.Width]
}

// Set writes the pixel at (x, y).
func (m *Image) Set(x, y int, p RGBA) {
	m.Pix[y*m.Width+x] = p
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) RGBA {
	return m.Pix[y*m.Width+x]
}
