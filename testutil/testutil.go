// Package testutil provides deterministic fixtures for huequant tests.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/huequant/huequant/pixel"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a uniform random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns a uniform random float32 in [0, 1).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// RandomColors returns n distinct opaque colors.
func (r *RNG) RandomColors(n int) []pixel.RGBA {
	seen := make(map[uint32]struct{}, n)
	colors := make([]pixel.RGBA, 0, n)
	for len(colors) < n {
		c := pixel.RGBA{
			R: uint8(r.Intn(256)),
			G: uint8(r.Intn(256)),
			B: uint8(r.Intn(256)),
			A: 255,
		}
		if _, ok := seen[c.Pack()]; ok {
			continue
		}
		seen[c.Pack()] = struct{}{}
		colors = append(colors, c)
	}
	return colors
}

// RandomImage returns a width x height raster whose pixels are drawn
// uniformly from a pool of numColors distinct opaque colors.
func (r *RNG) RandomImage(width, height, numColors int) *pixel.Image {
	colors := r.RandomColors(numColors)
	img := pixel.NewImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = colors[r.Intn(len(colors))]
	}
	return img
}

// RandomImportance returns a row-major importance slice in [0, 1) for a
// width x height raster.
func (r *RNG) RandomImportance(width, height int) []float32 {
	out := make([]float32, width*height)
	for i := range out {
		out[i] = r.Float32()
	}
	return out
}
