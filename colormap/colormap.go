// Package colormap provides the fixed-size palette container and the
// nearest-color selector used when mapping pixels onto a finalized
// palette.
package colormap

import (
	"errors"

	"github.com/huequant/huequant/distance"
	"github.com/huequant/huequant/pixel"
)

// ErrEmpty is returned by BestIndex on a colormap with no entries.
var ErrEmpty = errors.New("colormap: empty colormap")

// transparentPenalty is the distance margin a translucent candidate must
// beat before it may replace the current best match for an opaque query.
// Workaround for renderers that composite translucent palette entries
// incorrectly; the literal 1/1024 value is kept for behavior
// compatibility.
const transparentPenalty = 1.0 / 1024.0

// Entry is one palette color in perceptual form.
type Entry struct {
	Color pixel.F
}

// Colormap is an ordered, fixed-size sequence of palette entries. The
// size is set at construction and never changes. A Colormap is owned by
// the palette-generation stage; nearest-color queries only read it.
type Colormap struct {
	entries []Entry
}

// New creates a colormap with n zero-value entries. Negative sizes are
// treated as zero.
func New(n int) *Colormap {
	if n < 0 {
		n = 0
	}
	return &Colormap{entries: make([]Entry, n)}
}

// Len returns the number of palette entries.
func (m *Colormap) Len() int {
	return len(m.entries)
}

// At returns the entry at index i.
func (m *Colormap) At(i int) Entry {
	return m.entries[i]
}

// Set replaces the entry at index i.
func (m *Colormap) Set(i int, e Entry) {
	m.entries[i] = e
}

// BestIndex returns the index of the palette entry closest to px under
// the perceptual metric, along with the winning distance.
//
// When the query is effectively opaque (alpha above minOpaqueAlpha), a
// translucent candidate only replaces the current best if it is closer
// by more than a small fixed margin; the margin never evicts an already
// accepted best. Ties keep the first entry encountered in scan order.
func (m *Colormap) BestIndex(px pixel.F, minOpaqueAlpha float32) (int, float32, error) {
	if len(m.entries) == 0 {
		return 0, 0, ErrEmpty
	}

	opaqueQuery := px.A > minOpaqueAlpha
	best := 0
	bestDist := distance.ColorDifference(px, m.entries[0].Color)

	for i := 1; i < len(m.entries); i++ {
		d := distance.ColorDifference(px, m.entries[i].Color)
		if d >= bestDist {
			continue
		}
		if opaqueQuery && m.entries[i].Color.A < 1 && d+transparentPenalty > bestDist {
			continue
		}
		best = i
		bestDist = d
	}

	return best, bestDist, nil
}
