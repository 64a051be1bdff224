package huequant

import (
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/huequant/huequant/internal/acolorhash"
	"github.com/huequant/huequant/pixel"
)

// importanceBase is added to every importance scalar so that even
// zero-importance pixels keep weight in the histogram. Empirical
// constant, kept literal for behavior compatibility.
const importanceBase = 0.5

// Entry is one histogram color with its accumulated weight.
//
// AdjustedWeight starts equal to PerceptualWeight and is reserved for
// reweighting by a downstream clustering stage; this package never
// mutates it.
type Entry struct {
	Color            pixel.F
	PerceptualWeight float32
	AdjustedWeight   float32
}

// Histogram is a weighted, deduplicated set of colors extracted from a
// raster. Entry order is unspecified: stable within a run, but callers
// may rely only on completeness and the total-weight invariant.
type Histogram struct {
	Entries []Entry
}

// TotalWeight returns the sum of PerceptualWeight across all entries.
// Without an importance map this equals the raster area.
func (h *Histogram) TotalWeight() float64 {
	var sum float64
	for i := range h.Entries {
		sum += float64(h.Entries[i].PerceptualWeight)
	}
	return sum
}

// ComputeHistogram scans img in raster order and returns its bounded
// color histogram.
//
// Distinct colors are counted after posterization (see WithIgnoreBits).
// If more than the configured maximum remain, the build fails atomically
// with *ErrTooManyColors and no partial result escapes; callers
// typically retry with a coarser posterization level. A zero-area image
// yields an empty histogram, not an error.
func ComputeHistogram(img *pixel.Image, opts ...Option) (*Histogram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if img == nil {
		return nil, ErrNilImage
	}
	if o.ignoreBits < 0 || o.ignoreBits > 7 {
		return nil, ErrInvalidIgnoreBits
	}
	if o.maxColors <= 0 {
		return nil, ErrInvalidMaxColors
	}
	if o.importance != nil && len(o.importance) != img.Width*img.Height {
		return nil, &ErrImportanceSize{
			Expected: img.Width * img.Height,
			Actual:   len(o.importance),
		}
	}

	start := time.Now()
	logger := o.logger.WithImageSize(img.Width, img.Height)

	table, err := scan(img, o)
	if err != nil {
		if errors.Is(err, acolorhash.ErrTooManyColors) {
			logger.Warn("histogram overflow",
				"max_colors", o.maxColors,
				"ignore_bits", o.ignoreBits,
			)
			return nil, &ErrTooManyColors{MaxColors: o.maxColors, cause: err}
		}
		return nil, err
	}
	defer table.Free()

	h := materialize(table, o.gamma)

	logger.Debug("histogram built",
		"colors", len(h.Entries),
		"max_colors", o.maxColors,
		"ignore_bits", o.ignoreBits,
		"workers", o.workers,
		"duration", time.Since(start),
	)
	return h, nil
}

// scan builds the color hash table for img, sequentially or across row
// ranges. On error no table is returned and every partial table has
// been freed.
func scan(img *pixel.Image, o *options) (*acolorhash.Table, error) {
	workers := o.workers
	if workers > img.Height {
		workers = img.Height
	}

	if workers <= 1 {
		table := acolorhash.New(o.maxColors, o.ignoreBits)
		if err := scanRows(table, img, 0, img.Height, o.importance); err != nil {
			table.Free()
			return nil, err
		}
		return table, nil
	}

	// Region scan: each worker owns a private table, then the regions
	// merge under the same color bound. Any single region exceeding the
	// bound already proves the whole image does.
	tables := make([]*acolorhash.Table, workers)
	rowsPer := (img.Height + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		y0 := w * rowsPer
		y1 := y0 + rowsPer
		if y1 > img.Height {
			y1 = img.Height
		}
		if y0 >= y1 {
			continue
		}
		t := acolorhash.New(o.maxColors, o.ignoreBits)
		tables[w] = t
		g.Go(func() error {
			return scanRows(t, img, y0, y1, o.importance)
		})
	}
	if err := g.Wait(); err != nil {
		freeTables(tables)
		return nil, err
	}

	var merged *acolorhash.Table
	for i, t := range tables {
		if t == nil {
			continue
		}
		if merged == nil {
			merged = t
			tables[i] = nil
			continue
		}
		if err := merged.Merge(t); err != nil {
			merged.Free()
			freeTables(tables)
			return nil, err
		}
		t.Free()
		tables[i] = nil
	}
	return merged, nil
}

// scanRows folds rows y0..y1 of img into t. The importance slice, when
// present, covers the whole raster; rows index into it by absolute
// pixel position.
func scanRows(t *acolorhash.Table, img *pixel.Image, y0, y1 int, importance []float32) error {
	for y := y0; y < y1; y++ {
		row := img.Row(y)
		base := y * img.Width
		for x, px := range row {
			boost := float32(1)
			if importance != nil {
				boost = importanceBase + importance[base+x]
			}
			if err := t.Add(px, boost); err != nil {
				return err
			}
		}
	}
	return nil
}

func freeTables(tables []*acolorhash.Table) {
	for _, t := range tables {
		if t != nil {
			t.Free()
		}
	}
}

// materialize flattens the hash table into a dense entry list, pushing
// every packed key through the gamma table exactly once.
func materialize(t *acolorhash.Table, gamma float64) *Histogram {
	lut := pixel.NewLUT(gamma)
	entries := make([]Entry, 0, t.Count())
	t.ForEach(func(key uint32, weight float32) {
		entries = append(entries, Entry{
			Color:            lut.Convert(pixel.Unpack(key)),
			PerceptualWeight: weight,
			AdjustedWeight:   weight,
		})
	})
	return &Histogram{Entries: entries}
}
