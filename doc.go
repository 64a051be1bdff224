// Package huequant provides the color-statistics front end of a
// perceptual color-quantization pipeline: it reduces a full-resolution
// raster to a bounded, weighted, deduplicated color histogram, and it
// selects the nearest palette entry for a pixel against a finalized
// colormap.
//
// Features:
//
//   - Bounded color histograms with all-or-nothing overflow semantics
//   - Posterization (per-channel bit dropping) to trade precision for size
//   - Optional per-pixel importance weighting (e.g. saliency maps)
//   - Optional row-range parallel scanning with bound-preserving merge
//   - Nearest-color selection with a legacy-renderer compatibility bias
//   - Fixed-size colormap container for finalized palettes
//
// Palette construction (median-cut, k-means, ...), dithering and image
// decoding are external collaborators: this package only builds the
// histogram they consume and answers their per-pixel nearest-color
// queries.
//
// # Quick Start
//
// Build a histogram:
//
//	img := pixel.NewImage(640, 480)
//	// ... fill img.Pix ...
//
//	hist, err := huequant.ComputeHistogram(img,
//	    huequant.WithMaxColors(1<<16),
//	    huequant.WithIgnoreBits(2),
//	)
//	var tooMany *huequant.ErrTooManyColors
//	if errors.As(err, &tooMany) {
//	    // retry with a coarser posterization level
//	}
//
// Map a pixel onto a finalized palette:
//
//	idx, dist, err := cm.BestIndex(px, 0.98)
//
// Histogram entry order is unspecified; rely only on completeness and
// the total-weight invariant (without an importance map, weights sum to
// the raster area).
package huequant
