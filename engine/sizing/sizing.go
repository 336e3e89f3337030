/*
Package sizing selects the point size of a bitmap font and computes the
metrics shared by all of its glyphs.

A bitmap font has a single height for all glyphs. The size selector tries
point sizes in ascending order and keeps the largest one for which the vertical
extent of the whole repertoire, from the topmost to the bottommost inked row of
any glyph, fits the target height. The search stops at the first size that
overflows, assuming that extents grow with point size. This holds for practically
all fonts but is not guaranteed for strongly hinted ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sizing

import (
	"fmt"

	"github.com/npillmayer/dmdfont/core/repertoire"
	"github.com/npillmayer/dmdfont/engine/raster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dmdfont.sizing'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.sizing")
}

// Range is an inclusive range of point sizes.
type Range struct {
	Min, Max int
}

// VerticalExtent is the union of the vertical glyph extents of a repertoire,
// in canvas rows.
type VerticalExtent struct {
	Top, Bottom int // inclusive
	Glyphs      int // number of glyphs with ink
}

// Empty reports whether no glyph produced any ink.
func (v VerticalExtent) Empty() bool {
	return v.Glyphs == 0
}

// Height returns Bottom - Top + 1, or 0 for an empty extent.
func (v VerticalExtent) Height() int {
	if v.Empty() {
		return 0
	}
	return v.Bottom - v.Top + 1
}

func (v VerticalExtent) String() string {
	if v.Empty() {
		return "[no ink]"
	}
	return fmt.Sprintf("[rows %d…%d = %dpx, %d glyphs]", v.Top, v.Bottom, v.Height(), v.Glyphs)
}

// Extent renders every mapped entry at point size size and returns the union
// of their vertical extents. Space and reserved entries are skipped, as are
// glyphs without ink.
func Extent(ras raster.Rasterizer, entries []repertoire.Entry, size int, threshold uint8) (VerticalExtent, error) {
	var v VerticalExtent
	for _, e := range entries {
		if e.Kind != repertoire.Mapped {
			continue
		}
		canvas, err := ras.Render(e.Scalar, size)
		if err != nil {
			return VerticalExtent{}, err
		}
		bb := raster.Bounds(canvas, threshold)
		if bb.Empty() {
			continue
		}
		if v.Glyphs == 0 || bb.MinRow < v.Top {
			v.Top = bb.MinRow
		}
		if v.Glyphs == 0 || bb.MaxRow > v.Bottom {
			v.Bottom = bb.MaxRow
		}
		v.Glyphs++
	}
	return v, nil
}

// SelectSize returns the largest point size of sizes whose repertoire extent
// fits into maxHeight pixels. Sizes are tried in ascending order; sizes
// without any ink are skipped and the search ends with the first size that
// does not fit. If no size fits, the smallest size of the range is returned.
func SelectSize(ras raster.Rasterizer, entries []repertoire.Entry, maxHeight int,
	sizes Range, threshold uint8) (int, error) {
	//
	best := sizes.Min
	for size := sizes.Min; size <= sizes.Max; size++ {
		v, err := Extent(ras, entries, size, threshold)
		if err != nil {
			return 0, err
		}
		if v.Empty() {
			tracer().Debugf("size %dpt: no ink, skipped", size)
			continue
		}
		tracer().Debugf("size %dpt: extent %v", size, v)
		if v.Height() > maxHeight {
			break
		}
		best = size
	}
	tracer().Infof("best font size: %dpt (fits in %dpx)", best, maxHeight)
	return best, nil
}

// Metrics are the global metrics of a bitmap font at its selected point size.
type Metrics struct {
	Size       int // point size
	GlobalTop  int // canvas row which becomes row 0 of every glyph
	FontHeight int // height of every glyph in pixels
	VertBytes  int // bytes per glyph column: 1 for heights up to 8, else 2
}

// VertBytes returns the number of bytes needed to hold a column of height pixels.
func VertBytes(height int) int {
	return (height + 7) / 8
}

// GlobalMetrics computes the metrics of a repertoire at point size size.
// The font height is the repertoire's vertical extent, capped at maxHeight. If
// no glyph produces ink, the font height is 1 and every glyph will be packed as
// a placeholder.
func GlobalMetrics(ras raster.Rasterizer, entries []repertoire.Entry, size, maxHeight int,
	threshold uint8) (Metrics, error) {
	//
	v, err := Extent(ras, entries, size, threshold)
	if err != nil {
		return Metrics{}, err
	}
	m := Metrics{Size: size, GlobalTop: v.Top, FontHeight: v.Height()}
	if v.Empty() {
		tracer().Errorf("no glyph of the repertoire produces ink at %dpt", size)
		m.GlobalTop, m.FontHeight = 0, 1
	}
	if m.FontHeight > maxHeight {
		m.FontHeight = maxHeight
	}
	m.VertBytes = VertBytes(m.FontHeight)
	tracer().Infof("font height: %dpx (vert_bytes=%d)", m.FontHeight, m.VertBytes)
	return m, nil
}
