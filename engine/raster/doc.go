/*
Package raster draws single characters onto monochrome canvases and finds the
bounding boxes of their inked pixels.

The packing pipeline depends on the Rasterizer interface only. OutlineRasterizer
implements it for outline fonts; tests may use a RenderFunc to produce canvases
without any font at all.

Characters are drawn at a fixed origin, one quarter of the canvas side from the
left and from the top edge, with the top of the font's ascent at the origin row.
A canvas side must exceed any glyph's extent or glyph data is silently clipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dmdfont.raster'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.raster")
}
