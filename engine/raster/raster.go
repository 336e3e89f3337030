package raster

import (
	"image"

	"github.com/npillmayer/dmdfont/core/font"
	"github.com/npillmayer/dmdfont/core/font/fontregistry"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterizer draws a single character at a point size onto a fresh canvas.
// Characters a font has no glyph for yield a canvas without "on" pixels; this
// is not an error.
type Rasterizer interface {
	Render(r rune, size int) (*Canvas, error)
}

// RenderFunc is an adapter to use ordinary functions as rasterizers.
type RenderFunc func(r rune, size int) (*Canvas, error)

// Render calls f(r, size).
func (f RenderFunc) Render(r rune, size int) (*Canvas, error) {
	return f(r, size)
}

// OutlineRasterizer renders characters from an outline font.
// Typecases are cached per point size. It is not safe for concurrent use.
type OutlineRasterizer struct {
	font     *font.ScalableFont
	key      string
	registry *fontregistry.Registry
	side     int
}

var _ Rasterizer = &OutlineRasterizer{}

// NewOutlineRasterizer creates a rasterizer for font f, drawing on canvases of
// side length canvasSize.
func NewOutlineRasterizer(f *font.ScalableFont, canvasSize int) *OutlineRasterizer {
	reg := fontregistry.NewRegistry()
	return &OutlineRasterizer{
		font:     f,
		key:      reg.StoreFont(f),
		registry: reg,
		side:     canvasSize,
	}
}

// Font returns the font the rasterizer draws with.
func (ras *OutlineRasterizer) Font() *font.ScalableFont {
	return ras.font
}

// Render draws r with the rasterizer's font at point size size, at one quarter
// of the canvas side from the left and top edges. Inked pixels get brightness
// 255, anti-aliased edges lower values.
func (ras *OutlineRasterizer) Render(r rune, size int) (*Canvas, error) {
	canvas := NewCanvas(ras.side)
	if !ras.font.HasGlyph(r) {
		tracer().Debugf("font %s has no glyph for U+%04X", ras.font.Fontname, r)
		return canvas, nil
	}
	tc, err := ras.registry.TypeCase(ras.key, float64(size))
	if err != nil {
		return nil, err
	}
	origin := fixed.I(ras.side / 4)
	d := xfont.Drawer{
		Dst:  canvas.Image(),
		Src:  image.White,
		Face: tc.Face(),
		Dot:  fixed.Point26_6{X: origin, Y: origin + tc.Ascent()},
	}
	d.DrawString(string(r))
	return canvas, nil
}

// Close releases the cached typecases.
func (ras *OutlineRasterizer) Close() error {
	return ras.registry.Close()
}
