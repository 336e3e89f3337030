package packer

import (
	"github.com/npillmayer/dmdfont/core/repertoire"
	"github.com/npillmayer/dmdfont/engine/raster"
	"github.com/npillmayer/dmdfont/engine/sizing"
)

// PlaceholderWidth is the width of reserved glyphs and of glyphs without ink.
const PlaceholderWidth = 2

// GlyphRecord is the packed bitmap of a single glyph code.
// Columns has Width entries of VertBytes bytes each.
type GlyphRecord struct {
	Code    byte
	Width   int
	Columns [][]byte
}

// Layer returns byte layer i of all columns, left to right.
func (g GlyphRecord) Layer(i int) []byte {
	l := make([]byte, len(g.Columns))
	for j, col := range g.Columns {
		l[j] = col[i]
	}
	return l
}

// Blank reports whether no bit of the glyph is set.
func (g GlyphRecord) Blank() bool {
	for _, col := range g.Columns {
		for _, b := range col {
			if b != 0 {
				return false
			}
		}
	}
	return true
}

// Placeholder creates an all-zero glyph of a given width.
func Placeholder(code byte, width, vertBytes int) GlyphRecord {
	g := GlyphRecord{Code: code, Width: width, Columns: make([][]byte, width)}
	for i := range g.Columns {
		g.Columns[i] = make([]byte, vertBytes)
	}
	return g
}

// SpaceWidth returns the width of the space glyph for a font height.
func SpaceWidth(fontHeight int) int {
	if w := fontHeight / 3; w > 3 {
		return w
	}
	return 3
}

// IsPadded reports whether glyphs of code get a blank column on each side.
func IsPadded(code byte) bool {
	return code >= 0x20 && code <= 0x7E
}

// Packer packs the entries of a repertoire with fixed global metrics.
type Packer struct {
	ras       raster.Rasterizer
	metrics   sizing.Metrics
	threshold uint8
}

// New creates a packer which renders with ras at the metrics' point size.
func New(ras raster.Rasterizer, metrics sizing.Metrics, threshold uint8) *Packer {
	return &Packer{ras: ras, metrics: metrics, threshold: threshold}
}

// Pack creates the glyph record of a repertoire entry. Space entries are blank
// glyphs of SpaceWidth, reserved entries and glyphs without ink are blank
// placeholders. Only rasterizer failures are returned as errors.
func (p *Packer) Pack(e repertoire.Entry) (GlyphRecord, error) {
	vb := p.metrics.VertBytes
	switch e.Kind {
	case repertoire.Space:
		return Placeholder(e.Code, SpaceWidth(p.metrics.FontHeight), vb), nil
	case repertoire.Reserved:
		return Placeholder(e.Code, PlaceholderWidth, vb), nil
	}
	canvas, err := p.ras.Render(e.Scalar, p.metrics.Size)
	if err != nil {
		return GlyphRecord{}, err
	}
	return PackCanvas(e, canvas, p.metrics, p.threshold), nil
}

// PackAll packs all entries, in order.
func (p *Packer) PackAll(entries []repertoire.Entry) ([]GlyphRecord, error) {
	records := make([]GlyphRecord, 0, len(entries))
	for _, e := range entries {
		g, err := p.Pack(e)
		if err != nil {
			return nil, err
		}
		records = append(records, g)
	}
	return records, nil
}

// PackCanvas extracts the glyph record of a mapped entry from its rendered canvas.
// Rows GlobalTop … GlobalTop+FontHeight-1 of the canvas are packed, ink outside
// of these rows is dropped.
func PackCanvas(e repertoire.Entry, canvas *raster.Canvas, m sizing.Metrics, threshold uint8) GlyphRecord {
	bb := raster.Bounds(canvas, threshold)
	if bb.Empty() {
		tracer().Debugf("U+%04X has no ink, packed as placeholder", e.Scalar)
		return Placeholder(e.Code, PlaceholderWidth, m.VertBytes)
	}
	if bb.MinRow < m.GlobalTop || bb.MaxRow >= m.GlobalTop+m.FontHeight {
		tracer().Errorf("warning: U+%04X covers rows %d…%d, font rows are %d…%d; glyph is clipped",
			e.Scalar, bb.MinRow, bb.MaxRow, m.GlobalTop, m.GlobalTop+m.FontHeight-1)
	}
	if bb.TouchesBorder(canvas.Side()) {
		tracer().Errorf("warning: U+%04X touches the border of the %dpx canvas and may be clipped",
			e.Scalar, canvas.Side())
	}
	pad := 0
	if IsPadded(e.Code) {
		pad = 1
	}
	width := bb.Width() + 2*pad
	g := GlyphRecord{Code: e.Code, Width: width, Columns: make([][]byte, 0, width)}
	for i := 0; i < pad; i++ {
		g.Columns = append(g.Columns, make([]byte, m.VertBytes))
	}
	for col := bb.MinCol; col <= bb.MaxCol; col++ {
		g.Columns = append(g.Columns, PackColumn(canvas, col, m, threshold))
	}
	for i := 0; i < pad; i++ {
		g.Columns = append(g.Columns, make([]byte, m.VertBytes))
	}
	return g
}

// PackColumn packs canvas column col into m.VertBytes bytes.
func PackColumn(canvas *raster.Canvas, col int, m sizing.Metrics, threshold uint8) []byte {
	bytes := make([]byte, m.VertBytes)
	for row := 0; row < m.FontHeight; row++ {
		if !canvas.On(col, m.GlobalTop+row, threshold) {
			continue
		}
		if m.VertBytes == 1 || row < 8 {
			bytes[0] |= 1 << row
			continue
		}
		if bit := row - (m.FontHeight - 8); bit >= 0 {
			bytes[1] |= 1 << bit
		}
	}
	return bytes
}
