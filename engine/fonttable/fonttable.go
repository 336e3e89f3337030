package fonttable

import (
	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/dmdfont/engine/packer"
)

// HeaderSize is the size of the font table header in bytes.
const HeaderSize = 6

// Offsets of header fields.
const (
	FontLength     = 0
	FontFixedWidth = 2
	FontHeight     = 3
	FontFirstChar  = 4
	FontCharCount  = 5
	FontWidthTable = HeaderSize
)

// FontTable is a bitmap font in table format.
type FontTable struct {
	FixedWidth int // 0 for variable width fonts
	Height     int
	FirstChar  byte
	CharCount  int
	Widths     []int  // one entry per glyph
	Data       []byte // glyph data of all glyphs
}

// Assemble creates a variable width font table from packed glyph records, which
// have to be in code order starting at firstChar.
func Assemble(records []packer.GlyphRecord, fontHeight int, firstChar byte, charCount, vertBytes int) *FontTable {
	if len(records) != charCount {
		tracer().Errorf("font table for %d glyphs assembled from %d records", charCount, len(records))
	}
	ft := &FontTable{
		Height:    fontHeight,
		FirstChar: firstChar,
		CharCount: charCount,
		Widths:    make([]int, len(records)),
	}
	size := 0
	for _, g := range records {
		size += g.Width * vertBytes
	}
	ft.Data = make([]byte, 0, size)
	for i, g := range records {
		if g.Width > 0xFF {
			tracer().Errorf("warning: glyph 0x%02X is %d columns wide, width entry is truncated", g.Code, g.Width)
		}
		ft.Widths[i] = g.Width
		for layer := 0; layer < vertBytes; layer++ {
			ft.Data = append(ft.Data, g.Layer(layer)...)
		}
	}
	if total := ft.TotalSize(); total > 0xFFFF {
		tracer().Errorf("warning: font table has %d bytes, size field is truncated", total)
	}
	return ft
}

// VertBytes returns the number of bytes per glyph column.
func (ft *FontTable) VertBytes() int {
	return (ft.Height + 7) / 8
}

// TotalSize returns the size of the flattened table in bytes.
func (ft *FontTable) TotalSize() int {
	if ft.FixedWidth > 0 {
		return HeaderSize + len(ft.Data)
	}
	return HeaderSize + ft.CharCount + len(ft.Data)
}

// Bytes flattens the table. The total size is stored little endian, all
// other header fields and glyph widths are truncated to 8 bits.
func (ft *FontTable) Bytes() []byte {
	total := ft.TotalSize()
	b := make([]byte, HeaderSize, total)
	if ft.FixedWidth == 0 {
		b[FontLength] = byte(total)
		b[FontLength+1] = byte(total >> 8)
	}
	b[FontFixedWidth] = byte(ft.FixedWidth)
	b[FontHeight] = byte(ft.Height)
	b[FontFirstChar] = ft.FirstChar
	b[FontCharCount] = byte(ft.CharCount)
	if ft.FixedWidth == 0 {
		for _, w := range ft.Widths {
			b = append(b, byte(w))
		}
	}
	return append(b, ft.Data...)
}

// Contains reports whether the table holds a glyph for code.
func (ft *FontTable) Contains(code byte) bool {
	return int(code) >= int(ft.FirstChar) && int(code) < int(ft.FirstChar)+ft.CharCount
}

// Width returns the width of the glyph for code, or 0 if the table has none.
func (ft *FontTable) Width(code byte) int {
	if !ft.Contains(code) {
		return 0
	}
	return ft.Widths[code-ft.FirstChar]
}

// Offset returns the index of the glyph data for code within the flattened table.
func (ft *FontTable) Offset(code byte) (int, bool) {
	if !ft.Contains(code) {
		return 0, false
	}
	c := int(code - ft.FirstChar)
	if ft.FixedWidth > 0 {
		return c*ft.VertBytes()*ft.FixedWidth + FontWidthTable, true
	}
	index := 0
	for _, w := range ft.Widths[:c] {
		index += w
	}
	return index*ft.VertBytes() + ft.CharCount + FontWidthTable, true
}

// Decode parses a flattened font table.
func Decode(data []byte) (*FontTable, error) {
	if len(data) < HeaderSize {
		return nil, core.Error(core.EINVALID, "font table too short: %d bytes", len(data))
	}
	ft := &FontTable{
		Height:    int(data[FontHeight]),
		FirstChar: data[FontFirstChar],
		CharCount: int(data[FontCharCount]),
	}
	if ft.Height == 0 || ft.Height > 16 {
		return nil, core.Error(core.EINVALID, "font table has unsupported height %d", ft.Height)
	}
	total := int(data[FontLength]) | int(data[FontLength+1])<<8
	vb := ft.VertBytes()
	if total == 0 {
		ft.FixedWidth = int(data[FontFixedWidth])
		if ft.FixedWidth == 0 {
			return nil, core.Error(core.EINVALID, "fixed width font table with glyph width 0")
		}
		size := ft.CharCount * ft.FixedWidth * vb
		if len(data) < HeaderSize+size {
			return nil, core.Error(core.EINVALID, "fixed width font table needs %d bytes, has %d",
				HeaderSize+size, len(data))
		}
		ft.Widths = make([]int, ft.CharCount)
		for i := range ft.Widths {
			ft.Widths[i] = ft.FixedWidth
		}
		ft.Data = data[HeaderSize : HeaderSize+size]
		return ft, nil
	}
	if total != len(data) {
		return nil, core.Error(core.EINVALID, "font table size is %d, header says %d", len(data), total)
	}
	if len(data) < HeaderSize+ft.CharCount {
		return nil, core.Error(core.EINVALID, "font table truncated within width table")
	}
	ft.Widths = make([]int, ft.CharCount)
	size := 0
	for i := range ft.Widths {
		ft.Widths[i] = int(data[FontWidthTable+i])
		size += ft.Widths[i] * vb
	}
	if HeaderSize+ft.CharCount+size != total {
		return nil, core.Error(core.EINVALID, "font table size is %d, glyph widths need %d",
			total, HeaderSize+ft.CharCount+size)
	}
	ft.Data = data[HeaderSize+ft.CharCount:]
	tracer().Debugf("decoded font table: height %d, glyphs 0x%02X…0x%02X, %d bytes",
		ft.Height, ft.FirstChar, int(ft.FirstChar)+ft.CharCount-1, total)
	return ft, nil
}
