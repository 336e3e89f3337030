package fonttable

import "strings"

// Bitmap is the pixel matrix of a single glyph.
type Bitmap struct {
	Width, Height int
	pix           []bool
}

// NewBitmap creates a blank bitmap.
func NewBitmap(width, height int) Bitmap {
	return Bitmap{Width: width, Height: height, pix: make([]bool, width*height)}
}

// At reports whether pixel (col, row) is on. Pixels outside are off.
func (b Bitmap) At(col, row int) bool {
	if col < 0 || col >= b.Width || row < 0 || row >= b.Height {
		return false
	}
	return b.pix[row*b.Width+col]
}

// Set switches pixel (col, row) on or off.
func (b Bitmap) Set(col, row int, on bool) {
	if col < 0 || col >= b.Width || row < 0 || row >= b.Height {
		return
	}
	b.pix[row*b.Width+col] = on
}

// Rows returns the bitmap as lines of 'X' (on) and ' ' (off).
func (b Bitmap) Rows() []string {
	rows := make([]string, b.Height)
	var sb strings.Builder
	for r := range rows {
		sb.Reset()
		for c := 0; c < b.Width; c++ {
			if b.At(c, r) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

func (b Bitmap) String() string {
	return strings.Join(b.Rows(), "\n")
}

// Glyph recovers the pixel matrix of the glyph for code, the way a display
// driver draws it: layers are drawn from the last to the first one, the last
// layer of a two-layer font aligned to the bottom row.
func (ft *FontTable) Glyph(code byte) (Bitmap, bool) {
	index, ok := ft.Offset(code)
	if !ok {
		return Bitmap{}, false
	}
	base := index - (ft.TotalSize() - len(ft.Data))
	width, height, vb := ft.Width(code), ft.Height, ft.VertBytes()
	b := NewBitmap(width, height)
	for j := 0; j < width; j++ {
		for i := vb - 1; i >= 0; i-- {
			data := ft.Data[base+j+i*width]
			offset := i * 8
			if i == vb-1 && vb > 1 {
				offset = height - 8
			}
			for k := 0; k < 8; k++ {
				if row := offset + k; row >= i*8 && row < height {
					b.Set(j, row, data&(1<<k) != 0)
				}
			}
		}
	}
	return b, true
}

// Preview renders a sequence of glyph codes as text, glyph by glyph with a
// blank column in between. Codes without a glyph in the table are skipped.
func (ft *FontTable) Preview(codes []byte) string {
	lines := make([]strings.Builder, ft.Height)
	first := true
	for _, code := range codes {
		g, ok := ft.Glyph(code)
		if !ok {
			tracer().Debugf("preview: no glyph for 0x%02X", code)
			continue
		}
		for r, row := range g.Rows() {
			if !first {
				lines[r].WriteByte(' ')
			}
			lines[r].WriteString(row)
		}
		first = false
	}
	out := make([]string, len(lines))
	for i := range lines {
		out[i] = strings.TrimRight(lines[i].String(), " ")
	}
	return strings.Join(out, "\n")
}
