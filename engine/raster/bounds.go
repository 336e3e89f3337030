package raster

import "fmt"

// BoundingBox is the tight box around the "on" pixels of a canvas.
// All limits are inclusive. An empty box has MinCol > MaxCol and MinRow > MaxRow;
// clients must check Empty before using the limits.
type BoundingBox struct {
	MinCol, MaxCol int
	MinRow, MaxRow int
}

// Empty reports whether no pixel exceeded the threshold.
func (bb BoundingBox) Empty() bool {
	return bb.MinCol > bb.MaxCol || bb.MinRow > bb.MaxRow
}

// Width returns the number of columns of the box, 0 for an empty box.
func (bb BoundingBox) Width() int {
	if bb.Empty() {
		return 0
	}
	return bb.MaxCol - bb.MinCol + 1
}

// Height returns the number of rows of the box, 0 for an empty box.
func (bb BoundingBox) Height() int {
	if bb.Empty() {
		return 0
	}
	return bb.MaxRow - bb.MinRow + 1
}

func (bb BoundingBox) String() string {
	if bb.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[cols %d…%d, rows %d…%d]", bb.MinCol, bb.MaxCol, bb.MinRow, bb.MaxRow)
}

// Bounds scans every cell of a canvas and returns the tight box over the
// cells whose brightness strictly exceeds threshold.
func Bounds(c *Canvas, threshold uint8) BoundingBox {
	side := c.Side()
	bb := BoundingBox{MinCol: side, MaxCol: -1, MinRow: side, MaxRow: -1}
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if !c.On(col, row, threshold) {
				continue
			}
			if col < bb.MinCol {
				bb.MinCol = col
			}
			if col > bb.MaxCol {
				bb.MaxCol = col
			}
			if row < bb.MinRow {
				bb.MinRow = row
			}
			if row > bb.MaxRow {
				bb.MaxRow = row
			}
		}
	}
	return bb
}

// TouchesBorder reports whether a non-empty box reaches the edge of a canvas
// with side length side, which means the glyph may have been clipped.
func (bb BoundingBox) TouchesBorder(side int) bool {
	if bb.Empty() {
		return false
	}
	return bb.MinCol == 0 || bb.MinRow == 0 || bb.MaxCol == side-1 || bb.MaxRow == side-1
}
