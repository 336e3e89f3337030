package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a square grid of 8-bit brightness samples.
// Background is 0, fully inked pixels are 255.
type Canvas struct {
	img *image.Gray
}

// NewCanvas creates a black canvas with side length side.
func NewCanvas(side int) *Canvas {
	return &Canvas{img: image.NewGray(image.Rect(0, 0, side, side))}
}

// Side returns the side length of the canvas.
func (c *Canvas) Side() int {
	return c.img.Rect.Dx()
}

// Image exposes the canvas as an image to draw on.
func (c *Canvas) Image() draw.Image {
	return c.img
}

// Brightness returns the sample at column col and row row, or 0 for positions
// outside of the canvas.
func (c *Canvas) Brightness(col, row int) uint8 {
	if !(image.Point{col, row}.In(c.img.Rect)) {
		return 0
	}
	return c.img.Pix[c.img.PixOffset(col, row)]
}

// On reports whether the sample at col and row strictly exceeds threshold.
func (c *Canvas) On(col, row int, threshold uint8) bool {
	return c.Brightness(col, row) > threshold
}

// Fill sets every sample within r to v.
func (c *Canvas) Fill(r image.Rectangle, v uint8) {
	draw.Draw(c.img, r, image.NewUniform(color.Gray{Y: v}), image.Point{}, draw.Src)
}

// String renders the canvas as rows of 'X' (brightness above 127) and '.'.
// It is intended for debugging.
func (c *Canvas) String() string {
	side := c.Side()
	b := make([]byte, 0, side*(side+1))
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if c.On(col, row, 127) {
				b = append(b, 'X')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
