package sizing

import (
	"errors"
	"image"
	"testing"

	"github.com/npillmayer/dmdfont/core/repertoire"
	"github.com/npillmayer/dmdfont/engine/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockRasterizer renders every character as a 3 pixel wide block, starting at
// row 10, with a height given by heightAt.
func blockRasterizer(heightAt func(r rune, size int) int) raster.RenderFunc {
	return func(r rune, size int) (*raster.Canvas, error) {
		c := raster.NewCanvas(64)
		if h := heightAt(r, size); h > 0 {
			c.Fill(image.Rect(20, 10, 23, 10+h), 255)
		}
		return c, nil
	}
}

func testEntries() []repertoire.Entry {
	return repertoire.MustNew(0x41, 0x44, map[byte]rune{0x41: 'A', 0x43: 'C'}, 0x44).Entries()
}

func TestSelectLargestFittingSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.sizing")
	defer teardown()
	//
	ras := blockRasterizer(func(r rune, size int) int { return size - 2 })
	size, err := SelectSize(ras, testEntries(), 11, Range{6, 49}, 80)
	require.NoError(t, err)
	assert.Equal(t, 13, size)
}

func TestSelectStopsAtFirstOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.sizing")
	defer teardown()
	//
	// extent shrinks again at 20pt, which must never be reached
	ras := blockRasterizer(func(r rune, size int) int {
		if size >= 20 {
			return 4
		}
		return size - 2
	})
	size, err := SelectSize(ras, testEntries(), 11, Range{6, 49}, 80)
	require.NoError(t, err)
	assert.Equal(t, 13, size)
}

func TestSelectSkipsSizesWithoutInk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.sizing")
	defer teardown()
	//
	ras := blockRasterizer(func(r rune, size int) int {
		if size < 9 {
			return 0
		}
		return size - 2
	})
	size, err := SelectSize(ras, testEntries(), 5, Range{6, 49}, 80)
	require.NoError(t, err)
	assert.Equal(t, 6, size, "sizes 6…8 have no ink and 9pt overflows, so the range minimum is returned")
}

func TestSelectNothingFits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.sizing")
	defer teardown()
	//
	ras := blockRasterizer(func(r rune, size int) int { return 30 })
	size, err := SelectSize(ras, testEntries(), 11, Range{6, 49}, 80)
	require.NoError(t, err)
	assert.Equal(t, 6, size)
}

func TestSelectIsDeterministic(t *testing.T) {
	ras := blockRasterizer(func(r rune, size int) int { return size/2 + int(r-'A') })
	first, err := SelectSize(ras, testEntries(), 11, Range{6, 49}, 80)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := SelectSize(ras, testEntries(), 11, Range{6, 49}, 80)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExtentRendersMappedOnly(t *testing.T) {
	var rendered []rune
	ras := raster.RenderFunc(func(r rune, size int) (*raster.Canvas, error) {
		rendered = append(rendered, r)
		c := raster.NewCanvas(32)
		if r == 'A' {
			c.Fill(image.Rect(5, 4, 7, 9), 255)
		} else {
			c.Fill(image.Rect(5, 6, 7, 12), 255)
		}
		return c, nil
	})
	v, err := Extent(ras, testEntries(), 10, 80)
	require.NoError(t, err)
	assert.Equal(t, []rune{'A', 'C'}, rendered)
	assert.Equal(t, VerticalExtent{Top: 4, Bottom: 11, Glyphs: 2}, v)
	assert.Equal(t, 8, v.Height())
}

func TestGlobalMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.sizing")
	defer teardown()
	//
	ras := blockRasterizer(func(r rune, size int) int { return 10 })
	m, err := GlobalMetrics(ras, testEntries(), 12, 16, 80)
	require.NoError(t, err)
	assert.Equal(t, Metrics{Size: 12, GlobalTop: 10, FontHeight: 10, VertBytes: 2}, m)
	//
	m, err = GlobalMetrics(ras, testEntries(), 12, 8, 80)
	require.NoError(t, err)
	assert.Equal(t, 8, m.FontHeight, "font height must be capped at the target height")
	assert.Equal(t, 1, m.VertBytes)
	//
	none := blockRasterizer(func(r rune, size int) int { return 0 })
	m, err = GlobalMetrics(none, testEntries(), 12, 11, 80)
	require.NoError(t, err)
	assert.Equal(t, Metrics{Size: 12, GlobalTop: 0, FontHeight: 1, VertBytes: 1}, m)
}

func TestVertBytes(t *testing.T) {
	assert.Equal(t, 1, VertBytes(1))
	assert.Equal(t, 1, VertBytes(8))
	assert.Equal(t, 2, VertBytes(9))
	assert.Equal(t, 2, VertBytes(16))
}

func TestRasterizerErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	ras := raster.RenderFunc(func(rune, int) (*raster.Canvas, error) { return nil, boom })
	_, err := SelectSize(ras, testEntries(), 11, Range{6, 8}, 80)
	assert.ErrorIs(t, err, boom)
}
