package fontgen

import (
	"bytes"
	"image"
	"testing"

	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/dmdfont/core/config"
	"github.com/npillmayer/dmdfont/core/font"
	"github.com/npillmayer/dmdfont/core/repertoire"
	"github.com/npillmayer/dmdfont/engine/fonttable"
	"github.com/npillmayer/dmdfont/engine/raster"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// blocks renders every character as a 3 pixel wide block of height size-2.
var blocks = raster.RenderFunc(func(r rune, size int) (*raster.Canvas, error) {
	c := raster.NewCanvas(64)
	c.Fill(image.Rect(20, 10, 23, 8+size), 255)
	return c, nil
})

func window(first, last byte) *config.Config {
	cfg := config.Default()
	cfg.FirstChar, cfg.LastChar = first, last
	return cfg
}

func TestGenerateWithBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.fontgen")
	defer teardown()
	//
	cfg := window(0x41, 0x43)
	table, err := Repertoire(cfg)
	require.NoError(t, err)
	ft, report, err := Generate(cfg, blocks, table)
	require.NoError(t, err)
	assert.Equal(t, 13, report.Metrics.Size)
	assert.Equal(t, 11, report.Metrics.FontHeight)
	assert.Equal(t, 2, report.Metrics.VertBytes)
	assert.Equal(t, []int{5, 5, 5}, ft.Widths)
	assert.Equal(t, 6+3+3*5*2, report.TotalSize)
	assert.Len(t, ft.Bytes(), report.TotalSize)
	min, max, avg := report.WidthStats()
	assert.Equal(t, 5, min)
	assert.Equal(t, 5, max)
	assert.Equal(t, 5.0, avg)
	assert.Equal(t, "LATIN CAPITAL LETTER A", report.Glyphs[0].Name)
	assert.Empty(t, report.Fontname)
}

func TestGenerateArabicWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.fontgen")
	defer teardown()
	//
	cfg := window(0xEE, 0xF2)
	table, err := Repertoire(cfg)
	require.NoError(t, err)
	_, report, err := Generate(cfg, blocks, table)
	require.NoError(t, err)
	labels := make([]string, len(report.Glyphs))
	widths := make([]int, len(report.Glyphs))
	for i, g := range report.Glyphs {
		labels[i], widths[i] = g.Label, g.Width
	}
	assert.Equal(t, []string{"U+FEF4 \uFEF4", "U+0640 \u0640", "SPACE", "U+0030 0", "U+0031 1"}, labels)
	assert.Equal(t, []int{3, 3, 3, 3, 3}, widths, "no padding outside of ASCII, space is 11/3 → 3")
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf))
	assert.Contains(t, buf.String(), "0xF0  SPACE")
	assert.Contains(t, buf.String(), "min 3, max 3, avg 3.0")
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TargetMaxHeight = 20
	_, _, err := Generate(cfg, blocks, repertoire.Arabic())
	require.Error(t, err)
	assert.Equal(t, 2, core.ExitStatus(err))
	_, _, err = Generate(config.Default(), blocks, nil)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestRepertoireWindow(t *testing.T) {
	table, err := Repertoire(config.Default())
	require.NoError(t, err)
	assert.Equal(t, 224, table.Len())
	table, err = Repertoire(window(0x30, 0x39))
	require.NoError(t, err)
	assert.Equal(t, 10, table.Len())
	_, ok := table.Entry(repertoire.ArabicSpace)
	assert.False(t, ok)
}

// --- Real font --------------------------------------------------------------

type GoRegularTestEnviron struct {
	suite.Suite
	ras *raster.OutlineRasterizer
}

func TestGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.fontgen")
	defer teardown()
	suite.Run(t, new(GoRegularTestEnviron))
}

func (env *GoRegularTestEnviron) SetupSuite() {
	tracing.Select("dmdfont.font").SetTraceLevel(tracing.LevelError)
	tracing.Select("dmdfont.raster").SetTraceLevel(tracing.LevelError)
	tracing.Select("dmdfont.sizing").SetTraceLevel(tracing.LevelError)
	tracing.Select("dmdfont.packer").SetTraceLevel(tracing.LevelError)
	f, err := font.ParseOpenTypeFont(goregular.TTF)
	env.Require().NoError(err)
	env.ras = raster.NewOutlineRasterizer(f, 80)
}

func (env *GoRegularTestEnviron) TearDownSuite() {
	env.NoError(env.ras.Close())
}

func (env *GoRegularTestEnviron) TestLatinFont() {
	cfg := window(0x20, 0x7E)
	table, err := Repertoire(cfg)
	env.Require().NoError(err)
	ft, report, err := Generate(cfg, env.ras, table)
	env.Require().NoError(err)
	env.Contains(report.Fontname, "Go")
	env.LessOrEqual(report.Metrics.FontHeight, cfg.TargetMaxHeight)
	env.GreaterOrEqual(report.Metrics.Size, cfg.MinSize)
	env.Equal(2, report.Metrics.VertBytes)
	flat := ft.Bytes()
	env.Equal(report.TotalSize, len(flat))
	env.Equal(report.TotalSize, int(flat[0])|int(flat[1])<<8)
	for _, g := range report.Glyphs {
		env.GreaterOrEqual(g.Width, 1, "code 0x%02X", g.Code)
	}
	// visible ASCII glyphs carry a blank column on each side
	h, ok := ft.Glyph('H')
	env.Require().True(ok)
	for row := 0; row < h.Height; row++ {
		env.False(h.At(0, row))
		env.False(h.At(h.Width-1, row))
	}
	env.Empty(report.Missing(), "Go Regular covers printable ASCII")
	env.True(report.Glyphs[0].Blank, "a space has no ink")
	dec, err := fonttable.Decode(flat)
	env.Require().NoError(err)
	env.Equal(ft.Widths, dec.Widths)
	env.T().Logf("preview:\n%s", dec.Preview([]byte("Hello")))
}

func (env *GoRegularTestEnviron) TestArabicGlyphsAreMissing() {
	cfg := window(0x80, 0x88)
	table, err := Repertoire(cfg)
	env.Require().NoError(err)
	_, report, err := Generate(cfg, env.ras, table)
	env.Require().NoError(err)
	env.Len(report.Missing(), 9)
	for _, g := range report.Glyphs {
		env.Equal(2, g.Width)
	}
}
