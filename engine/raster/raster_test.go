package raster

import (
	"bytes"
	"image"
	"testing"

	"github.com/npillmayer/dmdfont/core/font"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBoundsOfBlock(t *testing.T) {
	c := NewCanvas(16)
	c.Fill(image.Rect(3, 5, 6, 12), 200)
	bb := Bounds(c, 80)
	if bb.Empty() {
		t.Fatalf("expected non-empty box")
	}
	if bb != (BoundingBox{MinCol: 3, MaxCol: 5, MinRow: 5, MaxRow: 11}) {
		t.Errorf("unexpected box %v", bb)
	}
	if bb.Width() != 3 || bb.Height() != 7 {
		t.Errorf("expected 3×7 box, is %d×%d", bb.Width(), bb.Height())
	}
}

func TestBoundsThresholdIsStrict(t *testing.T) {
	c := NewCanvas(8)
	c.Fill(image.Rect(1, 1, 2, 2), 80)
	c.Fill(image.Rect(4, 4, 5, 5), 81)
	bb := Bounds(c, 80)
	if bb != (BoundingBox{MinCol: 4, MaxCol: 4, MinRow: 4, MaxRow: 4}) {
		t.Errorf("brightness equal to threshold must count as off, box = %v", bb)
	}
}

func TestBoundsOfEmptyCanvas(t *testing.T) {
	c := NewCanvas(8)
	bb := Bounds(c, 0)
	if !bb.Empty() {
		t.Errorf("expected empty box, is %v", bb)
	}
	if bb.MinCol <= bb.MaxCol {
		t.Errorf("empty box must have MinCol > MaxCol")
	}
	if bb.Width() != 0 || bb.Height() != 0 || bb.TouchesBorder(8) {
		t.Errorf("empty box must have no extent")
	}
}

func TestTouchesBorder(t *testing.T) {
	c := NewCanvas(10)
	c.Fill(image.Rect(5, 2, 10, 4), 255)
	if !Bounds(c, 80).TouchesBorder(10) {
		t.Errorf("expected box to touch right border")
	}
	c = NewCanvas(10)
	c.Fill(image.Rect(2, 2, 4, 4), 255)
	if Bounds(c, 80).TouchesBorder(10) {
		t.Errorf("expected box off the border")
	}
}

func TestBrightnessOutside(t *testing.T) {
	c := NewCanvas(4)
	c.Fill(image.Rect(0, 0, 4, 4), 255)
	if c.Brightness(-1, 0) != 0 || c.Brightness(0, 4) != 0 {
		t.Errorf("samples outside of canvas must be 0")
	}
	if !c.On(3, 3, 254) {
		t.Errorf("expected sample (3,3) to be on")
	}
}

// --- Outline rasterizer ----------------------------------------------------

type OutlineTestEnviron struct {
	suite.Suite
	ras *OutlineRasterizer
}

// listen for 'go test' command --> run test methods
func TestOutlineRasterizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.raster")
	defer teardown()
	suite.Run(t, new(OutlineTestEnviron))
}

// run once, before test suite methods
func (env *OutlineTestEnviron) SetupSuite() {
	tracing.Select("dmdfont.font").SetTraceLevel(tracing.LevelError)
	f, err := font.ParseOpenTypeFont(goregular.TTF)
	env.Require().NoError(err)
	env.ras = NewOutlineRasterizer(f, 80)
}

// run once, after test suite methods
func (env *OutlineTestEnviron) TearDownSuite() {
	env.NoError(env.ras.Close())
}

func (env *OutlineTestEnviron) TestRenderLatin() {
	c, err := env.ras.Render('H', 11)
	env.Require().NoError(err)
	env.Equal(80, c.Side())
	bb := Bounds(c, 80)
	env.Require().False(bb.Empty(), "expected 'H' to produce ink")
	env.T().Logf("box of 'H' at 11pt = %v", bb)
	env.GreaterOrEqual(bb.MinCol, 20, "glyph must start right of the origin column")
	env.Less(bb.MaxCol, 40)
	env.GreaterOrEqual(bb.MinRow, 20, "glyph must start below the origin row")
	env.LessOrEqual(bb.Height(), 11)
	env.False(bb.TouchesBorder(80))
}

func (env *OutlineTestEnviron) TestRenderMissingGlyph() {
	c, err := env.ras.Render(0xFE8F, 11) // BEH isolated, not in Go Regular
	env.Require().NoError(err)
	env.True(Bounds(c, 80).Empty(), "missing glyph must render as empty canvas")
}

func (env *OutlineTestEnviron) TestRenderIsDeterministic() {
	c1, err := env.ras.Render('g', 14)
	env.Require().NoError(err)
	c2, err := env.ras.Render('g', 14)
	env.Require().NoError(err)
	env.True(bytes.Equal(c1.img.Pix, c2.img.Pix), "expected identical renders")
}

func (env *OutlineTestEnviron) TestLargerSizesGrow() {
	small, err := env.ras.Render('H', 8)
	env.Require().NoError(err)
	large, err := env.ras.Render('H', 20)
	env.Require().NoError(err)
	env.Greater(Bounds(large, 80).Height(), Bounds(small, 80).Height())
}
