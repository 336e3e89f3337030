/*
Package font is for loading outline fonts and scaling them to point sizes.

We stick to the nomenclature of the typesetting world:

* A "scalable font" is an outline font file, e.g. "Tahoma regular".

* A "typecase" is a scaled font, i.e. a scalable font in a certain size,
ready to draw glyphs onto a bitmap. The name is reminiscent of the wooden
boxes of typesetters in the era of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Point sizes are interpreted at 72 DPI, i.e. one point equals one pixel. This is
what the bitmap font generator expects: the size selector works in pixel
heights.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'dmdfont.font'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.font")
}

// DPI is the resolution typecases are prepared for. At 72 DPI a point is a pixel.
const DPI = 72

// ScalableFont is an outline font, loaded from a font file.
// It is not safe for concurrent use.
type ScalableFont struct {
	Fontname string      // full font name, from the font's name table
	Filepath string      // file path, empty for in-memory fonts
	Binary   []byte      // raw data
	SFNT     *sfnt.Font  // the font's container
	buf      sfnt.Buffer // scratch buffer for glyph queries
}

// TypeCase is a scalable font at a given point size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// LoadOpenTypeFont loads an OpenType or TrueType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	if f.Fontname == "" {
		f.Fontname = filepath.Base(fontfile)
	}
	tracer().Infof("loaded font %s from %s", f.Fontname, fontfile)
	return f, nil
}

// ParseOpenTypeFont parses font data in memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	f.Fontname, _ = f.SFNT.Name(&f.buf, sfnt.NameIDFull)
	return
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
func (sf *ScalableFont) HasGlyph(r rune) bool {
	gid, err := sf.SFNT.GlyphIndex(&sf.buf, r)
	return err == nil && gid != 0
}

// PrepareCase creates a typecase of the font at a point size.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	if fontsize <= 0 || fontsize > 500.0 {
		return nil, core.Error(core.EINVALID, "font size must be 0pt < size <= 500pt, is %g", fontsize)
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     DPI,
		Hinting: xfont.HintingFull,
	}
	face, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create face for %s at %gpt", sf.Fontname, fontsize)
	}
	return &TypeCase{
		scalableFontParent: sf,
		face:               face,
		size:               fontsize,
	}, nil
}

// ScalableFontParent returns the font a typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the point size of a typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// Face returns the typecase as a Go font face, ready for drawing.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// Ascent returns the distance from the top of a line to its baseline.
func (tc *TypeCase) Ascent() fixed.Int26_6 {
	return tc.face.Metrics().Ascent
}

// Close releases the resources of a typecase.
func (tc *TypeCase) Close() error {
	if tc.face == nil {
		return nil
	}
	return tc.face.Close()
}
