package fontgen

import (
	"fmt"
	"io"
	"unicode"

	"github.com/npillmayer/dmdfont/core/repertoire"
	"github.com/npillmayer/dmdfont/engine/packer"
	"github.com/npillmayer/dmdfont/engine/sizing"
	"golang.org/x/text/unicode/runenames"
)

// GlyphInfo describes the packed glyph of a single code.
type GlyphInfo struct {
	Code   byte
	Kind   repertoire.Kind
	Scalar rune
	Label  string // SPACE, (reserved) or U+XXXX <char>
	Name   string // Unicode character name of mapped codes
	Width  int
	Blank  bool // no pixel set
}

// Report summarizes a generated font.
type Report struct {
	Fontname  string
	Metrics   sizing.Metrics
	Glyphs    []GlyphInfo
	TotalSize int
}

func newReport(name string, m sizing.Metrics, entries []repertoire.Entry,
	records []packer.GlyphRecord, total int) *Report {
	//
	r := &Report{Fontname: name, Metrics: m, TotalSize: total}
	r.Glyphs = make([]GlyphInfo, len(records))
	for i, g := range records {
		e := entries[i]
		info := GlyphInfo{Code: g.Code, Kind: e.Kind, Label: e.Label(), Width: g.Width, Blank: g.Blank()}
		if e.Kind == repertoire.Mapped {
			info.Scalar = e.Scalar
			info.Name = runenames.Name(e.Scalar)
			if info.Blank {
				tracer().Infof("0x%02X %s (%s) renders without ink", g.Code, info.Label, info.Name)
			}
		}
		r.Glyphs[i] = info
	}
	return r
}

// WidthStats returns the minimum, maximum and average glyph width.
func (r *Report) WidthStats() (min, max int, avg float64) {
	if len(r.Glyphs) == 0 {
		return 0, 0, 0
	}
	min, sum := r.Glyphs[0].Width, 0
	for _, g := range r.Glyphs {
		if g.Width < min {
			min = g.Width
		}
		if g.Width > max {
			max = g.Width
		}
		sum += g.Width
	}
	return min, max, float64(sum) / float64(len(r.Glyphs))
}

// Missing returns the mapped codes which have been packed as blank placeholders.
// White space and control characters are never reported, as they have no ink
// anyway.
func (r *Report) Missing() []GlyphInfo {
	var missing []GlyphInfo
	for _, g := range r.Glyphs {
		if g.Kind != repertoire.Mapped || unicode.IsSpace(g.Scalar) || unicode.IsControl(g.Scalar) {
			continue
		}
		if g.Blank {
			missing = append(missing, g)
		}
	}
	return missing
}

// WriteText writes a plain text version of the report.
func (r *Report) WriteText(w io.Writer) error {
	m := r.Metrics
	if _, err := fmt.Fprintf(w, "font %q at %dpt: height %dpx, %d byte(s) per column\n",
		r.Fontname, m.Size, m.FontHeight, m.VertBytes); err != nil {
		return err
	}
	for _, g := range r.Glyphs {
		if _, err := fmt.Fprintf(w, "0x%02X  %-16s width %d\n", g.Code, g.Label, g.Width); err != nil {
			return err
		}
	}
	min, max, avg := r.WidthStats()
	_, err := fmt.Fprintf(w, "widths: min %d, max %d, avg %.1f; total %d bytes\n", min, max, avg, r.TotalSize)
	return err
}
