package otquery

import (
	"unicode"

	"github.com/npillmayer/dmdfont/core/font"
	"github.com/npillmayer/dmdfont/core/repertoire"
)

// Coverage is the result of checking a set of characters against a font.
type Coverage struct {
	Total   int
	Missing []rune // in query order
}

// Covered returns the number of characters the font has glyphs for.
func (c Coverage) Covered() int {
	return c.Total - len(c.Missing)
}

// Complete reports whether no character is missing.
func (c Coverage) Complete() bool {
	return len(c.Missing) == 0
}

// CharCoverage checks which of runes f has glyphs for. Duplicates count once.
func CharCoverage(f *font.ScalableFont, runes []rune) Coverage {
	var cov Coverage
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true
		cov.Total++
		if !f.HasGlyph(r) {
			cov.Missing = append(cov.Missing, r)
		}
	}
	tracer().Debugf("font %s covers %d of %d characters", f.Fontname, cov.Covered(), cov.Total)
	return cov
}

// RepertoireCoverage checks the mapped characters of a repertoire against f.
// White space and control characters are not checked.
func RepertoireCoverage(f *font.ScalableFont, table *repertoire.Table) Coverage {
	runes := make([]rune, 0, table.Len())
	for _, e := range table.Entries() {
		if e.Kind != repertoire.Mapped || unicode.IsSpace(e.Scalar) || unicode.IsControl(e.Scalar) {
			continue
		}
		runes = append(runes, e.Scalar)
	}
	return CharCoverage(f, runes)
}
