package fontgen

import (
	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/dmdfont/core/config"
	"github.com/npillmayer/dmdfont/core/font"
	"github.com/npillmayer/dmdfont/core/repertoire"
	"github.com/npillmayer/dmdfont/engine/fonttable"
	"github.com/npillmayer/dmdfont/engine/packer"
	"github.com/npillmayer/dmdfont/engine/raster"
	"github.com/npillmayer/dmdfont/engine/sizing"
)

// Repertoire returns the Arabic repertoire, restricted to the code window of cfg.
func Repertoire(cfg *config.Config) (*repertoire.Table, error) {
	scalars := make(map[byte]rune)
	for code, r := range repertoire.ArabicScalars() {
		if code >= cfg.FirstChar && code <= cfg.LastChar {
			scalars[code] = r
		}
	}
	var spaces []byte
	if repertoire.ArabicSpace >= cfg.FirstChar && repertoire.ArabicSpace <= cfg.LastChar {
		spaces = append(spaces, repertoire.ArabicSpace)
	}
	return repertoire.New(cfg.FirstChar, cfg.LastChar, scalars, spaces...)
}

// Generate creates the bitmap font of table, rendering glyphs with ras.
// Configuration errors are returned before any glyph is rendered.
func Generate(cfg *config.Config, ras raster.Rasterizer, table *repertoire.Table) (*fonttable.FontTable, *Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if table == nil || table.Len() == 0 {
		return nil, nil, core.Error(core.EINVALID, "empty repertoire")
	}
	entries := table.Entries()
	sizes := sizing.Range{Min: cfg.MinSize, Max: cfg.MaxSize}
	size, err := sizing.SelectSize(ras, entries, cfg.TargetMaxHeight, sizes, cfg.Threshold)
	if err != nil {
		return nil, nil, err
	}
	metrics, err := sizing.GlobalMetrics(ras, entries, size, cfg.TargetMaxHeight, cfg.Threshold)
	if err != nil {
		return nil, nil, err
	}
	records, err := packer.New(ras, metrics, cfg.Threshold).PackAll(entries)
	if err != nil {
		return nil, nil, err
	}
	ft := fonttable.Assemble(records, metrics.FontHeight, table.First(), table.Len(), metrics.VertBytes)
	report := newReport(fontname(ras), metrics, entries, records, ft.TotalSize())
	tracer().Infof("generated %d glyphs, %d bytes", len(records), report.TotalSize)
	return ft, report, nil
}

// fontname returns the name of the font a rasterizer draws with, if it tells.
func fontname(ras raster.Rasterizer) string {
	if f, ok := ras.(interface{ Font() *font.ScalableFont }); ok && f.Font() != nil {
		return f.Font().Fontname
	}
	return ""
}
