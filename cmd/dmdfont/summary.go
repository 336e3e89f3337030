package main

import (
	"fmt"

	"github.com/npillmayer/dmdfont/core/repertoire"
	"github.com/npillmayer/dmdfont/engine/fontgen"
	"github.com/npillmayer/dmdfont/engine/fonttable"
	"github.com/pterm/pterm"
)

func printSummary(report *fontgen.Report) error {
	data := pterm.TableData{{"Code", "Glyph", "Name", "Width"}}
	for _, g := range report.Glyphs {
		data = append(data, []string{
			fmt.Sprintf("0x%02X", g.Code), g.Label, g.Name, fmt.Sprintf("%d", g.Width),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	min, max, avg := report.WidthStats()
	pterm.Info.Printfln("Total font bytes: %d", report.TotalSize)
	pterm.Info.Printfln("Char widths: min=%d, max=%d, avg=%.1f", min, max, avg)
	for _, g := range report.Missing() {
		pterm.Warning.Printfln("0x%02X %s has no glyph in this font", g.Code, g.Label)
	}
	return nil
}

// printPreview draws text with the generated font. Runes are looked up
// one by one; there is no shaping.
func printPreview(ft *fonttable.FontTable, table *repertoire.Table, text string) {
	codes := make([]byte, 0, len(text))
	for _, r := range text {
		code, ok := table.Encode(r)
		if !ok || !ft.Contains(code) {
			pterm.Warning.Printfln("preview: U+%04X is not in the font", r)
			continue
		}
		codes = append(codes, code)
	}
	fmt.Println(ft.Preview(codes))
}
