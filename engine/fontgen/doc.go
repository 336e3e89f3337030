/*
Package fontgen generates DMD bitmap fonts from outline fonts.

Generate runs the whole pipeline: select the largest point size which fits the
target height, compute the metrics shared by all glyphs, pack every glyph of the
repertoire and assemble the font table. Besides the table it returns a Report
for human consumption.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontgen

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dmdfont.fontgen'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.fontgen")
}
