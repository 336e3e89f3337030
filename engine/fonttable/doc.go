/*
Package fonttable assembles packed glyphs into the font table format of DMD
display drivers, and decodes such tables again.

A font table starts with a header of 6 bytes:

	0  total size, low byte
	1  total size, high byte
	2  glyph width for fixed width fonts, 0 for variable width fonts
	3  font height in pixels
	4  code of the first glyph
	5  number of glyphs

Variable width fonts continue with one width byte per glyph, followed by the
glyph data. The data of a glyph is stored layer by layer, and each layer column
by column. A display driver finds the data of glyph c at

	index = (widths[0] + … + widths[c-1]) × vertBytes + charCount + 6

with vertBytes = (height+7)/8. A total size of 0 marks a fixed width font
without a width table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fonttable

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dmdfont.table'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.table")
}
