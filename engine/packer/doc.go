/*
Package packer turns rendered glyphs into the column bytes of a DMD font.

Glyphs are stored column by column. A column of a font up to 8 pixels high is a
single byte, bit k holding row k. Fonts of 9 to 16 pixels use two bytes per
column, called layers. Layer 0 holds rows 0…7. Layer 1 is aligned to the
bottom of the glyph: bit k of layer 1 holds row (height-8)+k, and bits for rows
already covered by layer 0 stay clear.

	            layer 0            layer 1 (height 11, offset 3)
	row  0 … 7  bit 0 … 7          -
	row  8      -                  bit 5
	row  9      -                  bit 6
	row 10      -                  bit 7

Latin glyphs (codes 0x20…0x7E) get a blank column on both sides, so that
running text does not need any extra spacing. Arabic glyphs are packed without
padding, as they join their neighbours.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package packer

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dmdfont.packer'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.packer")
}
