/*
Package otquery answers questions about the character coverage of fonts.

A bitmap font generator silently packs placeholders for characters an outline font
has no glyph for. Checking coverage up front tells a user whether a font is a
sensible choice for a repertoire at all.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dmdfont.font'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.font")
}
