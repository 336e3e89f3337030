/*
Package fontregistry manages a registry for loaded fonts and their typecases.

The size selector of the bitmap font generator asks for the same font at many
point sizes, and the glyph packer asks again for the selected one. The registry
caches a typecase per font and size, so every face is created only once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dmdfont.font'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.font")
}
