/*
Package resources resolves the outline font a bitmap font is generated from.

Fonts are located by an ordered list of candidates. A candidate is either a
file path or a bare font file name. Paths are checked as given, bare names are
searched for in the platform's font directories (using go-findfont). The first
candidate found wins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'dmdfont.resources'.
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.resources")
}
