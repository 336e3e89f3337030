package repertoire

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dmdfont.repertoire'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.repertoire")
}
