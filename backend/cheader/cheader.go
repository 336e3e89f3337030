/*
Package cheader writes font tables as C header files for Arduino style display
drivers.

The table becomes a static byte array, placed in program memory with PROGMEM
on AVR targets. PROGMEM is defined empty where the platform does not know it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cheader

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/dmdfont/core"
)

// DefaultBytesPerLine is the number of array values per line of output.
const DefaultBytesPerLine = 16

// Header holds the naming and provenance parameters of a generated header file.
type Header struct {
	ArrayName    string // C identifier of the array
	Guard        string // include guard macro
	Title        string // first comment line
	Source       string // font file the table has been generated from
	Height       int    // font height in pixels
	FirstChar    byte
	CharCount    int
	BytesPerLine int // 0 means DefaultBytesPerLine
}

var headerTmpl = template.Must(template.New("cheader").Funcs(template.FuncMap{
	"hex": func(b int) string { return fmt.Sprintf("0x%02X", b) },
}).Parse(`#ifndef {{.Guard}}
#define {{.Guard}}

#include <inttypes.h>

// {{.Title}}
// Generated from: {{.Source}}
// Height: {{.Height}}px, variable width
// Characters: {{.CharCount}} ({{hex .First}} - {{hex .Last}})
// Total size: {{.Size}} bytes

#ifndef PROGMEM
#define PROGMEM
#endif

static const uint8_t {{.ArrayName}}[] PROGMEM = {
{{range .Lines}}    {{.}}
{{end}}};

#endif
`))

type tmplParams struct {
	Header
	First, Last int
	Size        int
	Lines       []string
}

// Write writes data, a flattened font table, as a C header file.
func Write(w io.Writer, h Header, data []byte) error {
	if h.ArrayName == "" || h.Guard == "" {
		return core.Error(core.EINVALID, "C header needs an array name and an include guard")
	}
	params := tmplParams{
		Header: h,
		First:  int(h.FirstChar),
		Last:   int(h.FirstChar) + h.CharCount - 1,
		Size:   len(data),
		Lines:  Lines(data, h.BytesPerLine),
	}
	if err := headerTmpl.Execute(w, params); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write C header for %s", h.ArrayName)
	}
	return nil
}

// Lines formats data as hex values, perLine values per line. Every line but
// the last one ends with a comma.
func Lines(data []byte, perLine int) []string {
	if perLine <= 0 {
		perLine = DefaultBytesPerLine
	}
	lines := make([]string, 0, (len(data)+perLine-1)/perLine)
	vals := make([]string, 0, perLine)
	for i := 0; i < len(data); i += perLine {
		vals = vals[:0]
		end := i + perLine
		if end > len(data) {
			end = len(data)
		}
		for _, b := range data[i:end] {
			vals = append(vals, fmt.Sprintf("0x%02X", b))
		}
		line := strings.Join(vals, ", ")
		if end < len(data) {
			line += ","
		}
		lines = append(lines, line)
	}
	return lines
}
