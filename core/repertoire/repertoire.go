/*
Package repertoire maps the 1-byte glyph codes of a packed display font to the
Unicode characters they show.

Every code of a table's window is classified exactly once: it is either mapped
to a Unicode scalar, marks the blank space glyph, or is reserved. Reserved codes
are packed as empty placeholder glyphs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package repertoire

import (
	"fmt"

	"github.com/npillmayer/dmdfont/core"
)

// Kind classifies a glyph code.
type Kind uint8

const (
	Reserved Kind = iota // no glyph, packed as a placeholder
	Mapped               // code shows a Unicode scalar
	Space                // blank space glyph
)

func (k Kind) String() string {
	switch k {
	case Mapped:
		return "mapped"
	case Space:
		return "space"
	}
	return "reserved"
}

// Entry is a single, immutable glyph code classification.
type Entry struct {
	Code   byte
	Kind   Kind
	Scalar rune // valid for Kind == Mapped only
}

// Label returns a human readable label for an entry, as used in console summaries.
func (e Entry) Label() string {
	switch e.Kind {
	case Space:
		return "SPACE"
	case Mapped:
		return fmt.Sprintf("U+%04X %c", e.Scalar, e.Scalar)
	}
	return "(reserved)"
}

// Table is an ordered, immutable mapping of a contiguous window of codes to entries.
type Table struct {
	first   byte
	entries []Entry
	codes   map[rune]byte // reverse mapping, lowest code wins
}

// New creates a repertoire table for codes first…last (inclusive).
// Codes present in scalars are mapped, codes listed in spaces are space glyphs,
// every other code of the window is reserved.
//
// New fails with an EINVALID error if the window is empty, holds more than 255
// codes, or if scalars or spaces name codes outside the window or classify a code
// twice.
func New(first, last byte, scalars map[byte]rune, spaces ...byte) (*Table, error) {
	if first > last {
		return nil, core.Error(core.EINVALID, "repertoire window 0x%02X-0x%02X is empty", first, last)
	}
	count := int(last) - int(first) + 1
	if count > 255 {
		return nil, core.Error(core.EINVALID, "repertoire window 0x%02X-0x%02X exceeds 255 codes", first, last)
	}
	inWindow := func(c byte) bool { return c >= first && c <= last }
	for code := range scalars {
		if !inWindow(code) {
			return nil, core.Error(core.EINVALID, "mapped code 0x%02X outside of repertoire window", code)
		}
	}
	isSpace := make(map[byte]bool, len(spaces))
	for _, code := range spaces {
		if !inWindow(code) {
			return nil, core.Error(core.EINVALID, "space code 0x%02X outside of repertoire window", code)
		}
		if _, ok := scalars[code]; ok {
			return nil, core.Error(core.EINVALID, "code 0x%02X is both space and mapped", code)
		}
		isSpace[code] = true
	}
	t := &Table{
		first:   first,
		entries: make([]Entry, count),
		codes:   make(map[rune]byte, len(scalars)),
	}
	for i := 0; i < count; i++ {
		code := byte(int(first) + i)
		e := Entry{Code: code}
		if r, ok := scalars[code]; ok {
			e.Kind, e.Scalar = Mapped, r
			if _, dup := t.codes[r]; !dup {
				t.codes[r] = code
			}
		} else if isSpace[code] {
			e.Kind = Space
		}
		t.entries[i] = e
	}
	tracer().Debugf("repertoire 0x%02X-0x%02X: %d codes, %d mapped", first, last, count, len(scalars))
	return t, nil
}

// MustNew is like New, but panics on error. It is intended for static tables.
func MustNew(first, last byte, scalars map[byte]rune, spaces ...byte) *Table {
	t, err := New(first, last, scalars, spaces...)
	if err != nil {
		panic(err)
	}
	return t
}

// First returns the first code of the window.
func (t *Table) First() byte {
	return t.first
}

// Last returns the last code of the window.
func (t *Table) Last() byte {
	return byte(int(t.first) + len(t.entries) - 1)
}

// Len returns the number of codes in the window.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all entries in code order. The slice is a copy.
func (t *Table) Entries() []Entry {
	e := make([]Entry, len(t.entries))
	copy(e, t.entries)
	return e
}

// Entry returns the entry for a code, if the code is within the window.
func (t *Table) Entry(code byte) (Entry, bool) {
	if code < t.first || int(code) >= int(t.first)+len(t.entries) {
		return Entry{}, false
	}
	return t.entries[code-t.first], true
}

// Encode returns the code showing scalar r. If more than one code maps to r,
// the lowest code is returned. Arabic-Indic and extended Arabic-Indic digits
// fold to the ASCII digits.
func (t *Table) Encode(r rune) (byte, bool) {
	if code, ok := t.codes[r]; ok {
		return code, true
	}
	switch {
	case r >= 0x0660 && r <= 0x0669:
		return t.Encode('0' + (r - 0x0660))
	case r >= 0x06F0 && r <= 0x06F9:
		return t.Encode('0' + (r - 0x06F0))
	case r == ' ':
		for _, e := range t.entries {
			if e.Kind == Space {
				return e.Code, true
			}
		}
	}
	return 0, false
}
