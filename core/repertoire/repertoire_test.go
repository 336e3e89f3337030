package repertoire

import (
	"testing"

	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArabicCoversWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmdfont.repertoire")
	defer teardown()
	//
	tab := Arabic()
	require.Equal(t, 224, tab.Len())
	assert.Equal(t, byte(0x20), tab.First())
	assert.Equal(t, byte(0xFF), tab.Last())
	kinds := map[Kind]int{}
	for i, e := range tab.Entries() {
		assert.Equal(t, byte(0x20+i), e.Code, "entries must be in code order without gaps")
		kinds[e.Kind]++
	}
	assert.Equal(t, 1, kinds[Space])
	assert.Equal(t, 223, kinds[Mapped])
	assert.Equal(t, 0, kinds[Reserved])
}

func TestArabicSamples(t *testing.T) {
	tab := Arabic()
	for code, want := range map[byte]rune{
		0x41: 'A',
		0x7F: 0x7F,
		0x80: 0xFE80,
		0x85: 0xFE87,
		0x89: 0xFE8F,
		0xEE: 0xFEF4,
		0xEF: 0x0640,
		0xF1: '0',
		0xFA: '9',
		0xFF: 0xFEFC,
	} {
		e, ok := tab.Entry(code)
		require.True(t, ok)
		assert.Equal(t, Mapped, e.Kind, "code 0x%02X", code)
		assert.Equal(t, want, e.Scalar, "code 0x%02X", code)
	}
	e, ok := tab.Entry(ArabicSpace)
	require.True(t, ok)
	assert.Equal(t, Space, e.Kind)
	_, ok = tab.Entry(0x1F)
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "SPACE", Entry{Kind: Space}.Label())
	assert.Equal(t, "(reserved)", Entry{Kind: Reserved}.Label())
	assert.Equal(t, "U+0041 A", Entry{Kind: Mapped, Scalar: 'A'}.Label())
}

func TestNewClassifiesGaps(t *testing.T) {
	tab, err := New(0x41, 0x43, map[byte]rune{0x41: 'A'}, 0x43)
	require.NoError(t, err)
	entries := tab.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Mapped, entries[0].Kind)
	assert.Equal(t, Reserved, entries[1].Kind)
	assert.Equal(t, Space, entries[2].Kind)
}

func TestNewRejectsInvalidWindows(t *testing.T) {
	_, err := New(0x50, 0x40, nil)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = New(0x00, 0xFF, nil)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = New(0x20, 0x30, map[byte]rune{0x31: 'x'})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = New(0x20, 0x30, map[byte]rune{0x21: 'x'}, 0x21)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = New(0x20, 0x30, nil, 0x40)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestEncode(t *testing.T) {
	tab := Arabic()
	code, ok := tab.Encode('A')
	assert.True(t, ok)
	assert.Equal(t, byte(0x41), code)
	// '0' is mapped at 0x30 and 0xF1, lowest wins
	code, ok = tab.Encode('0')
	assert.True(t, ok)
	assert.Equal(t, byte(0x30), code)
	code, ok = tab.Encode(0x0663) // ARABIC-INDIC DIGIT THREE
	assert.True(t, ok)
	assert.Equal(t, byte(0x33), code)
	code, ok = tab.Encode(0x06F9) // EXTENDED ARABIC-INDIC DIGIT NINE
	assert.True(t, ok)
	assert.Equal(t, byte(0x39), code)
	code, ok = tab.Encode(0xFEFB)
	assert.True(t, ok)
	assert.Equal(t, byte(0xFE), code)
	_, ok = tab.Encode('€')
	assert.False(t, ok)
	//
	small := MustNew(0x41, 0x42, map[byte]rune{0x41: 'A'}, 0x42)
	code, ok = small.Encode(' ')
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), code)
}
