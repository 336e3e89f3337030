package repertoire

// ArabicSpace is the code of the blank space glyph in the Arabic repertoire.
const ArabicSpace byte = 0xF0

// Arabic returns the repertoire of the DMD32Plus Arabic font: ASCII at
// 0x20–0x7F, Arabic presentation forms at 0x80–0xEF (encoded as presentation
// forms so the runtime shaper can select isolated, initial, medial and final
// glyphs), space at 0xF0, digits and punctuation at 0xF1–0xFF.
func Arabic() *Table {
	return MustNew(0x20, 0xFF, ArabicScalars(), ArabicSpace)
}

// ArabicScalars returns a fresh copy of the code-to-scalar mapping of the
// Arabic repertoire.
func ArabicScalars() map[byte]rune {
	m := make(map[byte]rune, len(arabicScalars)+0x60)
	for c := 0x20; c <= 0x7F; c++ {
		m[byte(c)] = rune(c)
	}
	for code, r := range arabicScalars {
		m[code] = r
	}
	return m
}

var arabicScalars = map[byte]rune{
	0x80: '\uFE80', // HAMZA isolated
	0x81: '\uFE81', 0x82: '\uFE82', // ALEF_MADDA
	0x83: '\uFE83', 0x84: '\uFE84', // ALEF_HAMZA_ABOVE
	0x85: '\uFE87', 0x86: '\uFE88', // ALEF_HAMZA_BELOW
	0x87: '\uFE8D', 0x88: '\uFE8E', // ALEF
	0x89: '\uFE8F', 0x8A: '\uFE90', 0x8B: '\uFE91', 0x8C: '\uFE92', // BEH
	0x8D: '\uFE93', 0x8E: '\uFE94', // TEH_MARBUTA
	0x8F: '\uFE95', 0x90: '\uFE96', 0x91: '\uFE97', 0x92: '\uFE98', // TEH
	0x93: '\uFE99', 0x94: '\uFE9A', 0x95: '\uFE9B', 0x96: '\uFE9C', // THEH
	0x97: '\uFE9D', 0x98: '\uFE9E', 0x99: '\uFE9F', 0x9A: '\uFEA0', // JEEM
	0x9B: '\uFEA1', 0x9C: '\uFEA2', 0x9D: '\uFEA3', 0x9E: '\uFEA4', // HAH
	0x9F: '\uFEA5', 0xA0: '\uFEA6', 0xA1: '\uFEA7', 0xA2: '\uFEA8', // KHAH
	0xA3: '\uFEA9', 0xA4: '\uFEAA', // DAL
	0xA5: '\uFEAB', 0xA6: '\uFEAC', // THAL
	0xA7: '\uFEAD', 0xA8: '\uFEAE', // REH
	0xA9: '\uFEAF', 0xAA: '\uFEB0', // ZAIN
	0xAB: '\uFEB1', 0xAC: '\uFEB2', 0xAD: '\uFEB3', 0xAE: '\uFEB4', // SEEN
	0xAF: '\uFEB5', 0xB0: '\uFEB6', 0xB1: '\uFEB7', 0xB2: '\uFEB8', // SHEEN
	0xB3: '\uFEB9', 0xB4: '\uFEBA', 0xB5: '\uFEBB', 0xB6: '\uFEBC', // SAD
	0xB7: '\uFEBD', 0xB8: '\uFEBE', 0xB9: '\uFEBF', 0xBA: '\uFEC0', // DAD
	0xBB: '\uFEC1', 0xBC: '\uFEC2', 0xBD: '\uFEC3', 0xBE: '\uFEC4', // TAH
	0xBF: '\uFEC5', 0xC0: '\uFEC6', 0xC1: '\uFEC7', 0xC2: '\uFEC8', // ZAH
	0xC3: '\uFEC9', 0xC4: '\uFECA', 0xC5: '\uFECB', 0xC6: '\uFECC', // AIN
	0xC7: '\uFECD', 0xC8: '\uFECE', 0xC9: '\uFECF', 0xCA: '\uFED0', // GHAIN
	0xCB: '\uFED1', 0xCC: '\uFED2', 0xCD: '\uFED3', 0xCE: '\uFED4', // FEH
	0xCF: '\uFED5', 0xD0: '\uFED6', 0xD1: '\uFED7', 0xD2: '\uFED8', // QAF
	0xD3: '\uFED9', 0xD4: '\uFEDA', 0xD5: '\uFEDB', 0xD6: '\uFEDC', // KAF
	0xD7: '\uFEDD', 0xD8: '\uFEDE', 0xD9: '\uFEDF', 0xDA: '\uFEE0', // LAM
	0xDB: '\uFEE1', 0xDC: '\uFEE2', 0xDD: '\uFEE3', 0xDE: '\uFEE4', // MEEM
	0xDF: '\uFEE5', 0xE0: '\uFEE6', 0xE1: '\uFEE7', 0xE2: '\uFEE8', // NOON
	0xE3: '\uFEE9', 0xE4: '\uFEEA', 0xE5: '\uFEEB', 0xE6: '\uFEEC', // HEH
	0xE7: '\uFEED', 0xE8: '\uFEEE', // WAW
	0xE9: '\uFEEF', 0xEA: '\uFEF0', // ALEF_MAKSURA
	0xEB: '\uFEF1', 0xEC: '\uFEF2', 0xED: '\uFEF3', 0xEE: '\uFEF4', // YEH
	0xEF: '\u0640', // TATWEEL
	// 0xF0 is the space glyph
	0xF1: '0', 0xF2: '1', 0xF3: '2', 0xF4: '3', 0xF5: '4',
	0xF6: '5', 0xF7: '6', 0xF8: '7', 0xF9: '8', 0xFA: '9',
	0xFB: '\u060C', // ARABIC COMMA
	0xFC: '.',
	0xFD: '\u061F', // ARABIC QUESTION MARK
	0xFE: '\uFEFB', // LAM_ALEF isolated
	0xFF: '\uFEFC', // LAM_ALEF final
}
