package slugify

const (
	maxCodepoint = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	nonCharMin   = 0xFDD0
	nonCharMax   = 0xFDEF
)

// Validate checks that input is well-formed UTF-8 under the strict rules this
// package requires for slug generation. Beyond structural checks (sequence
// truncation, continuation-byte patterns) it rejects overlong encodings,
// codepoints beyond U+10FFFF, UTF-16 surrogate halves, and Unicode
// non-characters.
//
// Overlong rejection is security-relevant: sequences such as 0xC0 0xAF
// (overlong '/') or 0xC0 0x80 (overlong NUL) decode differently across
// permissive decoders and are a known filter-bypass vector. Validation is
// whole-or-nothing: a single violation anywhere returns ErrInvalidEncoding
// for the entire input, with no repair or skipping.
func Validate(input string) error {
	for i := 0; i < len(input); {
		c := input[i]
		if c < 0x80 {
			i++
			continue
		}

		var size int
		var cp rune
		switch {
		case c&0xE0 == 0xC0:
			size, cp = 2, rune(c&0x1F)
		case c&0xF0 == 0xE0:
			size, cp = 3, rune(c&0x0F)
		case c&0xF8 == 0xF0:
			size, cp = 4, rune(c&0x07)
		default:
			// Stray continuation byte or 0xF8+ lead.
			return ErrInvalidEncoding
		}

		if i+size > len(input) {
			return ErrInvalidEncoding
		}
		for j := 1; j < size; j++ {
			cb := input[i+j]
			if cb&0xC0 != 0x80 {
				return ErrInvalidEncoding
			}
			cp = cp<<6 | rune(cb&0x3F)
		}

		if isOverlong(cp, size) {
			return ErrInvalidEncoding
		}
		if cp > maxCodepoint {
			return ErrInvalidEncoding
		}
		if cp >= surrogateMin && cp <= surrogateMax {
			return ErrInvalidEncoding
		}
		if isNonCharacter(cp) {
			return ErrInvalidEncoding
		}

		i += size
	}
	return nil
}

// isOverlong reports whether cp is encoded with more bytes than the minimum
// its value requires.
func isOverlong(cp rune, size int) bool {
	switch size {
	case 2:
		return cp < 0x80
	case 3:
		return cp < 0x800
	case 4:
		return cp < 0x10000
	}
	return false
}

func isNonCharacter(cp rune) bool {
	return (cp >= nonCharMin && cp <= nonCharMax) || cp&0xFFFE == 0xFFFE
}

// decodeRune decodes the UTF-8 sequence starting at s[i] and returns the
// codepoint together with the number of bytes consumed (1 to 4). It is the
// permissive decoder used by the size and generation passes, which only run
// after Validate has accepted the input; an invalid lead byte is consumed as
// a single-byte codepoint rather than reported.
func decodeRune(s string, i int) (rune, int) {
	c := s[i]
	if c < 0x80 {
		return rune(c), 1
	}

	var size int
	var cp rune
	switch {
	case c&0xE0 == 0xC0:
		size, cp = 2, rune(c&0x1F)
	case c&0xF0 == 0xE0:
		size, cp = 3, rune(c&0x0F)
	case c&0xF8 == 0xF0:
		size, cp = 4, rune(c&0x07)
	default:
		return rune(c), 1
	}
	if i+size > len(s) {
		return rune(c), 1
	}
	for j := 1; j < size; j++ {
		cp = cp<<6 | rune(s[i+j]&0x3F)
	}
	return cp, size
}
