package slugify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/slugify"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts well-formed input", func(t *testing.T) {
		t.Parallel()

		valid := []string{
			"",
			"hello",
			"café",
			"Привет мир",
			"日本語",
			"\xF0\x9D\x84\x9E",     // U+1D11E, 4-byte sequence
			"\xEF\xB7\xB0",         // U+FDF0, outside the U+FDD0..U+FDEF block
			"\xEF\xBF\xBD",         // U+FFFD replacement character is a real character
			"\xF4\x8F\xBF\xBD",     // U+10FFFD, top of the valid range
			"e\xCC\x81",            // combining mark is structurally fine
		}
		for _, s := range valid {
			assert.NoError(t, slugify.Validate(s), "input %q", s)
		}
	})

	t.Run("rejects malformed and adversarial input", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			input string
		}{
			{"overlong slash", "\xC0\xAF"},
			{"overlong nul", "\xC0\x80"},
			{"overlong A 2-byte", "\xC1\x81"},
			{"overlong A 3-byte", "\xE0\x81\x81"},
			{"overlong A 4-byte", "\xF0\x80\x81\x81"},
			{"overlong slash 3-byte", "\xE0\x80\xAF"},
			{"surrogate low bound", "\xED\xA0\x80"},
			{"surrogate high bound", "\xED\xBF\xBF"},
			{"non-character U+FDD0", "\xEF\xB7\x90"},
			{"non-character U+FDEF", "\xEF\xB7\xAF"},
			{"non-character U+FFFE", "\xEF\xBF\xBE"},
			{"non-character U+FFFF", "\xEF\xBF\xBF"},
			{"non-character U+1FFFE", "\xF0\x9F\xBF\xBE"},
			{"beyond U+10FFFF", "\xF4\x90\x80\x80"},
			{"0xF5 lead byte", "\xF5\x80\x80\x80"},
			{"stray continuation byte", "\x80abc"},
			{"0xFF lead byte", "\xFF"},
			{"truncated 2-byte sequence", "\xC3"},
			{"truncated 3-byte sequence", "\xE2\x82"},
			{"truncated 4-byte sequence", "\xF0\x9F\x98"},
			{"bad continuation in 2-byte", "\xC3\x28"},
			{"bad continuation in 3-byte", "\xE2\x82\x28"},
			{"bad continuation in 4-byte", "\xF0\x9F\x98\x28"},
			{"valid prefix then invalid", "hello\xC0\xAF"},
			{"invalid between valid", "\xC3\xB1\xC0\xAFA"},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				assert.ErrorIs(t, slugify.Validate(tt.input), slugify.ErrInvalidEncoding)
			})
		}
	})
}
