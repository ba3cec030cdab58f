package slugify

type options struct {
	table        *Table
	replacements map[string]string
	stripChars   string
	reserved     []string
	maxLength    int
	minLength    int
	suffixLength int
	separator    byte
	lowercase    bool
}

func defaultOptions() options {
	return options{
		table:     defaultTable,
		separator: '-',
		lowercase: true,
	}
}

// Option configures slug generation.
type Option func(*options)

// Separator sets the byte used between words.
// Must be printable ASCII punctuation; invalid values are ignored.
// Defaults to '-'.
func Separator(c byte) Option {
	return func(o *options) {
		if isASCIIPunct(c) {
			o.separator = c
		}
	}
}

// MaxLength limits the slug length in bytes, measured on the generated
// output (post-transliteration). A transliteration expansion that straddles
// the limit is cut off at the limit. Defaults to 0, meaning unlimited.
func MaxLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxLength = n
		}
	}
}

// MinLength sets the minimum slug length in bytes. A shorter result is
// padded with the separator and a random suffix to reach exactly n.
func MinLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minLength = n
		}
	}
}

// Lowercase controls case conversion. Enabled by default.
//
// Lowercase(false) preserves the input completely: ASCII and transliterated
// characters keep their case, and non-ASCII characters are copied into the
// output as their raw UTF-8 bytes instead of being transliterated or dropped.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// StripChars removes the given characters from the input before processing.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies string replacements to the input before processing.
// Replacements are applied in a single pass, longest match first.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		if len(replacements) > 0 {
			o.replacements = replacements
		}
	}
}

// WithSuffix appends the separator and n random lowercase alphanumeric
// characters to the slug, for collision resistance. When MaxLength is also
// set, the base slug is truncated so the suffixed result still fits.
func WithSuffix(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.suffixLength = n
		}
	}
}

// ReservedSlugs prevents the given slugs (case-insensitive) from being
// returned as-is; a matching result gets a random suffix appended.
func ReservedSlugs(slugs ...string) Option {
	return func(o *options) {
		o.reserved = append(o.reserved, slugs...)
	}
}

// WithTable swaps the transliteration table. Use NewTable to build one.
// A nil table is ignored and the default table is kept.
func WithTable(t *Table) Option {
	return func(o *options) {
		if t != nil {
			o.table = t
		}
	}
}
