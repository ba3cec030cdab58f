package slugify

import (
	"sort"
	"strings"
)

// reservedSuffixLength is the suffix size appended when a result collides
// with a reserved slug and no explicit suffix length was configured.
const reservedSuffixLength = 6

// Slugify converts input into a URL-safe slug.
//
// The input is validated as strict UTF-8 first (see Validate); then a size
// pass computes the exact output capacity and a generation pass fills it.
// Conversion either fully succeeds or fully fails with one of the package's
// sentinel errors: ErrInvalidInput for empty input, ErrInvalidEncoding for
// rejected byte sequences, ErrEmptyResult when nothing sluggable remains.
func Slugify(input string, opts ...Option) (string, error) {
	if input == "" {
		return "", ErrInvalidInput
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := Validate(input); err != nil {
		return "", err
	}

	text := o.preprocess(input)
	if text != input {
		// Replacement values are caller data and may be arbitrary bytes.
		if err := Validate(text); err != nil {
			return "", err
		}
	}

	out, err := generate(text, &o, estimate(text, &o))
	if err != nil {
		return "", err
	}
	return o.finalize(string(out)), nil
}

// Make converts input into a URL-safe slug, returning an empty string when
// conversion fails. Use Slugify to distinguish failure causes.
func Make(input string, opts ...Option) string {
	s, err := Slugify(input, opts...)
	if err != nil {
		return ""
	}
	return s
}

// preprocess applies CustomReplace and StripChars to the input text.
func (o *options) preprocess(input string) string {
	if len(o.replacements) > 0 {
		keys := make([]string, 0, len(o.replacements))
		for k := range o.replacements {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(o.replacements)*2)
		for _, k := range keys {
			pairs = append(pairs, k, o.replacements[k])
		}
		input = strings.NewReplacer(pairs...).Replace(input)
	}
	if o.stripChars != "" {
		input = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, input)
	}
	return input
}

// finalize appends a random suffix when WithSuffix, ReservedSlugs, or
// MinLength require one, truncating the base to honor MaxLength.
func (o *options) finalize(s string) string {
	n := o.suffixLength
	if n == 0 && o.isReserved(s) {
		n = reservedSuffixLength
	}
	if n == 0 && o.minLength > 0 && len(s) < o.minLength {
		n = o.minLength - len(s) - 1
		if n < 1 {
			n = 1
		}
	}
	if n == 0 {
		return s
	}
	// Separator plus suffix plus at least one base byte must fit.
	if o.maxLength > 0 && n+2 > o.maxLength {
		return s
	}

	sep := string(rune(o.separator))
	if o.maxLength > 0 {
		if avail := o.maxLength - n - 1; avail < len(s) {
			if avail < 1 {
				avail = 1
			}
			s = strings.TrimRight(s[:avail], sep)
		}
	}
	return s + sep + randomSuffix(n)
}

func (o *options) isReserved(s string) bool {
	for _, r := range o.reserved {
		if strings.EqualFold(s, r) {
			return true
		}
	}
	return false
}
