package slugify

import "errors"

var (
	// ErrInvalidInput is returned when the input string is empty.
	ErrInvalidInput = errors.New("slugify: empty input")

	// ErrInvalidEncoding is returned when UTF-8 validation rejects the input.
	// Any malformed sequence, overlong encoding, surrogate half, out-of-range
	// codepoint, or non-character anywhere in the input rejects it wholesale.
	ErrInvalidEncoding = errors.New("slugify: invalid utf-8 encoding")

	// ErrEmptyResult is returned when valid input produces no sluggable
	// output, e.g. input consisting solely of unmapped symbols.
	ErrEmptyResult = errors.New("slugify: no sluggable characters in input")

	// ErrBufferCapacity is returned when the generator would write beyond the
	// capacity computed by the size estimator. It indicates an internal
	// estimator/generator mismatch and should never occur.
	ErrBufferCapacity = errors.New("slugify: output exceeded estimated capacity")

	// ErrInvalidTable is returned by NewTable when the entries violate the
	// table contract (sorted ascending, unique, positive codepoints, ASCII
	// replacements).
	ErrInvalidTable = errors.New("slugify: invalid transliteration table")
)
