package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The estimator must replay the generator's decisions exactly: without a
// MaxLength the generated slug is either the estimated size or one byte
// shorter (the trailing separator trim). The generator must never need more
// than the estimate.
func TestEstimateMatchesGenerate(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello, World!",
		"Price: $99.99",
		"Café résumé naïve",
		"Привет мир",
		"Ends with dash-",
		"a---b",
		"  spaces  everywhere  ",
		"München straße 2024",
		"path/to/file.txt",
		"I ♥ NY",
		"100 €",
		"Ελληνικά",
		"Мать",
		"😀 emoji 🌍 mix",
		"x",
		"...a...",
	}

	variants := []options{
		defaultOptions(),
		{table: defaultTable, separator: '_', lowercase: true},
		{table: defaultTable, separator: '.', lowercase: true},
		{table: defaultTable, separator: '-', lowercase: false},
	}

	for _, input := range inputs {
		for _, o := range variants {
			capacity := estimate(input, &o)
			out, err := generate(input, &o, capacity)
			require.NoError(t, err, "input %q sep %q", input, o.separator)

			written := len(out)
			assert.LessOrEqual(t, written, capacity, "input %q", input)
			assert.GreaterOrEqual(t, written, capacity-1,
				"estimate must be exact modulo the trailing trim, input %q", input)
		}
	}
}

func TestEstimateWithMaxLength(t *testing.T) {
	t.Parallel()

	// The estimator ignores MaxLength; the generator enforces it at write
	// time within the estimated capacity.
	o := defaultOptions()
	o.maxLength = 10

	for _, input := range []string{
		"This is a very long title",
		"Café résumé naïve",
		"$$$ money $$$",
	} {
		capacity := estimate(input, &o)
		out, err := generate(input, &o, capacity)
		require.NoError(t, err, "input %q", input)
		assert.LessOrEqual(t, len(out), o.maxLength, "input %q", input)
		assert.LessOrEqual(t, len(out), capacity, "input %q", input)
	}
}

func TestGenerateEmptyResult(t *testing.T) {
	t.Parallel()

	o := defaultOptions()
	for _, input := range []string{"...", "\x01\x02", "😀😀", ""} {
		_, err := generate(input, &o, estimate(input, &o))
		assert.ErrorIs(t, err, ErrEmptyResult, "input %q", input)
	}
}

func TestGenerateCapacityCheck(t *testing.T) {
	t.Parallel()

	// An undersized capacity must fail loudly instead of overflowing.
	o := defaultOptions()
	_, err := generate("hello world", &o, 3)
	assert.ErrorIs(t, err, ErrBufferCapacity)
}

func TestDefaultTableSorted(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(defaultEntries); i++ {
		assert.Less(t, defaultEntries[i-1].Codepoint, defaultEntries[i].Codepoint,
			"entries %d and %d out of order", i-1, i)
	}

	// The shipped data must satisfy the same contract NewTable enforces.
	_, err := NewTable(defaultEntries)
	require.NoError(t, err)
}
