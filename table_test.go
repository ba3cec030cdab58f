package slugify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify"
)

func TestTableLookup(t *testing.T) {
	t.Parallel()

	table := slugify.DefaultTable()

	t.Run("diacritic mapping", func(t *testing.T) {
		t.Parallel()

		repl, ok := table.Lookup('é')
		require.True(t, ok)
		assert.Equal(t, "e", repl)
	})

	t.Run("multi-byte replacement", func(t *testing.T) {
		t.Parallel()

		repl, ok := table.Lookup('ß')
		require.True(t, ok)
		assert.Equal(t, "ss", repl)
	})

	t.Run("empty replacement is a mapping", func(t *testing.T) {
		t.Parallel()

		repl, ok := table.Lookup('ь')
		require.True(t, ok)
		assert.Empty(t, repl)
	})

	t.Run("first entry reachable", func(t *testing.T) {
		t.Parallel()

		repl, ok := table.Lookup('$')
		require.True(t, ok)
		assert.Equal(t, "dollar", repl)
	})

	t.Run("last entry reachable", func(t *testing.T) {
		t.Parallel()

		repl, ok := table.Lookup('﷼')
		require.True(t, ok)
		assert.Equal(t, "rial", repl)
	})

	t.Run("no mapping", func(t *testing.T) {
		t.Parallel()

		for _, r := range []rune{'a', 'z', '0', ' ', '😀', 0x4E00} {
			_, ok := table.Lookup(r)
			assert.False(t, ok, "unexpected mapping for %U", r)
		}
	})
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("valid entries", func(t *testing.T) {
		t.Parallel()

		table, err := slugify.NewTable([]slugify.Entry{
			{Codepoint: 0xE9, Replacement: "e"},
			{Codepoint: 0x20AC, Replacement: "euro"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())

		repl, ok := table.Lookup(0x20AC)
		require.True(t, ok)
		assert.Equal(t, "euro", repl)
	})

	t.Run("input slice is copied", func(t *testing.T) {
		t.Parallel()

		entries := []slugify.Entry{{Codepoint: 0xE9, Replacement: "e"}}
		table, err := slugify.NewTable(entries)
		require.NoError(t, err)

		entries[0] = slugify.Entry{Codepoint: 0xE9, Replacement: "x"}
		repl, ok := table.Lookup(0xE9)
		require.True(t, ok)
		assert.Equal(t, "e", repl)
	})

	t.Run("rejects unsorted entries", func(t *testing.T) {
		t.Parallel()

		_, err := slugify.NewTable([]slugify.Entry{
			{Codepoint: 0x20AC, Replacement: "euro"},
			{Codepoint: 0xE9, Replacement: "e"},
		})
		assert.ErrorIs(t, err, slugify.ErrInvalidTable)
	})

	t.Run("rejects duplicate codepoints", func(t *testing.T) {
		t.Parallel()

		_, err := slugify.NewTable([]slugify.Entry{
			{Codepoint: 0xE9, Replacement: "e"},
			{Codepoint: 0xE9, Replacement: "ee"},
		})
		assert.ErrorIs(t, err, slugify.ErrInvalidTable)
	})

	t.Run("rejects zero codepoint", func(t *testing.T) {
		t.Parallel()

		_, err := slugify.NewTable([]slugify.Entry{
			{Codepoint: 0, Replacement: "nul"},
		})
		assert.ErrorIs(t, err, slugify.ErrInvalidTable)
	})

	t.Run("rejects non-ascii replacement", func(t *testing.T) {
		t.Parallel()

		_, err := slugify.NewTable([]slugify.Entry{
			{Codepoint: 0xE9, Replacement: "é"},
		})
		assert.ErrorIs(t, err, slugify.ErrInvalidTable)
	})

	t.Run("empty table is valid", func(t *testing.T) {
		t.Parallel()

		table, err := slugify.NewTable(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())

		_, ok := table.Lookup('é')
		assert.False(t, ok)
	})
}
