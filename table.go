package slugify

import "fmt"

// Entry maps a single Unicode codepoint to its ASCII replacement.
// An empty Replacement is valid and means the character contributes nothing
// to the slug (e.g. the Cyrillic soft sign).
type Entry struct {
	Codepoint   rune
	Replacement string
}

// Table is an immutable transliteration table queried by binary search.
// A Table is safe for concurrent use by multiple goroutines.
type Table struct {
	entries []Entry
}

// NewTable builds a Table from entries. The entries must be sorted ascending
// by codepoint, unique, with positive codepoints and ASCII-only replacement
// strings; ErrInvalidTable is returned otherwise. The input slice is copied.
func NewTable(entries []Entry) (*Table, error) {
	for i, e := range entries {
		if e.Codepoint <= 0 {
			return nil, fmt.Errorf("%w: entry %d has non-positive codepoint", ErrInvalidTable, i)
		}
		if i > 0 && entries[i-1].Codepoint >= e.Codepoint {
			return nil, fmt.Errorf("%w: entries must be sorted ascending and unique (index %d)", ErrInvalidTable, i)
		}
		for j := 0; j < len(e.Replacement); j++ {
			if e.Replacement[j] >= 0x80 {
				return nil, fmt.Errorf("%w: replacement for U+%04X is not ASCII", ErrInvalidTable, e.Codepoint)
			}
		}
	}
	t := &Table{entries: make([]Entry, len(entries))}
	copy(t.entries, entries)
	return t, nil
}

// DefaultTable returns the built-in transliteration table covering Latin
// diacritics, Greek, Cyrillic, Arabic, Georgian, Vietnamese, and common
// symbol and currency names.
func DefaultTable() *Table {
	return defaultTable
}

// Lookup returns the ASCII replacement for r and whether a mapping exists.
func (t *Table) Lookup(r rune) (string, bool) {
	lo, hi := 0, len(t.entries)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch u := t.entries[mid].Codepoint; {
		case u == r:
			return t.entries[mid].Replacement, true
		case u < r:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return "", false
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

var defaultTable = &Table{entries: defaultEntries}
