// Package slugify generates URL-safe slugs from arbitrary UTF-8 strings with
// strict input validation and table-driven transliteration.
//
// The package converts text to web-friendly identifiers by transliterating
// non-ASCII letters to their closest ASCII equivalents, collapsing whitespace
// and punctuation into a single separator, and offering configurable options
// for length limits, case handling, and collision-resistant suffixes.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugify"
//
//	// Simple slug generation
//	s := slugify.Make("Hello, World!")
//	// Output: "hello-world"
//
//	// Transliteration
//	s = slugify.Make("Café résumé")
//	// Output: "cafe-resume"
//
//	// Full error reporting
//	s, err := slugify.Slugify("Привет мир")
//	// Output: "privet-mir", nil
//
// # Input Validation
//
// Every input is validated as strict UTF-8 before any conversion happens.
// Malformed sequences, overlong encodings (such as 0xC0 0xAF masquerading as
// '/'), UTF-16 surrogate halves, codepoints beyond U+10FFFF, and Unicode
// non-characters all reject the entire input with ErrInvalidEncoding. There
// is no best-effort mode: silently repairing or skipping bad bytes would
// reopen the encoding-smuggling attacks the validation exists to close.
// The validator is exported as Validate for callers that want the check
// without conversion.
//
// # Configuration Options
//
// MaxLength limits the slug length in bytes:
//
//	slugify.Make("Very long title", slugify.MaxLength(15))
//	// Output: "very-long-title"
//
// MinLength pads short results with a random suffix:
//
//	slugify.Make("hi", slugify.MinLength(10))
//	// Output: "hi-k2m9x7p" (padded to 10 bytes)
//
// Separator sets the byte used between words:
//
//	slugify.Make("Product Name", slugify.Separator('_'))
//	// Output: "product_name"
//
// Lowercase(false) preserves case and keeps non-ASCII characters as their
// raw UTF-8 bytes instead of transliterating them:
//
//	slugify.Make("Café Culture", slugify.Lowercase(false))
//	// Output: "Café-Culture"
//
// StripChars removes specific characters before processing:
//
//	slugify.Make("Price: $100", slugify.StripChars("$:"))
//	// Output: "price-100"
//
// CustomReplace applies string replacements before slugification:
//
//	replacements := map[string]string{"&": " and ", "@": " at "}
//	slugify.Make("Fish & Chips @ Home", slugify.CustomReplace(replacements))
//	// Output: "fish-and-chips-at-home"
//
// WithSuffix adds a random alphanumeric suffix for uniqueness:
//
//	slugify.Make("Article Title", slugify.WithSuffix(6))
//	// Output: "article-title-x3k7f9"
//
// ReservedSlugs prevents use of specified slugs (case-insensitive) by
// appending a suffix:
//
//	slugify.Make("admin", slugify.ReservedSlugs("admin", "api"))
//	// Output: "admin-k7x2m4"
//
// # Transliteration
//
// The default table covers Latin diacritics, Greek, Cyrillic, Arabic,
// Georgian, Vietnamese, and common symbol and currency names:
//
//	slugify.Make("München")      // "munchen"
//	slugify.Make("Ελληνικά")     // "ellhnika"
//	slugify.Make("100 €")        // "100-euro"
//
// Characters without a mapping are dropped; runs of whitespace and
// punctuation collapse into a single separator. The table is a swappable
// asset: build a replacement with NewTable and pass it via WithTable.
// All conversion is pure and lock-free, so any number of goroutines may
// call into the package concurrently.
package slugify
