package slugify_test

import (
	"testing"

	"github.com/dmitrymomot/slugify"
)

func BenchmarkMakeASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = slugify.Make("Hello, World! This is a plain ASCII title 2024")
	}
}

func BenchmarkMakeUnicode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = slugify.Make("Café résumé naïve: Привет мир, Über Größe straße")
	}
}

func BenchmarkValidate(b *testing.B) {
	input := "Café résumé naïve: Привет мир, Über Größe straße"
	for i := 0; i < b.N; i++ {
		_ = slugify.Validate(input)
	}
}

func BenchmarkMakeParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = slugify.Make("Café résumé naïve")
		}
	})
}
