package parser

import (
	"strings"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	src := strings.Repeat("for (i = 0; i < n; i = i + 1) if i => k total = total + i * 2; else total = total - 1;\n", 200)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseString("bench.c", src); err != nil {
			b.Fatal(err)
		}
	}
}
