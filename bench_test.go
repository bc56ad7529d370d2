package fixseq_test

import (
	"testing"

	"github.com/katalvlaran/fixseq"
)

// BenchmarkNewWith measures generator-driven construction at a fixed N.
func BenchmarkNewWith(b *testing.B) {
	const N = 4096

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fixseq.NewWith(N, func(idx int) int { return idx + 1 })
	}
}

// BenchmarkTryNewWith measures the fallible path on the all-success case.
func BenchmarkTryNewWith(b *testing.B) {
	const N = 4096

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = fixseq.TryNewWith(N, func(idx int) (int, error) { return idx, nil })
	}
}

// BenchmarkNewCopies measures fill-by-copy against the same N.
func BenchmarkNewCopies(b *testing.B) {
	const N = 4096

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fixseq.NewCopies(N, 1)
	}
}
