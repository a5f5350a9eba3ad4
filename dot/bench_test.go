package dot_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sciutil/dot"
)

// benchmarkReal runs Real on n-term vectors with opts.
func benchmarkReal(b *testing.B, n int, opts ...dot.Option) {
	rng := rand.New(rand.NewSource(1))
	x, y := randReal(rng, n), randReal(rng, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dot.Real(x, y, opts...); err != nil {
			b.Fatalf("Real failed: %v", err)
		}
	}
}

func BenchmarkReal_Serial1M(b *testing.B)   { benchmarkReal(b, 1<<20, dot.WithSerial()) }
func BenchmarkReal_Parallel1M(b *testing.B) { benchmarkReal(b, 1<<20) }
func BenchmarkReal_Small(b *testing.B)      { benchmarkReal(b, 256) }

func BenchmarkComplex_Parallel1M(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := randComplex(rng, 1<<20), randComplex(rng, 1<<20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dot.Complex(x, y); err != nil {
			b.Fatalf("Complex failed: %v", err)
		}
	}
}
