package strdist_test

import (
	"testing"

	"github.com/oskaritimperi/leven/strdist"
)

// benchmarkDistance runs Distance on synthetic sequences of lengths n and m.
// It resets the timer before entering the loop.
func benchmarkDistance(b *testing.B, n, m int) {
	// Prepare two sequences with a repeating, slightly shifted alphabet so
	// the DP cannot short-circuit on a shared prefix or suffix.
	sa := make([]byte, n)
	sb := make([]byte, m)
	for i := 0; i < n; i++ {
		sa[i] = byte('a' + i%26)
	}
	for j := 0; j < m; j++ {
		sb[j] = byte('a' + (j+1)%26)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = strdist.Distance(sa, sb)
	}
}

func BenchmarkDistance_64x64(b *testing.B)     { benchmarkDistance(b, 64, 64) }
func BenchmarkDistance_256x256(b *testing.B)   { benchmarkDistance(b, 256, 256) }
func BenchmarkDistance_1024x1024(b *testing.B) { benchmarkDistance(b, 1024, 1024) }

func BenchmarkJaro_256x256(b *testing.B) {
	sa := make([]byte, 256)
	sb := make([]byte, 256)
	for i := range sa {
		sa[i] = byte('a' + i%26)
		sb[i] = byte('a' + (i+3)%26)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = strdist.Jaro(sa, sb)
	}
}
