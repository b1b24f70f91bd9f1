package setdist_test

import (
	"math/rand"
	"testing"

	"github.com/oskaritimperi/leven/setdist"
)

// randomTokens builds n pseudo-random lowercase tokens of length m.
func randomTokens(rng *rand.Rand, n, m int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		tok := make([]byte, m)
		for j := range tok {
			tok[j] = byte('a' + rng.Intn(26))
		}
		out[i] = tok
	}

	return out
}

func benchmarkSetDistance(b *testing.B, n, m int) {
	rng := rand.New(rand.NewSource(42))
	x := randomTokens(rng, n, m)
	y := randomTokens(rng, n, m)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = setdist.SetDistance(x, y)
	}
}

func BenchmarkSetDistance_16x8(b *testing.B)  { benchmarkSetDistance(b, 16, 8) }
func BenchmarkSetDistance_64x8(b *testing.B)  { benchmarkSetDistance(b, 64, 8) }
func BenchmarkSeqDistance_64x8(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	x := randomTokens(rng, 64, 8)
	y := randomTokens(rng, 64, 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = setdist.SeqDistance(x, y)
	}
}
