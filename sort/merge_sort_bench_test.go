package sort

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchInput(n int) []float64 {
	rng := rand.New(rand.NewSource(5489))
	s := make([]float64, n)
	for i := range s {
		s[i] = -100 + rng.Float64()*200
	}
	return s
}

func BenchmarkSort(b *testing.B) {
	for k := 10; k <= 13; k++ {
		original := benchInput(1 << k)
		src := make([]float64, len(original))
		b.Run(fmt.Sprintf("2^%d", k), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(src, original)
				b.StartTimer()
				if err := Sort[float64](Slice[float64](src), 0, len(src)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSortBounded(b *testing.B) {
	for k := 10; k <= 13; k++ {
		original := benchInput(1 << k)
		src := make([]float64, len(original))
		b.Run(fmt.Sprintf("2^%d", k), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(src, original)
				view, err := Bound[float64](Slice[float64](src), 0, len(src))
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
				if err := Sort[float64](view, 0, view.Len()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
