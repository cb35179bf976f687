package iir

import (
	"fmt"
	"testing"
)

func BenchmarkProcessSample(b *testing.B) {
	for _, order := range []int{3, 8, 16, 64} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			ff := make([]float64, order+1)
			fb := make([]float64, order+1)
			for i := range ff {
				ff[i] = 1.0 / float64(order+1)
			}

			f, err := New(Coefficients{Feedforward: ff, Feedback: fb})
			if err != nil {
				b.Fatal(err)
			}

			x := 1.0
			for b.Loop() {
				x = f.ProcessSample(x)
			}

			_ = x
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, order := range []int{3, 8, 16, 64} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			ff := make([]float64, order+1)
			fb := make([]float64, order+1)
			for i := range ff {
				ff[i] = 1.0 / float64(order+1)
			}

			f, err := New(Coefficients{Feedforward: ff, Feedback: fb})
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = float64(i%7) - 3
			}

			b.SetBytes(int64(len(buf) * 8))
			b.ResetTimer()

			for b.Loop() {
				f.ProcessBlock(buf)
			}
		})
	}
}
