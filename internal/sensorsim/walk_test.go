package sensorsim

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestWalker_staysInBounds(t *testing.T) {
	w := NewWalker(20, 1, rand.New(rand.NewPCG(1, 2)))
	prev := 20.0
	for i := 0; i < 1000; i++ {
		v := w.Next()
		if v < 19 || v > 21 {
			t.Fatalf("step %d: %v outside 20±1", i, v)
		}
		if math.Abs(v-prev) > 0.5+1e-9 {
			t.Fatalf("step %d: moved %v; want at most 0.5", i, math.Abs(v-prev))
		}
		if math.Round(v*100)/100 != v {
			t.Fatalf("step %d: %v not rounded to two decimals", i, v)
		}
		prev = v
	}
}

func TestWalker_zeroDrift(t *testing.T) {
	w := NewWalker(18.5, 0, rand.New(rand.NewPCG(3, 4)))
	for i := 0; i < 10; i++ {
		if v := w.Next(); v != 18.5 {
			t.Fatalf("Next() = %v; want 18.5", v)
		}
	}
}
