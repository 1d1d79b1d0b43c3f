package sensorsim

import (
	"math"
	"math/rand/v2"
)

// Walker produces a bounded random walk of temperatures.
type Walker struct {
	base     float64
	maxDrift float64
	maxStep  float64
	current  float64
	rnd      *rand.Rand
}

func NewWalker(base, maxDrift float64, rnd *rand.Rand) *Walker {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Walker{
		base:     base,
		maxDrift: maxDrift,
		maxStep:  0.5,
		current:  base,
		rnd:      rnd,
	}
}

// Next moves by at most maxStep and stays within base±maxDrift. Values are
// rounded to two decimals.
func (w *Walker) Next() float64 {
	step := (w.rnd.Float64()*2 - 1) * w.maxStep
	next := w.current + step
	next = math.Max(w.base-w.maxDrift, math.Min(w.base+w.maxDrift, next))
	w.current = math.Round(next*100) / 100
	return w.current
}
