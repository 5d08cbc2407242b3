package gwbau

import (
	"math/rand"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// upliftMax bounds the recharge-augmentation search [10⁹ m³/yr]; roughly
// twice the projected 2050 outflow, well past any feasible requirement.
const upliftMax = 50.

// OptimizeUplift searches for the smallest uniform recharge addition
// [10⁹ m³/yr] that keeps the expected storage non-negative through the
// horizon. The one-parameter SCE search is overkill for a closed-form
// problem (see RequiredUplift) but keeps the solve valid should the
// storage response ever stop being quadratic.
func (p *Projection) OptimizeUplift() float64 {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		q := mmaths.LinearTransform(0., upliftMax, u[0])
		of := q
		if m := p.minStorage(p.D.BaseExp, q); m < 0. {
			of += upliftMax - m*upliftMax // infeasible: drained before the horizon end
		}
		return of
	}

	uFinal, _ := glbopt.SCE(16, 1, rng, gen, true)
	return mmaths.LinearTransform(0., upliftMax, uFinal[0])
}
