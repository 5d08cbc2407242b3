package gwbau

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// SampleBaselines draws n Latin-hypercube realizations of the expected
// storage baseline over ±2σ and streams each through the closed-form
// exhaustion solve, returning the sorted exhaustion years. Realizations
// whose storage never reaches zero are dropped from the returned set.
// When outdir is given the sample space is saved alongside, batch-stamped
// like every other sampling output here.
func (p *Projection) SampleBaselines(n, nwrkrs int, outdir string) []float64 {

	// set up workers
	done := make(chan interface{})
	bin := make(chan float64, nwrkrs)
	defer close(done)
	yout := p.exhauststream(done, bin, nwrkrs)

	// build sampling plan
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, 1, false)

	blo, bhi := p.D.BaseExp-2.*p.D.Sigma, p.D.BaseExp+2.*p.D.Sigma
	if len(outdir) > 0 { // save sample space
		outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprintf("%d,%f", k, mmaths.LinearTransform(blo, bhi, sp.U[0][k]))
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(n).AppendCompleted().PrependElapsed()

	go func() {
		for k := 0; k < n; k++ {
			bin <- mmaths.LinearTransform(blo, bhi, sp.U[0][k])
		}
		close(bin)
	}()

	ys := make([]float64, 0, n)
	for k := 0; k < n; k++ {
		if y := <-yout; !math.IsNaN(y) {
			ys = append(ys, y)
		}
		bar.Incr()
	}
	uiprogress.Stop()

	sort.Float64s(ys)
	return ys
}

// exhauststream fans the sampled baselines over nwrkrs solvers. Every
// realization is independent; no state is shared across workers.
func (p *Projection) exhauststream(done <-chan interface{}, bin <-chan float64, nwrkrs int) <-chan float64 {
	yout := make(chan float64, nwrkrs)
	for w := 0; w < nwrkrs; w++ {
		go func() {
			for b := range bin {
				select {
				case yout <- p.exhaustion(b, 0.):
				case <-done:
					return
				}
			}
		}()
	}
	return yout
}

// Quantile reads the q-quantile from a sorted sample by linear
// interpolation between order statistics.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	f := q * float64(len(sorted)-1)
	i := int(f)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (f-float64(i))*(sorted[i+1]-sorted[i])
}
