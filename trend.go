package gwbau

import (
	"fmt"

	"github.com/maseology/objfunc"
)

// Trend is a line fit through two budget estimates, evaluated annually
// over the projection horizon.
type Trend struct{ Slope, Intercept float64 }

// fitTwoPoint solves the unique line through (y0,v0) and (y1,v1).
// Two estimates published for the same year leave the slope undefined.
func fitTwoPoint(y0 int, v0 float64, y1 int, v1 float64) (Trend, error) {
	if y0 == y1 {
		return Trend{}, fmt.Errorf("duplicate year %d: slope undefined", y0)
	}
	s := (v1 - v0) / float64(y1-y0)
	return Trend{Slope: s, Intercept: v0 - s*float64(y0)}, nil
}

// At evaluates the trend line.
func (t Trend) At(year float64) float64 { return t.Slope*year + t.Intercept }

// Integral returns the definite integral of the trend line from y0 to y1.
// The integrand is affine so the antiderivative is exact; no quadrature
// needed.
func (t Trend) Integral(y0, y1 float64) float64 {
	return t.Slope/2.*(y1*y1-y0*y0) + t.Intercept*(y1-y0)
}

// FitResidual reproduces the four budget estimates through the fitted
// trends and returns the RMSE, which collapses to zero (to float
// precision) for any valid two-point fit. Reported as a check.
func (p *Projection) FitResidual() float64 {
	d := p.D
	obs := []float64{d.Obs0.In(), d.Obs1.In(), d.Obs0.Out, d.Obs1.Out}
	sim := []float64{
		p.TrIn.At(float64(d.Obs0.Year)),
		p.TrIn.At(float64(d.Obs1.Year)),
		p.TrOut.At(float64(d.Obs0.Year)),
		p.TrOut.At(float64(d.Obs1.Year)),
	}
	return objfunc.RMSE(obs, sim)
}
