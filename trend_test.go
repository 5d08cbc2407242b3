package gwbau

import (
	"math"
	"testing"
)

func buildDefault(t *testing.T) *Projection {
	t.Helper()
	p, err := DefaultDomain().Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return p
}

func TestTrendReproducesEstimates(t *testing.T) {
	p := buildDefault(t)
	for _, c := range []struct {
		nam      string
		got, exp float64
	}{
		{"inflow 2000", p.TrIn.At(2000.), 12.8},
		{"inflow 2050", p.TrIn.At(2050.), 10.3},
		{"outflow 2000", p.TrOut.At(2000.), 18.2},
		{"outflow 2050", p.TrOut.At(2050.), 27.0},
	} {
		if math.Abs(c.got-c.exp) > 1e-9 {
			t.Fatalf("%s: expected %f, got %f", c.nam, c.exp, c.got)
		}
	}
}

func TestTrendLinearityAtMidpoint(t *testing.T) {
	p := buildDefault(t)
	mean := (p.TrIn.At(2000.) + p.TrIn.At(2050.)) / 2.
	if math.Abs(p.TrIn.At(2025.)-mean) > 1e-9 {
		t.Fatalf("expected inflow(2025) == %f, got %f", mean, p.TrIn.At(2025.))
	}
}

func TestFitResidualZero(t *testing.T) {
	p := buildDefault(t)
	if r := p.FitResidual(); r > 1e-9 {
		t.Fatalf("expected zero fit residual, got %g", r)
	}
}

func TestDuplicateYearRejected(t *testing.T) {
	if _, err := fitTwoPoint(2000, 12.8, 2000, 10.3); err == nil {
		t.Fatal("expected duplicate-year error, got nil")
	}
	d := DefaultDomain()
	d.Obs1.Year = d.Obs0.Year
	if _, err := d.Build(); err == nil {
		t.Fatal("expected build to reject duplicate trend years")
	}
}

func TestTrendNeverNaN(t *testing.T) {
	tr, err := fitTwoPoint(2000, 12.8, 2050, 10.3)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	for _, y := range []float64{1990., 2000., 2025., 2050., 2100.} {
		if v := tr.At(y); math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("trend at %f not finite: %f", y, v)
		}
	}
}
