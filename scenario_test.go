package gwbau

import (
	"math"
	"testing"
)

func TestExhaustionWindows(t *testing.T) {
	p := buildDefault(t)
	for _, c := range []struct {
		nam    string
		base   float64
		lo, hi float64
	}{
		{"low", 190., 2023., 2024.},
		{"expected", 350., 2036., 2037.},
		{"high", 550., 2049., 2050.},
	} {
		y, ok := p.ExhaustionYear(c.base)
		if !ok {
			t.Fatalf("%s: expected exhaustion within horizon", c.nam)
		}
		if y < c.lo || y > c.hi {
			t.Fatalf("%s: expected exhaustion in [%f,%f], got %f", c.nam, c.lo, c.hi, y)
		}
	}
}

func TestNoExhaustionUnderRecoveringBudget(t *testing.T) {
	d := DefaultDomain()
	d.Obs0 = Obs{Year: 2000, Out: 10., Chg: 5.}
	d.Obs1 = Obs{Year: 2050, Out: 10., Chg: 10.}
	p, err := d.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if y, ok := p.ExhaustionYear(d.BaseExp); ok {
		t.Fatalf("recovering budget should never exhaust, got %f", y)
	}
}

func TestRequiredUpliftHoldsStorage(t *testing.T) {
	p := buildDefault(t)
	q := p.RequiredUplift()
	if q < 3.5 || q > 4.5 {
		t.Fatalf("required uplift out of expected range: %f", q)
	}
	if m := p.minStorage(p.D.BaseExp, q); math.Abs(m) > 1e-9 {
		t.Fatalf("uplifted minimum storage should sit at zero, got %f", m)
	}
	if m := p.minStorage(p.D.BaseExp, q*1.01); m <= 0. {
		t.Fatalf("storage should stay positive above the required uplift, got %f", m)
	}
}

func TestMinStorageUnderBAU(t *testing.T) {
	p := buildDefault(t)
	last := p.Rows[len(p.Rows)-1]
	if m := p.minStorage(p.D.BaseExp, 0.); math.Abs(m-last.StoExp) > 1e-9 {
		t.Fatalf("declining budget minimum should be the horizon end: %f vs %f", m, last.StoExp)
	}
}
