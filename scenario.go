package gwbau

import "math"

// composeScenarios adds the three baseline offsets to the cumulative-loss
// column. Pure elementwise addition; the offsets between the storage
// columns stay constant across the horizon.
func (p *Projection) composeScenarios() {
	for i := range p.Rows {
		l := p.Rows[i].CumLoss
		p.Rows[i].StoLow = p.D.BaseLow + l
		p.Rows[i].StoExp = p.D.BaseExp + l
		p.Rows[i].StoHigh = p.D.BaseHigh + l
	}
}

// ExhaustionYear solves storage(t) = baseline + cumloss(t) = 0 for the
// given baseline. cumloss is quadratic in year, so the crossing comes from
// the quadratic formula; the returned bool reports whether the crossing
// falls within the projection horizon. Under a draining budget the root
// beyond the horizon is a trend extrapolation, not a projection.
func (p *Projection) ExhaustionYear(baseline float64) (float64, bool) {
	y := p.exhaustion(baseline, 0.)
	return y, !math.IsNaN(y) && y <= float64(p.D.Y1)
}

// exhaustion returns the first year after Y0 at which storage under the
// given baseline and uniform recharge uplift reaches zero, or NaN if it
// never does.
func (p *Projection) exhaustion(baseline, uplift float64) float64 {
	nt := p.NetTrend()
	fy0 := float64(p.D.Y0)
	a := nt.Slope             // curvature of the storage parabola (×2)
	n0 := nt.At(fy0) + uplift // net flow at the base year
	if a == 0. {
		if n0 >= 0. {
			return math.NaN()
		}
		return fy0 - baseline/n0
	}
	disc := n0*n0 - 2.*a*baseline
	if disc < 0. {
		return math.NaN()
	}
	r := math.Sqrt(disc)
	// first root after the base year
	t1, t2 := (-n0-r)/a, (-n0+r)/a
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > 0. {
		return fy0 + t1
	}
	if t2 > 0. {
		return fy0 + t2
	}
	return math.NaN()
}

// minStorage returns the smallest storage over the horizon for the given
// baseline and uniform recharge uplift, evaluated on the continuous
// parabola rather than the annual rows.
func (p *Projection) minStorage(baseline, uplift float64) float64 {
	nt := p.NetTrend()
	fy0 := float64(p.D.Y0)
	a, n0 := nt.Slope, nt.At(fy0)+uplift
	te := float64(p.D.Y1 - p.D.Y0)
	sto := func(t float64) float64 { return baseline + n0*t + a/2.*t*t }
	m := math.Min(sto(0.), sto(te))
	if a > 0. { // opens upward; interior vertex can dip below the endpoints
		if tv := -n0 / a; tv > 0. && tv < te {
			m = math.Min(m, sto(tv))
		}
	}
	return m
}

// RequiredUplift is the closed-form counterpart to OptimizeUplift: the
// smallest uniform recharge addition [10⁹ m³/yr] keeping the expected
// storage non-negative through the horizon. Under a declining net-flow
// trend the storage parabola opens downward and its minimum sits at the
// horizon end, so the bound comes from storage(Y1) = 0.
func (p *Projection) RequiredUplift() float64 {
	nt := p.NetTrend()
	fy0 := float64(p.D.Y0)
	a, n0 := nt.Slope, nt.At(fy0)
	te := float64(p.D.Y1 - p.D.Y0)
	q := -(p.D.BaseExp + n0*te + a/2.*te*te) / te
	return math.Max(0., q)
}
