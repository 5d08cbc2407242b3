package gwbau

// Row is one year of the projection table. All volumes in 10⁹ m³,
// rates in 10⁹ m³/yr.
type Row struct {
	Year                    int
	In, Out, Net            float64
	CumLoss                 float64 // ∫ net dt from the base year
	StoLow, StoExp, StoHigh float64
}

// Projection is the completed annual table with its fitted trends.
// Built once by Domain.Build; read-only thereafter.
type Projection struct {
	D           Domain
	TrIn, TrOut Trend
	Rows        []Row
}

// NetTrend is the net-flow (inflow minus outflow) line. Affine, so the
// cumulative loss below it is quadratic in year.
func (p *Projection) NetTrend() Trend {
	return Trend{
		Slope:     p.TrIn.Slope - p.TrOut.Slope,
		Intercept: p.TrIn.Intercept - p.TrOut.Intercept,
	}
}

// CumLossAt integrates the net-flow line from the base year to the given
// year. Recomputable independently per row; no running accumulator.
func (p *Projection) CumLossAt(year int) float64 {
	return p.NetTrend().Integral(float64(p.D.Y0), float64(year))
}

func (p *Projection) buildRows() {
	n := p.D.Y1 - p.D.Y0 + 1
	p.Rows = make([]Row, n)
	for i := range p.Rows {
		y := p.D.Y0 + i
		fy := float64(y)
		in, out := p.TrIn.At(fy), p.TrOut.At(fy)
		p.Rows[i] = Row{
			Year:    y,
			In:      in,
			Out:     out,
			Net:     in - out,
			CumLoss: p.CumLossAt(y),
		}
	}
}

// NetRange returns the smallest and largest net flow over the horizon.
func (p *Projection) NetRange() (min, max float64) {
	min, max = p.Rows[0].Net, p.Rows[0].Net
	for _, r := range p.Rows[1:] {
		if r.Net < min {
			min = r.Net
		}
		if r.Net > max {
			max = r.Net
		}
	}
	return
}
