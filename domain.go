package gwbau

import "fmt"

// Obs is one published annual groundwater budget estimate: total discharge
// (pumping and natural outflow) and net change in storage, both in 10⁹ m³/yr.
// Recharge is not reported directly; it is recovered as chg + out.
type Obs struct {
	Year     int
	Out, Chg float64
}

// In returns the recharge (inflow) implied by the budget closure.
func (o Obs) In() float64 { return o.Chg + o.Out }

// Domain holds everything needed to build a projection: the two budget
// endpoints the trends are drawn through, the three initial storage
// estimates, and the projection horizon.
type Domain struct {
	Obs0, Obs1 Obs
	BaseLow    float64 // low initial storage estimate [10⁹ m³]
	BaseExp    float64 // expected initial storage estimate [10⁹ m³]
	BaseHigh   float64 // high initial storage estimate [10⁹ m³]
	Sigma      float64 // standard deviation on the expected estimate [10⁹ m³]
	Y0, Y1     int     // horizon, inclusive
}

// DefaultDomain returns the published California groundwater budget:
// 2000 and 2050 discharge/storage-change estimates, low/expected/high
// initial storage, and the 2000-2050 horizon.
func DefaultDomain() Domain {
	return Domain{
		Obs0:     Obs{Year: 2000, Out: 18.2, Chg: -5.4},
		Obs1:     Obs{Year: 2050, Out: 27.0, Chg: -16.7},
		BaseLow:  190.,
		BaseExp:  350.,
		BaseHigh: 550.,
		Sigma:    115.,
		Y0:       2000,
		Y1:       2050,
	}
}

// Build fits the inflow and outflow trends and evaluates them over the
// horizon, returning the completed projection table. The table is built
// once and only read afterwards.
func (d Domain) Build() (*Projection, error) {
	if d.Y1 <= d.Y0 {
		return nil, fmt.Errorf("domain build failed: horizon [%d,%d] is not increasing", d.Y0, d.Y1)
	}
	tin, err := fitTwoPoint(d.Obs0.Year, d.Obs0.In(), d.Obs1.Year, d.Obs1.In())
	if err != nil {
		return nil, fmt.Errorf("inflow trend: %v", err)
	}
	tout, err := fitTwoPoint(d.Obs0.Year, d.Obs0.Out, d.Obs1.Year, d.Obs1.Out)
	if err != nil {
		return nil, fmt.Errorf("outflow trend: %v", err)
	}
	p := &Projection{D: d, TrIn: tin, TrOut: tout}
	p.buildRows()
	p.composeScenarios()
	return p, nil
}
