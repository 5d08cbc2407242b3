package postpro

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	gwbau "github.com/miaguarnieri/esm203-assignment3"
)

var (
	clrIn   = color.RGBA{B: 255, A: 255}
	clrOut  = color.RGBA{R: 255, A: 255}
	clrNet  = color.RGBA{R: 128, B: 64, A: 255}
	clrLow  = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	clrExp  = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	clrHigh = color.RGBA{B: 180, G: 130, R: 70, A: 255}
)

func yearLine(p *gwbau.Projection, f func(gwbau.Row) float64) plotter.XYs {
	xys := make(plotter.XYs, len(p.Rows))
	for i, r := range p.Rows {
		xys[i].X = float64(r.Year)
		xys[i].Y = f(r)
	}
	return xys
}

// PlotFlows draws the fitted recharge and discharge trend lines with the
// published budget estimates overplotted.
func PlotFlows(fp string, prj *gwbau.Projection) error {
	p := plot.New()
	p.X.Label.Text = "year"
	p.Y.Label.Text = "flow [10⁹ m³/yr]"

	li, err := plotter.NewLine(yearLine(prj, func(r gwbau.Row) float64 { return r.In }))
	if err != nil {
		return err
	}
	li.Color = clrIn
	lo, err := plotter.NewLine(yearLine(prj, func(r gwbau.Row) float64 { return r.Out }))
	if err != nil {
		return err
	}
	lo.Color = clrOut

	d := prj.D
	obs, err := plotter.NewScatter(plotter.XYs{
		{X: float64(d.Obs0.Year), Y: d.Obs0.In()},
		{X: float64(d.Obs1.Year), Y: d.Obs1.In()},
		{X: float64(d.Obs0.Year), Y: d.Obs0.Out},
		{X: float64(d.Obs1.Year), Y: d.Obs1.Out},
	})
	if err != nil {
		return err
	}
	obs.GlyphStyle.Radius = vg.Points(3)

	p.Add(li, lo, obs, plotter.NewGrid())
	p.Legend.Add("recharge", li)
	p.Legend.Add("discharge", lo)
	p.Legend.Add("published estimates", obs)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, fp); err != nil {
		return fmt.Errorf("PlotFlows save failed: %v", err)
	}
	return nil
}

// PlotCumLoss draws the net flow and its running integral, the cumulative
// storage loss since the base year.
func PlotCumLoss(fp string, prj *gwbau.Projection) error {
	p := plot.New()
	p.X.Label.Text = "year"
	p.Y.Label.Text = "[10⁹ m³/yr] and [10⁹ m³]"

	ln, err := plotter.NewLine(yearLine(prj, func(r gwbau.Row) float64 { return r.Net }))
	if err != nil {
		return err
	}
	ln.Color = clrNet
	lc, err := plotter.NewLine(yearLine(prj, func(r gwbau.Row) float64 { return r.CumLoss }))
	if err != nil {
		return err
	}
	lc.Color = clrExp
	lc.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(ln, lc, plotter.NewGrid())
	p.Legend.Add("net flow", ln)
	p.Legend.Add("cumulative loss", lc)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, fp); err != nil {
		return fmt.Errorf("PlotCumLoss save failed: %v", err)
	}
	return nil
}

// PlotStorage draws the three storage scenarios with the exhaustion line.
func PlotStorage(fp string, prj *gwbau.Projection) error {
	p := plot.New()
	p.X.Label.Text = "year"
	p.Y.Label.Text = "storage [10⁹ m³]"

	ll, err := plotter.NewLine(yearLine(prj, func(r gwbau.Row) float64 { return r.StoLow }))
	if err != nil {
		return err
	}
	ll.Color = clrLow
	le, err := plotter.NewLine(yearLine(prj, func(r gwbau.Row) float64 { return r.StoExp }))
	if err != nil {
		return err
	}
	le.Color = clrExp
	lh, err := plotter.NewLine(yearLine(prj, func(r gwbau.Row) float64 { return r.StoHigh }))
	if err != nil {
		return err
	}
	lh.Color = clrHigh

	zero := plotter.NewFunction(func(x float64) float64 { return 0. })
	zero.Color = color.RGBA{A: 255}
	zero.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}

	p.Add(ll, le, lh, zero, plotter.NewGrid())
	p.Legend.Add(fmt.Sprintf("low (%.0f)", prj.D.BaseLow), ll)
	p.Legend.Add(fmt.Sprintf("expected (%.0f)", prj.D.BaseExp), le)
	p.Legend.Add(fmt.Sprintf("high (%.0f)", prj.D.BaseHigh), lh)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, fp); err != nil {
		return fmt.Errorf("PlotStorage save failed: %v", err)
	}
	return nil
}
