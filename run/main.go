package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/maseology/mmio"

	gwbau "github.com/miaguarnieri/esm203-assignment3"
	"github.com/miaguarnieri/esm203-assignment3/postpro"
)

const (
	outdir = "out/"
	nsmpl  = 1000 // baseline realizations
)

func main() {

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load domain (optional control file as first argument)
	var ctlfp string
	if len(os.Args) > 1 {
		ctlfp = os.Args[1]
	}
	dom, err := gwbau.LoadDomain(ctlfp)
	if err != nil {
		log.Fatalf(" LoadDomain error: %v", err)
	}

	// build projection table
	println("building projection..")
	prj, err := dom.Build()
	if err != nil {
		log.Fatalf(" domain build error: %v", err)
	}
	fmt.Printf(" recharge trend: %+.4f ×10⁹ m³/yr per year\n", prj.TrIn.Slope)
	fmt.Printf(" discharge trend: %+.4f ×10⁹ m³/yr per year\n", prj.TrOut.Slope)
	fmt.Printf(" fit residual (RMSE): %g\n", prj.FitResidual())
	tt.Print("projection build complete\n")

	// write table
	println("writing outputs..")
	mmio.MakeDir(outdir)
	prj.WriteCSV(outdir + "projection.csv")
	if err := prj.WriteNetBin(outdir + "net.bin"); err != nil {
		log.Fatalf(" %v", err)
	}
	if err := postpro.WriteXLSX(outdir+"projection.xlsx", prj); err != nil {
		log.Fatalf(" %v", err)
	}

	// render charts
	println("rendering..")
	for _, p := range []struct {
		fp string
		fn func(string, *gwbau.Projection) error
	}{
		{outdir + "flows.png", postpro.PlotFlows},
		{outdir + "cumloss.png", postpro.PlotCumLoss},
		{outdir + "storage.png", postpro.PlotStorage},
	} {
		if err := p.fn(p.fp, prj); err != nil {
			log.Fatalf(" render error: %v", err)
		}
	}
	tt.Print("rendering complete\n")

	// scenario summary
	for _, s := range []struct {
		nam  string
		base float64
	}{
		{"low", dom.BaseLow},
		{"expected", dom.BaseExp},
		{"high", dom.BaseHigh},
	} {
		if y, ok := prj.ExhaustionYear(s.base); ok {
			fmt.Printf(" %s storage (%.0f) exhausted %.1f\n", s.nam, s.base, y)
		} else {
			fmt.Printf(" %s storage (%.0f) persists beyond %d\n", s.nam, s.base, dom.Y1)
		}
	}

	// sample the expected baseline
	println("\nsampling expected baseline..")
	ys := prj.SampleBaselines(nsmpl, runtime.GOMAXPROCS(0), outdir)
	band := postpro.BandOf(ys)
	fmt.Printf(" exhaustion year %.1f-%.1f (5th-95th percentile, median %.1f), %d of %d realizations drained\n",
		band.P05, band.P95, band.P50, len(ys), nsmpl)

	// recharge augmentation to hold the expected scenario
	println("\noptimizing recharge augmentation..")
	q := prj.OptimizeUplift()
	fmt.Printf(" required recharge augmentation: %.2f ×10⁹ m³/yr (closed form: %.2f)\n", q, prj.RequiredUplift())

	postpro.WriteReport(outdir+"report.md", prj, band, q)
	println("report written: " + outdir + "report.md")
}
