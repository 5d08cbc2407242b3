package gwbau

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// LoadDomain builds the model domain from an optional .gwbau control file.
// An empty path returns the published defaults; otherwise any key present
// overrides its default. Keys: year0/out0/chg0, year1/out1/chg1, baselow,
// baseexp, basehigh, sigma, ystart, yend. Duplicate trend years are a
// configuration error, reported here rather than mid-run.
func LoadDomain(controlFP string) (Domain, error) {
	d := DefaultDomain()
	if len(controlFP) == 0 {
		return d, nil
	}

	println("load .gwbau file")
	ins := mmio.NewInstruct(controlFP)
	getf := func(k string, v *float64) error {
		if p, ok := ins.Param[k]; ok {
			f, err := strconv.ParseFloat(p[0], 64)
			if err != nil {
				return fmt.Errorf("control %s: %v", k, err)
			}
			*v = f
		}
		return nil
	}
	geti := func(k string, v *int) error {
		if p, ok := ins.Param[k]; ok {
			i, err := strconv.Atoi(p[0])
			if err != nil {
				return fmt.Errorf("control %s: %v", k, err)
			}
			*v = i
		}
		return nil
	}

	for _, err := range []error{
		geti("year0", &d.Obs0.Year),
		getf("out0", &d.Obs0.Out),
		getf("chg0", &d.Obs0.Chg),
		geti("year1", &d.Obs1.Year),
		getf("out1", &d.Obs1.Out),
		getf("chg1", &d.Obs1.Chg),
		getf("baselow", &d.BaseLow),
		getf("baseexp", &d.BaseExp),
		getf("basehigh", &d.BaseHigh),
		getf("sigma", &d.Sigma),
		geti("ystart", &d.Y0),
		geti("yend", &d.Y1),
	} {
		if err != nil {
			return Domain{}, err
		}
	}

	if d.Obs0.Year == d.Obs1.Year {
		return Domain{}, fmt.Errorf("invalid control %s: duplicate trend year %d", controlFP, d.Obs0.Year)
	}
	if d.Y1 <= d.Y0 {
		return Domain{}, fmt.Errorf("invalid control %s: horizon [%d,%d]", controlFP, d.Y0, d.Y1)
	}
	return d, nil
}
