package postpro

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	gwbau "github.com/miaguarnieri/esm203-assignment3"
)

// WriteXLSX exports the projection table and a scenario summary sheet.
func WriteXLSX(fp string, prj *gwbau.Projection) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Projection")

	headers := []string{"Year", "Recharge", "Discharge", "Net", "Cumulative loss",
		"Storage (low)", "Storage (expected)", "Storage (high)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Projection", cell, h)
		f.SetColWidth("Projection", cell, cell, 16)
	}
	for i, r := range prj.Rows {
		row := i + 2
		f.SetCellValue("Projection", fmt.Sprintf("A%d", row), r.Year)
		f.SetCellValue("Projection", fmt.Sprintf("B%d", row), r.In)
		f.SetCellValue("Projection", fmt.Sprintf("C%d", row), r.Out)
		f.SetCellValue("Projection", fmt.Sprintf("D%d", row), r.Net)
		f.SetCellValue("Projection", fmt.Sprintf("E%d", row), r.CumLoss)
		f.SetCellValue("Projection", fmt.Sprintf("F%d", row), r.StoLow)
		f.SetCellValue("Projection", fmt.Sprintf("G%d", row), r.StoExp)
		f.SetCellValue("Projection", fmt.Sprintf("H%d", row), r.StoHigh)
	}

	f.NewSheet("Scenarios")
	f.SetCellValue("Scenarios", "A1", "Scenario")
	f.SetCellValue("Scenarios", "B1", "Initial storage (10^9 m^3)")
	f.SetCellValue("Scenarios", "C1", "Exhaustion year")
	d := prj.D
	for i, s := range []struct {
		nam  string
		base float64
	}{
		{"low", d.BaseLow},
		{"expected", d.BaseExp},
		{"high", d.BaseHigh},
	} {
		row := i + 2
		f.SetCellValue("Scenarios", fmt.Sprintf("A%d", row), s.nam)
		f.SetCellValue("Scenarios", fmt.Sprintf("B%d", row), s.base)
		if y, ok := prj.ExhaustionYear(s.base); ok {
			f.SetCellValue("Scenarios", fmt.Sprintf("C%d", row), y)
		} else {
			f.SetCellValue("Scenarios", fmt.Sprintf("C%d", row), fmt.Sprintf("beyond %d", d.Y1))
		}
	}

	if err := f.SaveAs(fp); err != nil {
		return fmt.Errorf("WriteXLSX failed: %v", err)
	}
	return nil
}
