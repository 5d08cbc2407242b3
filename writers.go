package gwbau

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/maseology/mmio"
)

// WriteCSV saves the full projection table.
func (p *Projection) WriteCSV(fp string) {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("year,inflow,outflow,net,cumloss,stolow,stoexp,stohigh"); err != nil {
		log.Fatalf("%v", err)
	}
	for _, r := range p.Rows {
		csvw.WriteLine(r.Year, r.In, r.Out, r.Net, r.CumLoss, r.StoLow, r.StoExp, r.StoHigh)
	}
}

// WriteNetBin saves the net-flow series as little-endian float32.
func (p *Projection) WriteNetBin(fp string) error {
	net := make([]float64, len(p.Rows))
	for i, r := range p.Rows {
		net[i] = r.Net
	}
	return writeFloats(fp, net)
}

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil { // see: https://en.wikipedia.org/wiki/File_system_permissions
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}
