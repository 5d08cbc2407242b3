package postpro

import (
	"strings"
	"testing"

	gwbau "github.com/miaguarnieri/esm203-assignment3"
)

func TestReportScalars(t *testing.T) {
	prj, err := gwbau.DefaultDomain().Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	body := reportBody(prj, Band{P05: 2031.2, P50: 2036.7, P95: 2041.9}, 4.26)

	for _, want := range []string{
		"2000-2050",
		"| low | 190 |",
		"| expected | 350 |",
		"| high | 550 |",
		"median 2036.7",
		"4.3 ×10⁹ m³/yr", // augmentation requirement
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("report missing %q\n%s", want, body)
		}
	}
	if strings.Contains(body, "NaN") {
		t.Fatal("report contains NaN")
	}
}

func TestBandOfEmpty(t *testing.T) {
	if b := BandOf(nil); b != (Band{}) {
		t.Fatalf("expected zero band for empty sample, got %+v", b)
	}
}
