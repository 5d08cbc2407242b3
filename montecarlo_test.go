package gwbau

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	ys := []float64{1., 2., 3., 4., 5.}
	if q := Quantile(ys, .5); q != 3. {
		t.Fatalf("expected median 3, got %f", q)
	}
	if q := Quantile(ys, 0.); q != 1. {
		t.Fatalf("expected 1 at q=0, got %f", q)
	}
	if q := Quantile(ys, 1.); q != 5. {
		t.Fatalf("expected 5 at q=1, got %f", q)
	}
	if q := Quantile(ys, .25); q != 2. {
		t.Fatalf("expected 2 at q=0.25, got %f", q)
	}
	if q := Quantile(nil, .5); !math.IsNaN(q) {
		t.Fatalf("expected NaN for empty sample, got %f", q)
	}
}

// baseline sampling reduces to the closed-form exhaustion solve; the band
// endpoints follow the baseline monotonically.
func TestExhaustionMonotoneInBaseline(t *testing.T) {
	p := buildDefault(t)
	prev := 0.
	for i, b := range []float64{120., 235., 350., 465., 580.} {
		y := p.exhaustion(b, 0.)
		if math.IsNaN(y) {
			t.Fatalf("baseline %f: expected a crossing", b)
		}
		if i > 0 && y <= prev {
			t.Fatalf("exhaustion year must grow with baseline: %f <= %f", y, prev)
		}
		prev = y
	}
}

func TestLoadDomainDefaults(t *testing.T) {
	d, err := LoadDomain("")
	if err != nil {
		t.Fatalf("LoadDomain: %v", err)
	}
	if d != DefaultDomain() {
		t.Fatalf("empty control path should return the published defaults")
	}
}
