package stats

import (
	"math"
	"testing"

	"github.com/burl-go/burl/internal/timescale"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPercentileTable(t *testing.T) {
	samples := []float64{9, 12, 28, 55, 63, 82, 91, 92, 96, 97}
	n := len(samples)
	cases := []struct {
		level float64
		want  float64
	}{
		{0.25, 28},
		{0.50, 72.5},
		{0.75, 92},
	}
	for _, c := range cases {
		got := Percentile(samples, c.level, n)
		if !approxEqual(got, c.want, 1e-9) {
			t.Errorf("Percentile(level=%v) = %v, want %v", c.level, got, c.want)
		}
	}
}

func TestPercentileSingleElement(t *testing.T) {
	samples := []float64{42}
	for _, level := range []float64{0, 0.25, 0.5, 0.9, 1.0} {
		if got := Percentile(samples, level, 1); got != 42 {
			t.Errorf("Percentile(level=%v) on single element = %v, want 42", level, got)
		}
	}
}

func TestStandardDeviationWorkedExample(t *testing.T) {
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := 5.0
	got, ok := StandardDeviation(samples, mean)
	if !ok {
		t.Fatal("expected ok=true")
	}
	want := 2.138089935299395
	if !approxEqual(got, want, 1e-12) {
		t.Errorf("StandardDeviation = %v, want %v", got, want)
	}
}

func TestStandardDeviationAbsentForSmallN(t *testing.T) {
	if _, ok := StandardDeviation(nil, 0); ok {
		t.Error("expected absent for n=0")
	}
	if _, ok := StandardDeviation([]float64{1}, 1); ok {
		t.Error("expected absent for n=1")
	}
}

func TestRequestsPerSecond(t *testing.T) {
	cases := []struct {
		mean  float64
		scale timescale.Scale
		want  float64
		ok    bool
	}{
		{100, timescale.Milli, 10, true},
		{100, timescale.Micro, 10000, true},
		{100, timescale.Nano, 10000000, true},
		{0, timescale.Milli, 0, false},
	}
	for _, c := range cases {
		got, ok := RequestsPerSecond(c.mean, c.scale)
		if ok != c.ok {
			t.Errorf("RequestsPerSecond(%v,%v) ok=%v, want %v", c.mean, c.scale, ok, c.ok)
			continue
		}
		if ok && !approxEqual(got, c.want, 1e-6) {
			t.Errorf("RequestsPerSecond(%v,%v) = %v, want %v", c.mean, c.scale, got, c.want)
		}
	}
}

func TestFactorIdentityAllScales(t *testing.T) {
	for _, s := range []timescale.Scale{timescale.Nano, timescale.Micro, timescale.Milli, timescale.Secs} {
		if got := s.Factor(s); got != 1.0 {
			t.Errorf("Factor(%v,%v) = %v, want 1.0", s, s, got)
		}
	}
}

func TestConfidenceIntervalWorkedExample(t *testing.T) {
	dist := make([]float64, 101)
	for i := range dist {
		dist[i] = float64(i)
	}
	lo, hi, ok := ConfidenceInterval(dist, 0.1)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if !approxEqual(lo, 5.0, 1e-9) || !approxEqual(hi, 95.0, 1e-9) {
		t.Errorf("ConfidenceInterval = (%v,%v), want (5.0,95.0)", lo, hi)
	}
}

func TestConfidenceIntervalEmptyIsAbsent(t *testing.T) {
	if _, _, ok := ConfidenceInterval(nil, 0.1); ok {
		t.Error("expected absent for empty distribution")
	}
}

func TestNormalCDFSymmetry(t *testing.T) {
	// Phi(mean) should be 0.5 for any std.
	if got := NormalCDF(10, 10, 3); !approxEqual(got, 0.5, 1e-9) {
		t.Errorf("NormalCDF(mean) = %v, want 0.5", got)
	}
}

func TestNormalInvCDFRoundTrip(t *testing.T) {
	mean, std := 20.0, 4.0
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		x := NormalInvCDF(p, mean, std)
		back := NormalCDF(x, mean, std)
		if !approxEqual(back, p, 1e-6) {
			t.Errorf("round trip p=%v: got back %v", p, back)
		}
	}
}
