package timescale

import (
	"testing"
	"time"
)

func TestFactorIdentity(t *testing.T) {
	for _, s := range []Scale{Nano, Micro, Milli, Secs} {
		if got := s.Factor(s); got != 1.0 {
			t.Errorf("Factor(%v,%v) = %v, want 1.0", s, s, got)
		}
	}
}

func TestFactorNanoToSecs(t *testing.T) {
	if got := Nano.Factor(Secs); got != 1e9 {
		t.Errorf("Nano.Factor(Secs) = %v, want 1e9", got)
	}
}

func TestElapsedMonotonic(t *testing.T) {
	a := Milli.Elapsed(100 * time.Millisecond)
	b := Milli.Elapsed(200 * time.Millisecond)
	if !(a < b) {
		t.Errorf("Elapsed not monotonic: a=%v b=%v", a, b)
	}
}

func TestElapsedScales(t *testing.T) {
	d := 100 * time.Millisecond
	cases := map[Scale]float64{
		Nano:  1e8,
		Micro: 1e5,
		Milli: 1e2,
		Secs:  0.1,
	}
	for scale, want := range cases {
		if got := scale.Elapsed(d); diff(got, want) > 1e-6 {
			t.Errorf("%v.Elapsed(100ms) = %v, want %v", scale, got, want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, s := range []Scale{Nano, Micro, Milli, Secs} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var got Scale
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != s {
			t.Errorf("round trip: got %v, want %v", got, s)
		}
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
