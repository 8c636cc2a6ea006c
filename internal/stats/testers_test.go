package stats

import "testing"

func TestAnalyticTesterWorkedExample(t *testing.T) {
	b := NormalParams{Mean: 520, Std: 50, NSamples: 80}
	c := NormalParams{Mean: 500, Std: 45, NSamples: 50}

	wantP := 0.009109785650170843

	if out := AnalyticTester(b, c, 0.005); out == nil || out.Kind != Inconclusive {
		t.Errorf("alpha=0.005: got %+v, want Inconclusive", out)
	}
	out := AnalyticTester(b, c, 0.01)
	if out == nil || out.Kind != Improved {
		t.Fatalf("alpha=0.01: got %+v, want Improved", out)
	}
	if !approxEqual(out.PValue, wantP, 1e-9) {
		t.Errorf("p-value = %v, want %v", out.PValue, wantP)
	}

	swapped := AnalyticTester(c, b, 0.01)
	if swapped == nil || swapped.Kind != Regressed {
		t.Fatalf("swapped alpha=0.01: got %+v, want Regressed", swapped)
	}
	if !approxEqual(swapped.PValue, wantP, 1e-9) {
		t.Errorf("swapped p-value = %v, want %v", swapped.PValue, wantP)
	}
}

func TestAnalyticTesterAbsentWhenBothStdZero(t *testing.T) {
	b := NormalParams{Mean: 1, Std: 0, NSamples: 10}
	c := NormalParams{Mean: 2, Std: 0, NSamples: 10}
	if out := AnalyticTester(b, c, 0.05); out != nil {
		t.Errorf("expected nil outcome, got %+v", out)
	}
}

func TestPermutationTesterAbsentOnEmptyInput(t *testing.T) {
	if out := PermutationTester(nil, []float64{1, 2, 3}, 0.05, 1000); out != nil {
		t.Errorf("expected nil for empty baseline, got %+v", out)
	}
	if out := PermutationTester([]float64{1, 2, 3}, nil, 0.05, 1000); out != nil {
		t.Errorf("expected nil for empty current, got %+v", out)
	}
}

func TestPermutationTesterDeterministic(t *testing.T) {
	b := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}
	c := []float64{10.5, 10.5, 10.5, 9.5, 9.5, 9.5}

	out1 := PermutationTester(b, c, 0.1, 1000)
	out2 := PermutationTester(b, c, 0.1, 1000)

	if (out1 == nil) != (out2 == nil) {
		t.Fatalf("non-deterministic nil-ness: %v vs %v", out1, out2)
	}
	if out1 != nil && (out1.Kind != out2.Kind || out1.PValue != out2.PValue) {
		t.Errorf("non-deterministic outcome: %+v vs %+v", out1, out2)
	}
}

func TestPermutationTesterWorkedExamples(t *testing.T) {
	baseline := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}

	cases := []struct {
		name    string
		current []float64
		want    OutcomeKind
	}{
		{"inconclusive", []float64{10.5, 10.5, 10.5, 9.5, 9.5, 9.5}, Inconclusive},
		{"regressed", []float64{11.5, 11.5, 11.5, 11.0, 10.0, 9.5}, Regressed},
		{"improved", []float64{10.5, 10.0, 9.5, 9.0, 8.5, 8.5, 8.5}, Improved},
	}
	for _, c := range cases {
		out := PermutationTester(baseline, c.current, 0.1, 1000)
		if out == nil {
			t.Fatalf("%s: expected non-nil outcome", c.name)
		}
		if out.Kind != c.want {
			t.Errorf("%s: Kind = %v, want %v (p=%v)", c.name, out.Kind, c.want, out.PValue)
		}
	}
}

func TestBootstrapSamplerDeterministic(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	means1 := NewBootstrapSampler(samples).SampleMeans(5, 20)
	means2 := NewBootstrapSampler(samples).SampleMeans(5, 20)

	if len(means1) != 20 || len(means2) != 20 {
		t.Fatalf("got %d/%d means, want 20/20", len(means1), len(means2))
	}
	for i := range means1 {
		if means1[i] != means2[i] {
			t.Errorf("mean %d differs across runs: %v vs %v", i, means1[i], means2[i])
		}
	}
}

func TestBootstrapSamplerEmptyInput(t *testing.T) {
	means := NewBootstrapSampler(nil).SampleMeans(10, 5)
	if means != nil {
		t.Errorf("expected nil means for empty input, got %v", means)
	}
}
