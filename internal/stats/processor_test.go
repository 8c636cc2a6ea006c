package stats

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/burl-go/burl/internal/sampling"
	"github.com/burl-go/burl/internal/timescale"
)

func collectorWithOutcomes(workerIndex int, durations []float64, failures []int) *sampling.Collector {
	c := sampling.NewCollector(workerIndex, timescale.Micro, len(durations)+len(failures))
	for _, d := range durations {
		c.Outcomes = append(c.Outcomes, sampling.Outcome{OK: true, Duration: d, StatusCode: 200})
	}
	for _, status := range failures {
		c.Outcomes = append(c.Outcomes, sampling.Outcome{OK: false, StatusCode: status})
	}
	return c
}

func TestSummarizeSortsAndCounts(t *testing.T) {
	c0 := collectorWithOutcomes(0, []float64{30, 10, 20}, []int{500})
	c1 := collectorWithOutcomes(1, []float64{5, 15}, nil)

	p := NewProcessor([]*sampling.Collector{c0, c1}, timescale.Micro)
	summary := p.Summarize(zerolog.Nop())
	if summary == nil {
		t.Fatal("expected non-nil summary")
	}

	want := []float64{5, 10, 15, 20, 30}
	if len(summary.Durations) != len(want) {
		t.Fatalf("got %d durations, want %d", len(summary.Durations), len(want))
	}
	for i := range want {
		if summary.Durations[i] != want[i] {
			t.Errorf("durations[%d] = %v, want %v", i, summary.Durations[i], want[i])
		}
	}
	if summary.OKCount != 5 {
		t.Errorf("okCount = %d, want 5", summary.OKCount)
	}
	if summary.ErrorCount != 1 {
		t.Errorf("errorCount = %d, want 1", summary.ErrorCount)
	}
	if summary.Min != 5 || summary.Max != 30 {
		t.Errorf("min/max = %v/%v, want 5/30", summary.Min, summary.Max)
	}
	if !(summary.Q1 <= summary.Median && summary.Median <= summary.Q3) {
		t.Errorf("quartiles out of order: q1=%v median=%v q3=%v", summary.Q1, summary.Median, summary.Q3)
	}
}

func TestSummarizeNilWhenNoSuccesses(t *testing.T) {
	c0 := collectorWithOutcomes(0, nil, []int{500, 503})
	p := NewProcessor([]*sampling.Collector{c0}, timescale.Micro)
	if summary := p.Summarize(zerolog.Nop()); summary != nil {
		t.Errorf("expected nil summary, got %+v", summary)
	}
}

func TestQQPercentilesEmptyBelowTen(t *testing.T) {
	c0 := collectorWithOutcomes(0, []float64{1, 2, 3, 4, 5}, nil)
	p := NewProcessor([]*sampling.Collector{c0}, timescale.Micro)
	summary := p.Summarize(zerolog.Nop())
	if got := summary.QQPercentiles(); len(got) != 0 {
		t.Errorf("expected empty qq percentiles for n<10, got %v", got)
	}
}

func TestDisplayPercentilesCoversAllLevels(t *testing.T) {
	durations := make([]float64, 100)
	for i := range durations {
		durations[i] = float64(i)
	}
	c0 := collectorWithOutcomes(0, durations, nil)
	p := NewProcessor([]*sampling.Collector{c0}, timescale.Micro)
	summary := p.Summarize(zerolog.Nop())

	got := summary.DisplayPercentiles()
	if len(got) != len(DisplayLevels) {
		t.Fatalf("got %d display percentiles, want %d", len(got), len(DisplayLevels))
	}
}

func TestBootstrapSummaryHasConfidenceInterval(t *testing.T) {
	durations := make([]float64, 50)
	for i := range durations {
		durations[i] = float64(i + 1)
	}
	c0 := collectorWithOutcomes(0, durations, nil)
	p := NewProcessor([]*sampling.Collector{c0}, timescale.Micro)
	summary := p.Summarize(zerolog.Nop())

	means, lo, hi := summary.BootstrapSummary(10, 200, 0.1)
	if len(means) != 200 {
		t.Fatalf("got %d means, want 200", len(means))
	}
	if lo == nil || hi == nil {
		t.Fatal("expected non-nil confidence bounds")
	}
	if *lo > *hi {
		t.Errorf("lo=%v > hi=%v", *lo, *hi)
	}
}
