package stats

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/burl-go/burl/internal/sampling"
	"github.com/burl-go/burl/internal/timescale"
)

// ThreadStats is the reduction of one worker's SampleCollector.
type ThreadStats struct {
	OKCount       int
	ErrorCount    int
	ErrorsByStatus map[int]int
	Durations     []float64
	TotalBytes    int64

	Total float64
	Mean  float64
	Min   float64
	Max   float64
	Std   *float64
}

// DisplayLevels is the fixed set of percentile levels shown in the
// terminal/summary report, distinct from the n/10-spaced Q-Q set (§9
// Open Question 5: both must be available).
var DisplayLevels = []float64{0.01, 0.05, 0.10, 0.20, 0.30, 0.40, 0.50, 0.60, 0.70, 0.80, 0.90, 0.95, 0.99}

// StatsSummary is the aggregate statistical descriptor of a run.
type StatsSummary struct {
	Scale          timescale.Scale
	Durations      []float64
	Total          float64
	TotalBytes     int64
	Mean           float64
	Median         float64
	Q1             float64
	Q3             float64
	Min            float64
	Max            float64
	Std            *float64
	MeanRPS        *float64
	OKCount        int
	ErrorCount     int
	ErrorsByStatus map[int]int
	StatsByThread  map[int]ThreadStats
}

// Processor owns the collectors from a finished run plus the scale they
// were recorded in, and reduces them into a StatsSummary.
type Processor struct {
	Collectors []*sampling.Collector
	Scale      timescale.Scale
}

func NewProcessor(collectors []*sampling.Collector, scale timescale.Scale) *Processor {
	return &Processor{Collectors: collectors, Scale: scale}
}

// Summarize implements §4.6's aggregation contract. Returns nil when
// there are zero successful samples across all workers.
func (p *Processor) Summarize(logger zerolog.Logger) *StatsSummary {
	statsByThread := make(map[int]ThreadStats, len(p.Collectors))
	errorsByStatus := make(map[int]int)
	var allDurations []float64
	var totalBytes int64
	okCount, errorCount := 0, 0

	for _, c := range p.Collectors {
		ts := reduceThread(c)
		statsByThread[c.WorkerIndex] = ts

		for code, count := range ts.ErrorsByStatus {
			errorsByStatus[code] += count
		}
		allDurations = append(allDurations, ts.Durations...)
		totalBytes += ts.TotalBytes
		okCount += ts.OKCount
		errorCount += ts.ErrorCount
	}

	if len(allDurations) == 0 {
		logger.Warn().Msg("zero successful samples; cannot summarize")
		return nil
	}

	sort.Float64s(allDurations)
	n := len(allDurations)

	mean := Sum(allDurations) / float64(n)
	std, stdOK := StandardDeviation(allDurations, mean)
	var stdPtr *float64
	if stdOK {
		stdPtr = &std
	}

	rps, rpsOK := RequestsPerSecond(mean, p.Scale)
	var rpsPtr *float64
	if rpsOK {
		rpsPtr = &rps
	}

	return &StatsSummary{
		Scale:          p.Scale,
		Durations:      allDurations,
		Total:          Sum(allDurations),
		TotalBytes:     totalBytes,
		Mean:           mean,
		Median:         Percentile(allDurations, 0.5, n),
		Q1:             Percentile(allDurations, 0.25, n),
		Q3:             Percentile(allDurations, 0.75, n),
		Min:            allDurations[0],
		Max:            allDurations[n-1],
		Std:            stdPtr,
		MeanRPS:        rpsPtr,
		OKCount:        okCount,
		ErrorCount:     errorCount,
		ErrorsByStatus: errorsByStatus,
		StatsByThread:  statsByThread,
	}
}

func reduceThread(c *sampling.Collector) ThreadStats {
	ts := ThreadStats{ErrorsByStatus: make(map[int]int)}

	var durations []float64
	for _, o := range c.Outcomes {
		if o.OK {
			ts.OKCount++
			durations = append(durations, o.Duration)
			if o.ContentLength != nil {
				ts.TotalBytes += *o.ContentLength
			}
		} else {
			ts.ErrorCount++
			ts.ErrorsByStatus[o.StatusCode]++
		}
	}
	ts.Durations = durations

	if len(durations) > 0 {
		ts.Total = Sum(durations)
		ts.Mean = ts.Total / float64(len(durations))
		sorted := make([]float64, len(durations))
		copy(sorted, durations)
		sort.Float64s(sorted)
		ts.Min = sorted[0]
		ts.Max = sorted[len(sorted)-1]
		if std, ok := StandardDeviation(durations, ts.Mean); ok {
			ts.Std = &std
		}
	}

	return ts
}

// DisplayPercentiles maps DisplayLevels to (level*100, value) pairs.
func (s *StatsSummary) DisplayPercentiles() []LevelValue {
	n := len(s.Durations)
	out := make([]LevelValue, len(DisplayLevels))
	for i, level := range DisplayLevels {
		out[i] = LevelValue{LevelPct: level * 100, Value: Percentile(s.Durations, level, n)}
	}
	return out
}

// QQPercentiles computes k-1 points at (i*100/k, percentile(durations,
// i/k, n)) for i in [1,k), where k = floor(n/10). Empty when k = 0.
func (s *StatsSummary) QQPercentiles() []LevelValue {
	n := len(s.Durations)
	k := n / 10
	if k == 0 {
		return nil
	}
	out := make([]LevelValue, 0, k-1)
	for i := 1; i < k; i++ {
		level := float64(i) / float64(k)
		out = append(out, LevelValue{
			LevelPct: float64(i) * 100 / float64(k),
			Value:    Percentile(s.Durations, level, n),
		})
	}
	return out
}

// NormalQQCurve applies NormalQQ to QQPercentiles using NormalParams
// derived from (mean, std, okCount). Empty when std is absent.
func (s *StatsSummary) NormalQQCurve() []Point {
	if s.Std == nil {
		return nil
	}
	return NormalQQ(s.QQPercentiles(), s.Mean, *s.Std)
}

// BootstrapSummary returns the bootstrap means and their confidence
// interval at the given alpha.
func (s *StatsSummary) BootstrapSummary(drawSize, nBootstrap int, alpha float64) ([]float64, *float64, *float64) {
	means := NewBootstrapSampler(s.Durations).SampleMeans(drawSize, nBootstrap)
	lo, hi, ok := ConfidenceInterval(means, alpha)
	if !ok {
		return means, nil, nil
	}
	return means, &lo, &hi
}
