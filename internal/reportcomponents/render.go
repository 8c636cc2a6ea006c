package reportcomponents

import (
	"github.com/burl-go/burl/internal/specconfig"
	"github.com/burl-go/burl/internal/stats"
)

// RenderAll builds and (when componentsDir is non-nil) writes the report
// components; the bootstrap histogram is built and written only when cfg
// is non-nil. Mirrors original_source/burl-reporter/src/report.rs's
// create_components. timeSeriesByWorker supplies each worker's raw
// (startOffset, duration) pairs — the one piece of per-sample detail that
// does not survive into ThreadStats's aggregated form.
func RenderAll(
	current *stats.StatsSummary,
	baseline *stats.StatsSummary,
	cfg *specconfig.StatsConfig,
	componentsDir *string,
	timeSeriesByWorker map[int][]stats.Point,
) error {
	if current == nil {
		return nil
	}

	summary := NewSummary()
	summary.AddCurrent(current)

	box := NewBoxPlot()
	box.AddTotal(current.Durations)
	box.AddThreads(current.StatsByThread)

	hist := NewHistogram()
	hist.SetBins(current.Min, current.Max)
	hist.AddTotal(current.Durations)
	hist.AddThreads(current.StatsByThread)

	ts := NewTimeSeries()
	ts.AddThreads(timeSeriesByWorker)

	qq := NewQQPlot()
	qq.AddCurrent(current.NormalQQCurve())

	var bootstrapHist *BootstrapHistogram
	if cfg != nil {
		means, lo, hi := current.BootstrapSummary(cfg.BootstrapDrawSize, cfg.BootstrapSamples, cfg.Alpha)
		bootstrapHist = NewBootstrapHistogram()
		bootstrapHist.AddTotal(means)
		if lo != nil && hi != nil {
			bootstrapHist.AddConfidenceInterval(*lo, *hi)
		}
	}

	if baseline != nil {
		statsCfg := specconfig.StatsConfig{Alpha: 0.05, BootstrapSamples: 1000, BootstrapDrawSize: 100}
		if cfg != nil {
			statsCfg = *cfg
		}
		summary.AddBaseline(baseline, statsCfg)
		if baseline.Scale == current.Scale {
			qq.AddBaseline(baseline.NormalQQCurve())
		}
	}
	qq.AddReferenceLine()

	if componentsDir == nil {
		// No report directory: components are built (so their
		// accumulation logic runs and is exercised/testable) but nothing
		// is written — per §4.7 step 2.
		return nil
	}

	dir := *componentsDir
	writers := []interface{ Write(string) error }{summary, box, hist, ts, qq}
	if bootstrapHist != nil {
		writers = append(writers, bootstrapHist)
	}
	for _, w := range writers {
		if err := w.Write(dir); err != nil {
			return err
		}
	}
	return nil
}
