package reportcomponents

import "github.com/burl-go/burl/internal/stats"

// TimeSeries renders durations_timeseries.html: for each worker, a
// scatter of (startOffset, duration) pairs.
type TimeSeries struct {
	traces []map[string]any
}

func NewTimeSeries() *TimeSeries { return &TimeSeries{} }

// AddThreads plots each worker's (startOffset, duration) series, keyed by
// worker index. Unlike BoxPlot/Histogram's per-worker overlays, the time
// series always shows every worker (it is the only component for which
// worker identity, not aggregate durations, is the point).
func (ts *TimeSeries) AddThreads(pointsByWorker map[int][]stats.Point) {
	n := len(pointsByWorker)
	for i := 0; i < n; i++ {
		points, ok := pointsByWorker[i]
		if !ok {
			continue
		}
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for j, p := range points {
			xs[j] = p.X
			ys[j] = p.Y
		}
		ts.traces = append(ts.traces, map[string]any{
			"type":   "scatter",
			"mode":   "markers",
			"x":      xs,
			"y":      ys,
			"name":   workerLabel(i),
			"marker": map[string]any{"color": rgbColor(i, n)},
		})
	}
}

func (ts *TimeSeries) Write(dir string) error {
	page, err := plotlyPage("Durations time series", ts.traces, map[string]any{
		"title": "Durations over time",
		"xaxis": map[string]any{"title": "start offset"},
		"yaxis": map[string]any{"title": "duration"},
	})
	if err != nil {
		return err
	}
	return writeFile(dir, "durations_timeseries.html", page)
}
