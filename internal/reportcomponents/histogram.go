package reportcomponents

import "github.com/burl-go/burl/internal/stats"

const histogramBuckets = 30

// Histogram renders durations_histogram.html: 30 uniform bins spanning
// [min,max], probability-normalized, with a total overlay plus per-worker
// overlays when worker count > 1.
type Histogram struct {
	min, max float64
	traces   []map[string]any
}

func NewHistogram() *Histogram { return &Histogram{} }

func (h *Histogram) SetBins(min, max float64) {
	h.min, h.max = min, max
}

func (h *Histogram) binSize() float64 {
	if h.max <= h.min {
		return 1
	}
	return (h.max - h.min) / histogramBuckets
}

func (h *Histogram) AddTotal(durations []float64) {
	h.traces = append(h.traces, map[string]any{
		"type":      "histogram",
		"x":         durations,
		"name":      "total",
		"histnorm":  "probability",
		"xbins":     map[string]any{"start": h.min, "end": h.max, "size": h.binSize()},
		"opacity":   0.75,
	})
}

func (h *Histogram) AddThreads(statsByThread map[int]stats.ThreadStats) {
	if len(statsByThread) <= 1 {
		return
	}
	n := len(statsByThread)
	for i := 0; i < n; i++ {
		ts, ok := statsByThread[i]
		if !ok {
			continue
		}
		h.traces = append(h.traces, map[string]any{
			"type":      "histogram",
			"x":         ts.Durations,
			"name":      workerLabel(i),
			"histnorm":  "probability",
			"xbins":     map[string]any{"start": h.min, "end": h.max, "size": h.binSize()},
			"marker":    map[string]any{"color": rgbColor(i, n)},
			"opacity":   0.6,
		})
	}
}

func (h *Histogram) Write(dir string) error {
	page, err := plotlyPage("Durations histogram", h.traces, map[string]any{
		"title":    "Durations histogram",
		"barmode":  "overlay",
	})
	if err != nil {
		return err
	}
	return writeFile(dir, "durations_histogram.html", page)
}
