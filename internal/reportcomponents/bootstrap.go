package reportcomponents

// BootstrapHistogram renders bootstrap_histogram.html: a histogram of
// bootstrap means overlaid with two vertical segments at the (lo, hi)
// confidence bounds.
type BootstrapHistogram struct {
	traces []map[string]any
}

func NewBootstrapHistogram() *BootstrapHistogram { return &BootstrapHistogram{} }

func (b *BootstrapHistogram) AddTotal(bootstrapMeans []float64) {
	b.traces = append(b.traces, map[string]any{
		"type":     "histogram",
		"x":        bootstrapMeans,
		"name":     "bootstrap means",
		"histnorm": "probability",
	})
}

// AddConfidenceInterval draws two vertical line segments at lower/upper,
// each spanning y in [0, 0.1].
func (b *BootstrapHistogram) AddConfidenceInterval(lower, upper float64) {
	b.traces = append(b.traces,
		map[string]any{
			"type": "scatter", "mode": "lines",
			"x": []float64{lower, lower}, "y": []float64{0, 0.1},
			"name": "lower bound", "line": map[string]any{"color": "red"},
		},
		map[string]any{
			"type": "scatter", "mode": "lines",
			"x": []float64{upper, upper}, "y": []float64{0, 0.1},
			"name": "upper bound", "line": map[string]any{"color": "red"},
		},
	)
}

func (b *BootstrapHistogram) Write(dir string) error {
	page, err := plotlyPage("Bootstrap mean histogram", b.traces, map[string]any{
		"title": "Bootstrap mean histogram",
	})
	if err != nil {
		return err
	}
	return writeFile(dir, "bootstrap_histogram.html", page)
}
