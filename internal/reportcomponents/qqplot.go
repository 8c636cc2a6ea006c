package reportcomponents

import "github.com/burl-go/burl/internal/stats"

// QQPlot renders qq_plot.html: the current run's normal Q-Q pairs,
// optionally overlaid with a baseline's, plus a 45-degree reference line
// over the union of x-coordinates.
type QQPlot struct {
	traces []map[string]any
	xs     []float64
}

func NewQQPlot() *QQPlot { return &QQPlot{} }

func (q *QQPlot) AddCurrent(curve []stats.Point) {
	q.addCurve(curve, "current")
}

func (q *QQPlot) AddBaseline(curve []stats.Point) {
	q.addCurve(curve, "baseline")
}

func (q *QQPlot) addCurve(curve []stats.Point, name string) {
	if len(curve) == 0 {
		return
	}
	xs := make([]float64, len(curve))
	ys := make([]float64, len(curve))
	for i, p := range curve {
		xs[i] = p.X
		ys[i] = p.Y
		q.xs = append(q.xs, p.X)
	}
	q.traces = append(q.traces, map[string]any{
		"type": "scatter",
		"mode": "markers",
		"x":    xs,
		"y":    ys,
		"name": name,
	})
}

// AddReferenceLine draws the 45-degree y=x line over the union of
// x-coordinates added so far. Must be called after all AddCurrent/
// AddBaseline calls.
func (q *QQPlot) AddReferenceLine() {
	if len(q.xs) == 0 {
		return
	}
	min, max := q.xs[0], q.xs[0]
	for _, x := range q.xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	q.traces = append(q.traces, map[string]any{
		"type": "scatter",
		"mode": "lines",
		"x":    []float64{min, max},
		"y":    []float64{min, max},
		"name": "reference",
		"line": map[string]any{"dash": "dash", "color": "gray"},
	})
}

func (q *QQPlot) Write(dir string) error {
	page, err := plotlyPage("Normal Q-Q plot", q.traces, map[string]any{
		"title": "Normal Q-Q plot",
		"xaxis": map[string]any{"title": "theoretical quantile"},
		"yaxis": map[string]any{"title": "sample quantile"},
	})
	if err != nil {
		return err
	}
	return writeFile(dir, "qq_plot.html", page)
}
