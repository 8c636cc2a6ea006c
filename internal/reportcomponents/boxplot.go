package reportcomponents

import (
	"strconv"

	"github.com/burl-go/burl/internal/stats"
)

// BoxPlot renders durations_distribution.html: one box for the aggregate,
// one additional box per worker when worker count > 1.
type BoxPlot struct {
	traces []map[string]any
}

func NewBoxPlot() *BoxPlot { return &BoxPlot{} }

func (b *BoxPlot) AddTotal(durations []float64) {
	b.traces = append(b.traces, map[string]any{
		"type":       "box",
		"y":          durations,
		"name":       "total",
		"jitter":     0.7,
		"boxmean":    "sd",
		"boxpoints":  "all",
	})
}

func (b *BoxPlot) AddThreads(statsByThread map[int]stats.ThreadStats) {
	if len(statsByThread) <= 1 {
		return
	}
	n := len(statsByThread)
	for i := 0; i < n; i++ {
		ts, ok := statsByThread[i]
		if !ok {
			continue
		}
		b.traces = append(b.traces, map[string]any{
			"type":        "box",
			"y":           ts.Durations,
			"name":        workerLabel(i),
			"marker":      map[string]any{"color": rgbColor(i, n)},
			"boxmean":     "sd",
		})
	}
}

func (b *BoxPlot) Write(dir string) error {
	page, err := plotlyPage("Durations box plot", b.traces, map[string]any{
		"title":  "Durations box plot",
		"yaxis":  map[string]any{"title": "durations", "showgrid": true},
	})
	if err != nil {
		return err
	}
	return writeFile(dir, "durations_distribution.html", page)
}

func workerLabel(i int) string {
	return "worker-" + strconv.Itoa(i)
}
