// Package sampling implements the per-worker timed request loop: issue a
// fresh clone of the request template, measure time-to-headers against a
// shared monotonic origin, and classify the outcome.
package sampling

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/burl-go/burl/internal/httpreq"
	"github.com/burl-go/burl/internal/timescale"
)

// Origin is a shared, read-only monotonic reference point. Every worker
// measures start/end offsets against the same Origin so that time-series
// plots remain comparable across workers.
type Origin struct {
	at time.Time
}

// NewOrigin captures "now" as the shared reference point.
func NewOrigin() Origin {
	return Origin{at: time.Now()}
}

// Elapsed returns the wall-clock duration since the origin was captured.
func (o Origin) Elapsed() time.Duration {
	return time.Since(o.at)
}

// Outcome is the tagged result of a single sample; OK reports which
// variant it is. An Ok outcome carries the offsets, duration and content
// length; a Failed outcome carries only StatusCode.
type Outcome struct {
	OK            bool
	StartOffset   float64
	EndOffset     float64
	Duration      float64
	ContentLength *int64
	StatusCode    int
}

// Collector owns the ordered outcome sequence for one worker.
type Collector struct {
	WorkerIndex int
	Scale       timescale.Scale
	PlannedRuns int
	Outcomes    []Outcome
}

// NewCollector allocates a Collector with its outcome slice pre-sized to
// plannedRuns (an upper bound; early abort can leave it short).
func NewCollector(workerIndex int, scale timescale.Scale, plannedRuns int) *Collector {
	return &Collector{
		WorkerIndex: workerIndex,
		Scale:       scale,
		PlannedRuns: plannedRuns,
		Outcomes:    make([]Outcome, 0, plannedRuns),
	}
}

// Run executes the timed request loop in §4.1's order: for each planned
// sample, clone the template, send it, time it, classify it. Transport
// errors are logged and the sample is skipped entirely (no Outcome
// appended) — this is a deliberate asymmetry with non-200 responses,
// which do produce a Failed outcome.
func (c *Collector) Run(ctx context.Context, tmpl *httpreq.Template, origin Origin, logger zerolog.Logger) {
	for i := 0; i < c.PlannedRuns; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		startOffset := c.Scale.Elapsed(origin.Elapsed())
		sampleStart := time.Now()

		req := tmpl.Clone().WithContext(ctx)
		resp, err := tmpl.Client().Do(req)

		duration := c.Scale.Elapsed(time.Since(sampleStart))
		endOffset := c.Scale.Elapsed(origin.Elapsed())

		if err != nil {
			logger.Warn().Err(err).Int("worker", c.WorkerIndex).Int("sample", i).Msg("transport error, sample skipped")
			continue
		}

		outcome := c.classify(resp, startOffset, endOffset, duration)
		c.Outcomes = append(c.Outcomes, outcome)
	}
}

func (c *Collector) classify(resp *http.Response, startOffset, endOffset, duration float64) Outcome {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Outcome{OK: false, StatusCode: resp.StatusCode}
	}

	var contentLength *int64
	if resp.ContentLength >= 0 {
		cl := resp.ContentLength
		contentLength = &cl
	}

	return Outcome{
		OK:            true,
		StartOffset:   startOffset,
		EndOffset:     endOffset,
		Duration:      duration,
		ContentLength: contentLength,
		StatusCode:    resp.StatusCode,
	}
}
