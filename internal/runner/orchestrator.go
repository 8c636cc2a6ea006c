// Package runner drives the Run Orchestrator: warm-up, fan-out into N
// workers, join, and hand the resulting collectors to the Stats Processor.
// The fan-out generalizes the teacher's internal/provider/executor.go
// errgroup pattern (there: N RPC providers queried in parallel; here: N
// workers sampling the same target).
package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/burl-go/burl/internal/httpreq"
	"github.com/burl-go/burl/internal/sampling"
	"github.com/burl-go/burl/internal/specconfig"
)

// Summary is produced once every worker has joined: the raw collectors
// (ownership transferred from the workers), plus the wall-clock bounds of
// the run.
type Summary struct {
	Collectors []*sampling.Collector
	StartTime  time.Time
	EndTime    time.Time
}

// Run executes warm-up, spawns EffectiveConcurrency workers against a
// shared origin, and waits for them all to finish. Returns (nil, nil) —
// not an error — when the build or warm-up phase can't proceed, matching
// the source's "log and yield None" behavior (§4.3 steps 2-3); returns a
// non-nil error only for situations the Go idiom treats as hard failures
// once a request has in fact been built (none currently — kept for forward
// compatibility with stricter build-time validation).
func Run(ctx context.Context, spec specconfig.RequestSpec, logger zerolog.Logger) (*Summary, error) {
	startTime := time.Now()

	tmpl, err := httpreq.Build(spec)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build request")
		return nil, nil
	}

	if spec.Method == specconfig.Post && len(spec.Headers) == 0 {
		logger.Warn().Msg("POST without configured headers")
	}

	if ok := warmup(ctx, tmpl, spec.WarmupRuns, logger); !ok {
		return nil, nil
	}

	origin := sampling.NewOrigin()

	n := spec.EffectiveConcurrency()
	collectors := make([]*sampling.Collector, n)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		collectors[i] = sampling.NewCollector(i, spec.Scale, spec.Runs)
		g.Go(func() error {
			collectors[i].Run(gctx, tmpl, origin, logger)
			return nil
		})
	}
	// Worker errors never fail the run (sample-level errors are captured
	// as outcomes, not propagated); Wait only joins the goroutines.
	_ = g.Wait()

	endTime := time.Now()

	return &Summary{
		Collectors: collectors,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

// warmup fires n untimed requests sequentially, discarding results. A
// transport error on any warm-up request aborts the run (returns false),
// matching the source's "warm-up failure aborts the run" rule.
func warmup(ctx context.Context, tmpl *httpreq.Template, n int, logger zerolog.Logger) bool {
	for i := 0; i < n; i++ {
		req := tmpl.Clone().WithContext(ctx)
		resp, err := tmpl.Client().Do(req)
		if err != nil {
			logger.Error().Err(err).Int("warmup_sample", i).Msg("warm-up transport error, aborting run")
			return false
		}
		resp.Body.Close()
	}
	return true
}
