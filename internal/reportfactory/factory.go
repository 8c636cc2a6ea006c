// Package reportfactory implements the Report Factory: directory
// scaffolding, archival of prior artifacts, baseline loading, artifact
// serialization, and component rendering. Grounded on
// original_source/burl-reporter/src/report.rs's orchestration order and
// the teacher's internal/reports/reports.go for the Go idiom of writing
// pretty JSON with os.MkdirAll/os.WriteFile.
package reportfactory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/burl-go/burl/internal/burlerr"
	"github.com/burl-go/burl/internal/reportcomponents"
	"github.com/burl-go/burl/internal/specconfig"
	"github.com/burl-go/burl/internal/stats"
	"github.com/burl-go/burl/internal/timescale"
)

const metaTimeFormat = "2006-01-02 15:04:05"

// PersistedSample is one Ok sample as written to samples.json.
type PersistedSample struct {
	MeasurementStart float64 `json:"measurement_start"`
	MeasurementEnd   float64 `json:"measurement_end"`
	Duration         float64 `json:"duration"`
	ContentLength    *int64  `json:"content_length,omitempty"`
}

// Meta is the {start_time, end_time, config} artifact written to meta.json.
type Meta struct {
	StartTime string                    `json:"start_time"`
	EndTime   string                    `json:"end_time"`
	Config    specconfig.RequestSpec    `json:"config"`
}

// persistedSummary mirrors stats.StatsSummary for JSON (de)serialization;
// stats.StatsSummary itself carries no json tags since it is an internal
// aggregation type, not a wire type.
type persistedSummary struct {
	Scale          timescale.Scale    `json:"scale"`
	Durations      []float64          `json:"durations"`
	Total          float64            `json:"total"`
	TotalBytes     int64              `json:"total_bytes"`
	Mean           float64            `json:"mean"`
	Median         float64            `json:"median"`
	Q1             float64            `json:"q1"`
	Q3             float64            `json:"q3"`
	Min            float64            `json:"min"`
	Max            float64            `json:"max"`
	Std            *float64           `json:"std,omitempty"`
	MeanRPS        *float64           `json:"mean_rps,omitempty"`
	OKCount        int                `json:"n_ok"`
	ErrorCount     int                `json:"n_errors"`
	ErrorsByStatus map[int]int        `json:"errors_by_status"`
}

func toPersisted(s *stats.StatsSummary) persistedSummary {
	return persistedSummary{
		Scale:          s.Scale,
		Durations:      s.Durations,
		Total:          s.Total,
		TotalBytes:     s.TotalBytes,
		Mean:           s.Mean,
		Median:         s.Median,
		Q1:             s.Q1,
		Q3:             s.Q3,
		Min:            s.Min,
		Max:            s.Max,
		Std:            s.Std,
		MeanRPS:        s.MeanRPS,
		OKCount:        s.OKCount,
		ErrorCount:     s.ErrorCount,
		ErrorsByStatus: s.ErrorsByStatus,
	}
}

// LoadBaseline reads a prior stats.json (whose fields the testers need:
// scale, mean, std, okCount, durations) from the given path. A missing
// directory or file is a warning, not an error: baseline becomes nil.
func LoadBaseline(path string, logger zerolog.Logger) *stats.StatsSummary {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(path, "stats.json"))
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("no baseline found")
		return nil
	}
	var p persistedSummary
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Warn().Err(err).Msg("baseline stats.json malformed, ignoring")
		return nil
	}
	return &stats.StatsSummary{
		Scale:          p.Scale,
		Durations:      p.Durations,
		Total:          p.Total,
		TotalBytes:     p.TotalBytes,
		Mean:           p.Mean,
		Median:         p.Median,
		Q1:             p.Q1,
		Q3:             p.Q3,
		Min:            p.Min,
		Max:            p.Max,
		Std:            p.Std,
		MeanRPS:        p.MeanRPS,
		OKCount:        p.OKCount,
		ErrorCount:     p.ErrorCount,
		ErrorsByStatus: p.ErrorsByStatus,
	}
}

// setupReportStructure ensures reportDir/{report.html,components/,data/}
// exist, writing the constant report.html template only if absent.
func setupReportStructure(reportDir string) (componentsDir, dataDir string, err error) {
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", "", burlerr.Wrap(burlerr.IO, "create report directory", err)
	}
	componentsDir = filepath.Join(reportDir, "components")
	dataDir = filepath.Join(reportDir, "data")
	if err := os.MkdirAll(componentsDir, 0o755); err != nil {
		return "", "", burlerr.Wrap(burlerr.IO, "create components directory", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", "", burlerr.Wrap(burlerr.IO, "create data directory", err)
	}

	reportHTML := filepath.Join(reportDir, "report.html")
	if _, err := os.Stat(reportHTML); os.IsNotExist(err) {
		if err := os.WriteFile(reportHTML, []byte(reportcomponents.BaseReportHTML), 0o644); err != nil {
			return "", "", burlerr.Wrap(burlerr.IO, "write report.html", err)
		}
	}

	return componentsDir, dataDir, nil
}

// archivePriorArtifacts moves stats.json/meta.json/samples.json (if
// present) into dataDir/hist/<UTC timestamp>/. Failures are warnings, not
// fatal: the run proceeds with overwrite.
func archivePriorArtifacts(dataDir string, now time.Time, logger zerolog.Logger) {
	names := []string{"stats.json", "meta.json", "samples.json"}
	var toMove []string
	for _, name := range names {
		p := filepath.Join(dataDir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			toMove = append(toMove, name)
		}
	}
	if len(toMove) == 0 {
		return
	}

	histDir := filepath.Join(dataDir, "hist", now.UTC().Format("2006-01-02__15_04_05"))
	if err := os.MkdirAll(histDir, 0o755); err != nil {
		logger.Warn().Err(err).Msg("failed to create archive directory, proceeding with overwrite")
		return
	}
	for _, name := range toMove {
		src := filepath.Join(dataDir, name)
		dst := filepath.Join(histDir, name)
		if err := os.Rename(src, dst); err != nil {
			logger.Warn().Err(err).Str("file", name).Msg("failed to archive artifact, proceeding with overwrite")
		}
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return burlerr.Wrap(burlerr.SerDe, "marshal "+filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return burlerr.Wrap(burlerr.IO, "write "+filepath.Base(path), err)
	}
	return nil
}

// CreateReport implements §4.7's contract end to end.
func CreateReport(
	spec specconfig.RequestSpec,
	summary *stats.StatsSummary,
	samplesByWorker map[int][]PersistedSample,
	startTime, endTime time.Time,
	logger zerolog.Logger,
) error {
	timeSeries := timeSeriesFromSamples(samplesByWorker)

	if spec.ReportDirectory == nil {
		// No persistence: components are still built (their add_* logic
		// runs so it stays exercised/testable) but nothing is written.
		return reportcomponents.RenderAll(summary, nil, &spec.Stats, nil, timeSeries)
	}
	reportDir := *spec.ReportDirectory

	componentsDir, dataDir, err := setupReportStructure(reportDir)
	if err != nil {
		return err
	}

	baselinePath := dataDir
	if spec.BaselinePath != nil {
		baselinePath = *spec.BaselinePath
	}
	baseline := LoadBaseline(baselinePath, logger)

	archivePriorArtifacts(dataDir, startTime, logger)

	if err := writeJSON(filepath.Join(dataDir, "stats.json"), toPersisted(summary)); err != nil {
		return err
	}
	meta := Meta{
		StartTime: startTime.UTC().Format(metaTimeFormat),
		EndTime:   endTime.UTC().Format(metaTimeFormat),
		Config:    spec,
	}
	if err := writeJSON(filepath.Join(dataDir, "meta.json"), meta); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dataDir, "samples.json"), samplesByWorker); err != nil {
		return err
	}

	if err := reportcomponents.RenderAll(summary, baseline, &spec.Stats, &componentsDir, timeSeries); err != nil {
		return burlerr.Wrap(burlerr.IO, "render report components", err)
	}

	return nil
}

func timeSeriesFromSamples(samplesByWorker map[int][]PersistedSample) map[int][]stats.Point {
	out := make(map[int][]stats.Point, len(samplesByWorker))
	for worker, samples := range samplesByWorker {
		points := make([]stats.Point, len(samples))
		for i, s := range samples {
			points[i] = stats.Point{X: s.MeasurementStart, Y: s.Duration}
		}
		out[worker] = points
	}
	return out
}
