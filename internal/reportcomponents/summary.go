package reportcomponents

import (
	"fmt"
	"math"
	"strings"

	"github.com/burl-go/burl/internal/specconfig"
	"github.com/burl-go/burl/internal/stats"
)

const summaryTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Summary</title></head>
<body>
<h2>Run summary</h2>
<table border="1" cellpadding="4">
<tr><td>Scale</td><td>$SCALE$</td></tr>
<tr><td>Total bytes</td><td>$TOTAL_BYTES$</td></tr>
<tr><td># ok</td><td>$N_OK$</td></tr>
<tr><td># failed</td><td>$N_FAILED$</td></tr>
<tr><td># threads</td><td>$N_THREADS$</td></tr>
<tr><td>Total duration</td><td>$TOTAL_DURATION$</td></tr>
<tr><td>Mean</td><td>$MEAN$</td></tr>
<tr><td>RPS</td><td>$RPS$</td></tr>
<tr><td>Std dev</td><td>$STDEV$</td></tr>
<tr><td>Min</td><td>$MIN$</td></tr>
<tr><td>Max</td><td>$MAX$</td></tr>
<tr><td>Q1</td><td>$Q1$</td></tr>
<tr><td>Q2 (median)</td><td>$Q2$</td></tr>
<tr><td>Q3</td><td>$Q3$</td></tr>
</table>
<h2>Baseline comparison</h2>
<table border="1" cellpadding="4">
<tr><td>Baseline mean</td><td>$MEAN_BASELINE$</td></tr>
<tr><td>Baseline RPS</td><td>$RPS_BASELINE$</td></tr>
<tr><td>Baseline std dev</td><td>$STDEV_BASELINE$</td></tr>
<tr><td>Analytic test</td><td>$PERFORMANCE_OUTCOME$</td></tr>
<tr><td>Permutation test</td><td>$PERMUTATION_PERFORMANCE_OUTCOME$</td></tr>
</table>
</body>
</html>
`

// Summary builds the summary.html component: token substitution into a
// base template (§4.8).
type Summary struct {
	current  *stats.StatsSummary
	baseline *stats.StatsSummary
	cfg      *specconfig.StatsConfig
}

func NewSummary() *Summary {
	return &Summary{}
}

func (s *Summary) AddCurrent(current *stats.StatsSummary) {
	s.current = current
}

func (s *Summary) AddBaseline(baseline *stats.StatsSummary, cfg specconfig.StatsConfig) {
	s.baseline = baseline
	s.cfg = &cfg
}

// Write renders the template with all substitutions applied.
func (s *Summary) Write(dir string) error {
	return writeFile(dir, "summary.html", s.Render())
}

// Render produces the substituted HTML; split out from Write so it can be
// exercised without a filesystem.
func (s *Summary) Render() string {
	tokens := map[string]string{
		"$BASELINE_COMPARISON_BLOCK$": "",
	}
	if s.current != nil {
		tokens["$SCALE$"] = s.current.Scale.String()
		tokens["$TOTAL_BYTES$"] = fmt.Sprintf("%d", s.current.TotalBytes)
		tokens["$N_OK$"] = fmt.Sprintf("%d", s.current.OKCount)
		tokens["$N_FAILED$"] = fmt.Sprintf("%d", s.current.ErrorCount)
		tokens["$N_THREADS$"] = fmt.Sprintf("%d", len(s.current.StatsByThread))
		tokens["$TOTAL_DURATION$"] = fmt.Sprintf("%g", s.current.Total)
		tokens["$MEAN$"] = fmt.Sprintf("%g", s.current.Mean)
		tokens["$RPS$"] = formatOptional(s.current.MeanRPS)
		tokens["$STDEV$"] = formatOptional(s.current.Std)
		tokens["$MIN$"] = fmt.Sprintf("%g", s.current.Min)
		tokens["$MAX$"] = fmt.Sprintf("%g", s.current.Max)
		tokens["$Q1$"] = fmt.Sprintf("%g", s.current.Q1)
		tokens["$Q2$"] = fmt.Sprintf("%g", s.current.Median)
		tokens["$Q3$"] = fmt.Sprintf("%g", s.current.Q3)
	}

	s.addBaselineTokens(tokens)

	tmpl := summaryTemplate
	for token, value := range tokens {
		tmpl = strings.ReplaceAll(tmpl, token, value)
	}
	return tmpl
}

func (s *Summary) addBaselineTokens(tokens map[string]string) {
	if s.baseline == nil || s.current == nil {
		tokens["$MEAN_BASELINE$"] = "n/a"
		tokens["$RPS_BASELINE$"] = "n/a"
		tokens["$STDEV_BASELINE$"] = "n/a"
		tokens["$PERFORMANCE_OUTCOME$"] = "could not be determined"
		tokens["$PERMUTATION_PERFORMANCE_OUTCOME$"] = "could not be determined"
		return
	}

	tokens["$MEAN_BASELINE$"] = fmt.Sprintf("%g", s.baseline.Mean)
	tokens["$RPS_BASELINE$"] = formatOptional(s.baseline.MeanRPS)
	tokens["$STDEV_BASELINE$"] = formatOptional(s.baseline.Std)

	if s.baseline.Scale != s.current.Scale {
		msg := `<span>cannot be compared due to different time scales</span>`
		tokens["$PERFORMANCE_OUTCOME$"] = msg
		tokens["$PERMUTATION_PERFORMANCE_OUTCOME$"] = msg
		return
	}

	cfg := specconfig.StatsConfig{Alpha: 0.05, BootstrapSamples: 1000, BootstrapDrawSize: 100}
	if s.cfg != nil {
		cfg = *s.cfg
	}

	var baselineStd, currentStd float64
	if s.baseline.Std != nil {
		baselineStd = *s.baseline.Std
	}
	if s.current.Std != nil {
		currentStd = *s.current.Std
	}

	analytic := stats.AnalyticTester(
		stats.NormalParams{Mean: s.baseline.Mean, Std: baselineStd, NSamples: s.baseline.OKCount},
		stats.NormalParams{Mean: s.current.Mean, Std: currentStd, NSamples: s.current.OKCount},
		cfg.Alpha,
	)
	tokens["$PERFORMANCE_OUTCOME$"] = renderOutcome(analytic)

	permutation := stats.PermutationTester(s.baseline.Durations, s.current.Durations, cfg.Alpha, cfg.BootstrapSamples)
	tokens["$PERMUTATION_PERFORMANCE_OUTCOME$"] = renderOutcome(permutation)
}

func renderOutcome(outcome *stats.Outcome) string {
	if outcome == nil {
		return "could not be determined"
	}
	switch outcome.Kind {
	case stats.Improved:
		return fmt.Sprintf(`<span style="color:green">Improved (p=%g)</span>`, outcome.PValue)
	case stats.Regressed:
		return fmt.Sprintf(`<span style="color:red">Regressed (p=%g)</span>`, outcome.PValue)
	default:
		return `<span>Inconclusive</span>`
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return fmt.Sprintf("%g", math.NaN())
	}
	return fmt.Sprintf("%g", *v)
}
