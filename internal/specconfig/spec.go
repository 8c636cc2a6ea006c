package specconfig

import "github.com/burl-go/burl/internal/timescale"

// Header is a single ordered (name, value) pair; RequestSpec keeps these
// as a slice rather than a map so insertion order survives into the
// Request Builder (the builder must add headers verbatim, in order).
type Header struct {
	Name  string
	Value string
}

// StatsConfig tunes the hypothesis-testing and bootstrap knobs.
type StatsConfig struct {
	Alpha              float64
	BootstrapSamples   int
	BootstrapDrawSize  int
}

func defaultStatsConfig() StatsConfig {
	return StatsConfig{
		Alpha:             0.05,
		BootstrapSamples:  1000,
		BootstrapDrawSize: 100,
	}
}

// RequestSpec is the immutable value object describing what to drive
// load against and how to measure and report it. Built once by Load or
// FromURL and never mutated afterward.
type RequestSpec struct {
	URL     string
	Method  Method
	Headers []Header

	Body        *string
	JSONPayload *string
	GQLQuery    *string
	BearerToken *string

	Runs       int
	WarmupRuns int
	Concurrency int
	Scale      timescale.Scale

	ReportDirectory *string
	BaselinePath    *string

	Stats StatsConfig

	DisableCertificateValidation bool
}

// EffectiveConcurrency collapses values <= 1 to sequential (N=1).
func (s RequestSpec) EffectiveConcurrency() int {
	if s.Concurrency <= 1 {
		return 1
	}
	return s.Concurrency
}

// FromURL builds a default GET RequestSpec against url, used by the CLI's
// "get" subcommand.
func FromURL(url string) RequestSpec {
	return RequestSpec{
		URL:         url,
		Method:      Get,
		Runs:        300,
		WarmupRuns:  0,
		Concurrency: 1,
		Scale:       timescale.Micro,
		Stats:       defaultStatsConfig(),
	}
}
