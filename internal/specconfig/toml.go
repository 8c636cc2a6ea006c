package specconfig

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/burl-go/burl/internal/burlerr"
	"github.com/burl-go/burl/internal/timescale"
)

// rawHeader is one [[headers]] array-of-tables entry. Headers are
// decoded into a slice (not a map) specifically so TOML document order
// survives into RequestSpec.Headers: spec.go documents that slice as
// order-preserving, and httpreq.Build is required to emit headers
// "verbatim, in insertion order" per spec.md §4.2 — a map would
// randomize that order on every decode.
type rawHeader struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// rawSpec mirrors RequestSpec's fields in their snake_case TOML form.
// go-toml/v2 has no per-field alias mechanism, so Load normalizes
// camelCase keys to snake_case before decoding into this struct.
type rawSpec struct {
	URL                           string            `toml:"url"`
	Method                        string            `toml:"method"`
	Headers                       []rawHeader       `toml:"headers"`
	Body                          *string           `toml:"body"`
	JSONPayload                   *string           `toml:"json_payload"`
	GQLQuery                      *string           `toml:"gql_query"`
	BearerToken                   *string           `toml:"bearer_token"`
	Runs                          *int              `toml:"n_runs"`
	WarmupRuns                    *int              `toml:"n_warmup_runs"`
	ConcurrencyLevel              *int              `toml:"concurrency_level"`
	DurationScale                 *string           `toml:"duration_scale"`
	ReportDirectory               *string           `toml:"report_directory"`
	BaselinePath                  *string           `toml:"baseline_path"`
	DisableCertificateValidation  *bool             `toml:"disable_certificate_validation"`
	StatsConfig                   *rawStatsConfig    `toml:"stats_config"`
}

type rawStatsConfig struct {
	Alpha              *float64 `toml:"alpha"`
	NBootstrapSamples  *int     `toml:"n_bootstrap_samples"`
	NBootstrapDrawSize *int     `toml:"n_bootstrap_draw_size"`
}

// camelAliases maps each camelCase alias to its canonical snake_case key,
// per spec.md §6 ("both snake_case and camelCase aliases accepted").
var camelAliases = map[string]string{
	"jsonPayload":                  "json_payload",
	"gqlQuery":                     "gql_query",
	"bearerToken":                  "bearer_token",
	"nRuns":                        "n_runs",
	"nWarmupRuns":                  "n_warmup_runs",
	"concurrencyLevel":             "concurrency_level",
	"durationScale":                "duration_scale",
	"reportDirectory":              "report_directory",
	"baselinePath":                 "baseline_path",
	"disableCertificateValidation": "disable_certificate_validation",
	"statsConfig":                  "stats_config",
	"nBootstrapSamples":            "n_bootstrap_samples",
	"nBootstrapDrawSize":           "n_bootstrap_draw_size",
}

// Load reads and strictly decodes a TOML file into a RequestSpec, applying
// spec.md §3's defaults for absent optional fields.
func Load(path string) (RequestSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RequestSpec{}, burlerr.Wrap(burlerr.IO, "read config file", err)
	}
	return decode(data)
}

func decode(data []byte) (RequestSpec, error) {
	normalized, err := normalizeKeys(data)
	if err != nil {
		return RequestSpec{}, burlerr.Wrap(burlerr.SerDe, "normalize config keys", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()

	var raw rawSpec
	if err := dec.Decode(&raw); err != nil {
		return RequestSpec{}, burlerr.Wrap(burlerr.SerDe, "decode toml config", err)
	}

	return fromRaw(raw)
}

// normalizeKeys decodes into a generic document, rewrites any top-level
// camelCase alias key to its snake_case canonical form (including inside
// the nested stats_config/statsConfig table), and re-encodes. This keeps
// the strongly-typed decode path (with DisallowUnknownFields) as the
// single source of truth for what is a valid key.
func normalizeKeys(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	normalized := normalizeMap(doc)
	return toml.Marshal(normalized)
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := k
		if canonical, ok := camelAliases[k]; ok {
			key = canonical
		}
		out[key] = normalizeValue(v)
	}
	return out
}

// normalizeValue recurses into nested tables and arrays of tables so that
// key normalization reaches every level of the document. Slice order is
// left untouched (Go slices, unlike maps, already preserve TOML document
// order) — this is what keeps [[headers]] entries in insertion order.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeMap(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeValue(elem)
		}
		return out
	default:
		return v
	}
}

func fromRaw(raw rawSpec) (RequestSpec, error) {
	if strings.TrimSpace(raw.URL) == "" {
		return RequestSpec{}, burlerr.New(burlerr.InvalidConfig, "url must not be empty")
	}

	spec := RequestSpec{
		URL:                           raw.URL,
		Body:                          raw.Body,
		JSONPayload:                   raw.JSONPayload,
		GQLQuery:                      raw.GQLQuery,
		BearerToken:                   raw.BearerToken,
		ReportDirectory:               raw.ReportDirectory,
		BaselinePath:                  raw.BaselinePath,
		Runs:                          300,
		WarmupRuns:                    0,
		Concurrency:                   1,
		Scale:                         timescale.Micro,
		Stats:                         defaultStatsConfig(),
		DisableCertificateValidation:  raw.DisableCertificateValidation != nil && *raw.DisableCertificateValidation,
	}

	if raw.Method != "" {
		var m Method
		if err := m.UnmarshalText([]byte(raw.Method)); err != nil {
			return RequestSpec{}, burlerr.Wrap(burlerr.InvalidConfig, "method", err)
		}
		spec.Method = m
	}

	for _, h := range raw.Headers {
		spec.Headers = append(spec.Headers, Header{Name: h.Name, Value: h.Value})
	}

	if raw.Runs != nil {
		spec.Runs = *raw.Runs
	}
	if raw.WarmupRuns != nil {
		spec.WarmupRuns = *raw.WarmupRuns
	}
	if raw.ConcurrencyLevel != nil {
		spec.Concurrency = *raw.ConcurrencyLevel
	}
	if raw.DurationScale != nil {
		var s timescale.Scale
		if err := s.UnmarshalText([]byte(*raw.DurationScale)); err != nil {
			return RequestSpec{}, burlerr.Wrap(burlerr.InvalidConfig, "duration_scale", err)
		}
		spec.Scale = s
	}
	if raw.StatsConfig != nil {
		if raw.StatsConfig.Alpha != nil {
			spec.Stats.Alpha = *raw.StatsConfig.Alpha
		}
		if raw.StatsConfig.NBootstrapSamples != nil {
			spec.Stats.BootstrapSamples = *raw.StatsConfig.NBootstrapSamples
		}
		if raw.StatsConfig.NBootstrapDrawSize != nil {
			spec.Stats.BootstrapDrawSize = *raw.StatsConfig.NBootstrapDrawSize
		}
	}

	if spec.Method == Post && spec.Body == nil && spec.JSONPayload == nil && spec.GQLQuery == nil {
		return RequestSpec{}, burlerr.New(burlerr.InvalidConfig, fmt.Sprintf("post request to %s has no body, json payload, or gql query", spec.URL))
	}

	return spec, nil
}
