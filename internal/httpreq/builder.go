// Package httpreq assembles a cloneable HTTP request template from a
// RequestSpec. The client and the request itself are hand-rolled over
// net/http, matching the teacher's own internal/rpc/client.go rather than
// pulling in a third-party HTTP client — the client's build/clone/send
// contract is explicitly out of scope for substitution (see SPEC_FULL.md §4).
package httpreq

import (
	"bytes"
	"crypto/tls"
	"io"
	"net/http"
	"strings"

	"github.com/burl-go/burl/internal/burlerr"
	"github.com/burl-go/burl/internal/specconfig"
)

// Template is an immutable, clonable request plus the client that should
// send it. Each sample obtains a fresh *http.Request via Clone so no
// per-send state (consumed body reader, in-flight context) leaks across
// samples.
type Template struct {
	client *http.Client
	method string
	url    string
	header http.Header
	body   []byte
}

// Build assembles a Template from spec, per §4.2's contract.
func Build(spec specconfig.RequestSpec) (*Template, error) {
	client := &http.Client{}
	if spec.DisableCertificateValidation {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // opt-in via spec
		}
	}

	tmpl := &Template{
		client: client,
		method: spec.Method.String(),
		url:    spec.URL,
		header: make(http.Header),
	}

	if spec.Method == specconfig.Post {
		switch {
		case spec.JSONPayload != nil:
			tmpl.body = []byte(*spec.JSONPayload)
			tmpl.header.Set("Content-Type", "application/json")
		case spec.GQLQuery != nil:
			tmpl.body = []byte(`{"query":"` + escapeJSON(*spec.GQLQuery) + `"}`)
			tmpl.header.Set("Content-Type", "application/json")
		case spec.Body != nil:
			tmpl.body = []byte(*spec.Body)
		default:
			return nil, burlerr.New(burlerr.InvalidConfig, "post request requires a body, json payload, or gql query")
		}
	}

	if spec.BearerToken != nil {
		tmpl.header.Set("Authorization", "Bearer "+*spec.BearerToken)
	}

	if len(spec.Headers) > 0 {
		for _, h := range spec.Headers {
			tmpl.header.Add(h.Name, h.Value)
		}
	}
	// else: a warning ("POST without configured headers") is the Run
	// Orchestrator's concern, not the builder's — see internal/runner.

	tmpl.header.Set("Connection", "keep-alive")

	if _, err := http.NewRequest(tmpl.method, tmpl.url, nil); err != nil {
		return nil, burlerr.Wrap(burlerr.InvalidConfig, "invalid request url or method", err)
	}

	return tmpl, nil
}

// Clone returns a fresh *http.Request ready to send, independent of any
// previously issued clone.
func (t *Template) Clone() *http.Request {
	var bodyReader io.Reader
	if t.body != nil {
		bodyReader = bytes.NewReader(t.body)
	}
	req, err := http.NewRequest(t.method, t.url, bodyReader)
	if err != nil {
		// URL/method were already validated at Build time against a live
		// http.Client-compatible request; a failure here would mean Build
		// itself should have rejected the spec.
		panic("httpreq: template produced an invalid request: " + err.Error())
	}
	req.Header = t.header.Clone()
	return req
}

// Client returns the HTTP client configured for this template.
func (t *Template) Client() *http.Client {
	return t.client
}

func escapeJSON(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return replacer.Replace(s)
}
