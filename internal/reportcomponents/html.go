// Package reportcomponents builds the six self-contained HTML report
// artifacts (§4.8). Each component is a small value type that
// accumulates Plotly trace data via add_* methods and writes itself out
// with a terminal write/Write call, per spec.md §9's "mutable builder
// pattern" design note. No charting/plotting library exists anywhere in
// the retrieval pack, so traces are hand-built JSON rendered into a
// minimal HTML document that loads Plotly from a CDN — the Go-idiomatic
// reading of spec.md's "opaque renderer" contract.
package reportcomponents

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const plotlyCDN = `<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>`

// plotlyPage wraps one or more named traces/layouts into a self-contained
// HTML document with a single Plotly.newPlot call.
func plotlyPage(title string, traces []map[string]any, layout map[string]any) (string, error) {
	traceJSON, err := json.Marshal(traces)
	if err != nil {
		return "", fmt.Errorf("reportcomponents: marshal traces: %w", err)
	}
	layoutJSON, err := json.Marshal(layout)
	if err != nil {
		return "", fmt.Errorf("reportcomponents: marshal layout: %w", err)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s
</head>
<body>
<div id="plot"></div>
<script>
Plotly.newPlot("plot", %s, %s);
</script>
</body>
</html>
`, title, plotlyCDN, traceJSON, layoutJSON), nil
}

// writeFile writes content to dir/name, creating no parent directories
// (the Report Factory has already ensured dir exists).
func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}

func rgbColor(i, n int) string {
	if n <= 0 {
		n = 1
	}
	delta := 205 / n
	v := 50 + i*delta
	return fmt.Sprintf("rgb(%d,50,%d)", v, v)
}
