package reportcomponents

import _ "embed"

// BaseReportHTML is the constant top-level report.html template, written
// once by the Report Factory's setupReportStructure step when absent.
//
//go:embed templates/report_template.html
var BaseReportHTML string
