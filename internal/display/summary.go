// Package display renders a StatsSummary/TestOutcome pair to the
// terminal, adapted from the teacher's internal/output/terminal.go
// (rodaine/table usage) and internal/format/colors.go (fatih/color
// semantic coloring closures). Supplements the distilled spec with the
// Rust original's impl Display for StatsSummary (SPEC_FULL.md §7).
package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/burl-go/burl/internal/stats"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// PrintSummary writes the run summary, percentile table, and (when more
// than one worker ran) per-thread breakdown to w.
func PrintSummary(w io.Writer, s *stats.StatsSummary) {
	if s == nil {
		fmt.Fprintln(w, red("no successful samples; nothing to summarize"))
		return
	}

	fmt.Fprintln(w, bold("Run summary"))
	fmt.Fprintf(w, "  scale:        %s\n", s.Scale)
	fmt.Fprintf(w, "  ok / failed:  %d / %d\n", s.OKCount, s.ErrorCount)
	fmt.Fprintf(w, "  mean:         %g\n", s.Mean)
	fmt.Fprintf(w, "  std:          %s\n", optionalStr(s.Std))
	fmt.Fprintf(w, "  rps:          %s\n", optionalStr(s.MeanRPS))
	fmt.Fprintf(w, "  min / max:    %g / %g\n", s.Min, s.Max)
	fmt.Fprintf(w, "  q1/median/q3: %g / %g / %g\n", s.Q1, s.Median, s.Q3)

	if len(s.ErrorsByStatus) > 0 {
		fmt.Fprintln(w, dim("errors by status:"))
		for code, count := range s.ErrorsByStatus {
			fmt.Fprintf(w, "  %d: %d\n", code, count)
		}
	}

	if s.OKCount > 0 {
		printPercentileTable(w, s)
	}

	if len(s.StatsByThread) > 1 {
		printThreadTable(w, s)
	}
}

func printPercentileTable(w io.Writer, s *stats.StatsSummary) {
	tbl := table.New("Percentile", "Value").WithWriter(w)
	for _, lv := range s.DisplayPercentiles() {
		tbl.AddRow(fmt.Sprintf("p%g", lv.LevelPct), fmt.Sprintf("%g", lv.Value))
	}
	tbl.Print()
}

func printThreadTable(w io.Writer, s *stats.StatsSummary) {
	tbl := table.New("Worker", "OK", "Errors", "Mean", "Min", "Max").WithWriter(w)
	for i := 0; i < len(s.StatsByThread); i++ {
		ts, ok := s.StatsByThread[i]
		if !ok {
			continue
		}
		tbl.AddRow(i, ts.OKCount, ts.ErrorCount, fmt.Sprintf("%g", ts.Mean), fmt.Sprintf("%g", ts.Min), fmt.Sprintf("%g", ts.Max))
	}
	tbl.Print()
}

// PrintOutcome renders a hypothesis-test Outcome, colored by kind.
func PrintOutcome(w io.Writer, label string, outcome *stats.Outcome) {
	if outcome == nil {
		fmt.Fprintf(w, "%s: %s\n", label, dim("could not be determined"))
		return
	}
	switch outcome.Kind {
	case stats.Improved:
		fmt.Fprintf(w, "%s: %s (p=%g)\n", label, green("Improved"), outcome.PValue)
	case stats.Regressed:
		fmt.Fprintf(w, "%s: %s (p=%g)\n", label, red("Regressed"), outcome.PValue)
	default:
		fmt.Fprintf(w, "%s: Inconclusive\n", label)
	}
}

func optionalStr(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%g", *v)
}

// DisableColors turns off ANSI color output, mirroring the teacher's
// output.DisableColors for the --format json path.
func DisableColors() {
	color.NoColor = true
}
