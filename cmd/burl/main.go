// Command burl drives an HTTP load test from a RequestSpec (TOML file or
// a bare URL) and writes a statistical report. CLI wiring follows the
// teacher's cobra.Command shape (cmd/monitor/call.go, status.go).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/burl-go/burl/internal/display"
	"github.com/burl-go/burl/internal/logging"
	"github.com/burl-go/burl/internal/reportfactory"
	"github.com/burl-go/burl/internal/runner"
	"github.com/burl-go/burl/internal/specconfig"
	"github.com/burl-go/burl/internal/stats"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burl",
		Short: "HTTP load generator and latency report tool",
	}
	cmd.AddCommand(fromTOMLCmd(), getCmd())
	return cmd
}

func fromTOMLCmd() *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "from-toml",
		Short: "Run a load test from a TOML request spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := specconfig.Load(fileName)
			if err != nil {
				return err
			}
			return runAndReport(spec)
		},
	}
	cmd.Flags().StringVarP(&fileName, "file-name", "f", "./specs.toml", "Path to the TOML request spec")
	return cmd
}

func getCmd() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Run a default GET load test against a URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return fmt.Errorf("--url is required")
			}
			return runAndReport(specconfig.FromURL(url))
		},
	}
	cmd.Flags().StringVarP(&url, "url", "u", "", "Target URL")
	return cmd
}

func runAndReport(spec specconfig.RequestSpec) error {
	logger := logging.New()
	ctx := context.Background()

	summary, err := runner.Run(ctx, spec, logger)
	if err != nil {
		return err
	}
	if summary == nil {
		return fmt.Errorf("run did not complete (build or warm-up failure, see logs)")
	}

	processor := stats.NewProcessor(summary.Collectors, spec.Scale)
	statsSummary := processor.Summarize(logger)
	if statsSummary == nil {
		return fmt.Errorf("run produced zero successful samples")
	}

	display.PrintSummary(os.Stdout, statsSummary)

	samplesByWorker := make(map[int][]reportfactory.PersistedSample, len(summary.Collectors))
	for _, c := range summary.Collectors {
		var samples []reportfactory.PersistedSample
		for _, o := range c.Outcomes {
			if !o.OK {
				continue
			}
			samples = append(samples, reportfactory.PersistedSample{
				MeasurementStart: o.StartOffset,
				MeasurementEnd:   o.EndOffset,
				Duration:         o.Duration,
				ContentLength:    o.ContentLength,
			})
		}
		samplesByWorker[c.WorkerIndex] = samples
	}

	if err := reportfactory.CreateReport(spec, statsSummary, samplesByWorker, summary.StartTime, summary.EndTime, logger); err != nil {
		return err
	}

	return nil
}
