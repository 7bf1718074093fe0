package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/csb-validator/internal/config"
	"github.com/jonathan/csb-validator/internal/ingestion"
	"github.com/jonathan/csb-validator/internal/logging"
	"github.com/jonathan/csb-validator/internal/observability"
	"github.com/jonathan/csb-validator/internal/pipeline"
	"github.com/jonathan/csb-validator/internal/rendering"
	"github.com/jonathan/csb-validator/internal/report"
	"github.com/jonathan/csb-validator/internal/schemas"
	"github.com/jonathan/csb-validator/internal/validation"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Validate CSB GeoJSON files",
	Long: "Validates each file, directory or glob pattern given and prints a report. " +
		"Exits non-zero if any file has violations or could not be processed.",
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var (
	validateFormat  string
	validateJSON    bool
	validateWorkers int
	validateNoColor bool
	validateOutput  string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Report format: text or json")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Shorthand for --format json")
	validateCmd.Flags().IntVarP(&validateWorkers, "workers", "w", 0, "Number of files validated concurrently (default from config)")
	validateCmd.Flags().BoolVar(&validateNoColor, "no-color", false, "Disable colored output")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Also write the JSON report to this file")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print run summary boxes on stderr")

	rootCmd.AddCommand(validateCmd)
}

// validateOptions is the resolved configuration of one validate run
type validateOptions struct {
	Format  string
	Workers int
	Color   bool
	Output  string
	Verbose bool
	// Clock overrides the validation instant
	Clock func() time.Time
}

// resolveValidateOptions layers explicitly set flags over the loaded config
func resolveValidateOptions(cmd *cobra.Command, cfg *config.Config, stdout io.Writer) (validateOptions, error) {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}

	opts := validateOptions{
		Format:  cfg.Validation.Format,
		Workers: cfg.Validation.Workers,
		Output:  validateOutput,
		Verbose: validateVerbose,
	}
	if cmd.Flags().Changed("format") {
		opts.Format = validateFormat
	}
	if validateJSON {
		opts.Format = "json"
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = validateWorkers
	}
	if opts.Format != "text" && opts.Format != "json" {
		return opts, fmt.Errorf("unknown format %q: must be text or json", opts.Format)
	}
	if opts.Workers < 1 {
		return opts, fmt.Errorf("workers must be at least 1, got %d", opts.Workers)
	}

	colorMode := cfg.Validation.Color
	if validateNoColor {
		colorMode = "never"
	}
	opts.Color = useColor(colorMode, stdout)
	return opts, nil
}

// useColor decides whether to emit ANSI colors. auto means only on a terminal
// and only when NO_COLOR is unset.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runValidate(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	opts, err := resolveValidateOptions(cmd, appConfig, stdout)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := executeValidate(ctx, args, opts, stdout, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// Return error to indicate failures were found (exit code 1)
	if r.Failed() {
		return fmt.Errorf("validation failed: %d of %d file(s) with issues, %d failed to process",
			r.Summary.WithIssues, r.Summary.Files, r.Summary.Failed)
	}
	return nil
}

// executeValidate validates every input and writes the report. The returned
// error is for output failures only; file-level failures live in the report.
func executeValidate(ctx context.Context, args []string, opts validateOptions, stdout, stderr io.Writer) (*report.Report, error) {
	validator := validation.New()
	if opts.Clock != nil {
		validator = &validation.Validator{Clock: opts.Clock}
	}

	inputs := ingestion.Expand(args)
	logging.Info().Int("files", len(inputs)).Int("workers", opts.Workers).Msg("validation started")

	start := time.Now()
	results := pipeline.Run(ctx, inputs, pipeline.Options{
		Workers:   opts.Workers,
		Validator: validator,
	})
	r := report.Aggregate(results)
	logging.Info().
		Str("run_id", r.RunID.String()).
		Int("passed", r.Summary.Passed).
		Int("with_issues", r.Summary.WithIssues).
		Int("failed", r.Summary.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("validation finished")

	var jsonBytes []byte
	if opts.Format == "json" || opts.Output != "" {
		data, err := rendering.MarshalJSON(r)
		if err != nil {
			return nil, err
		}
		checkReportSchema(data, stderr)
		jsonBytes = append(data, '\n')
	}

	if opts.Format == "json" {
		if _, err := stdout.Write(jsonBytes); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}
	} else if err := rendering.Text(stdout, r, rendering.TextOptions{Color: opts.Color}); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	if opts.Output != "" {
		if err := writeReportFile(opts.Output, jsonBytes); err != nil {
			return nil, err
		}
	}

	if opts.Verbose {
		printer := observability.NewPrinter(stderr)
		printer.PrintRunSummary(r)
		printer.PrintViolationBreakdown(r)
		printer.PrintFailures(r)
	}

	return r, nil
}

func writeReportFile(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to output file: %w", err)
	}
	return nil
}

// checkReportSchema validates the JSON report against the embedded schema (non-fatal)
func checkReportSchema(data []byte, stderr io.Writer) {
	err := schemas.ValidateReport(data)
	if err == nil {
		return
	}
	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(stderr, "Warning: Generated report does not validate against schema: %v\n", err)
	} else if errors.As(err, &schemaLoadErr) {
		_, _ = fmt.Fprintf(stderr, "Warning: Could not validate report against schema (schema loading failed): %v\n", err)
	} else {
		_, _ = fmt.Fprintf(stderr, "Warning: Could not validate report against schema: %v\n", err)
	}
}
