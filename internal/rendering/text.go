package rendering

import (
	"io"
	"text/template"

	"github.com/jonathan/csb-validator/internal/report"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

const textTemplate = `
{{- range .Entries}}
{{- if eq .Outcome.Status.String "passed"}}{{pass}} {{.Path}}{{"\n"}}
{{- else if eq .Outcome.Status.String "has_issues"}}{{fail}} {{.Path}}: {{.Outcome.ViolationCount}} violation(s) in {{len .Outcome.Issues}} feature(s){{"\n"}}
{{- range .Outcome.Issues}}  Feature #{{.Index}}{{if .Line}} (line {{.Line}}){{end}}:{{"\n"}}
{{- range .Violations}}    - {{.Message}}{{"\n"}}
{{- end}}
{{- end}}
{{- else}}{{fail}} {{.Path}}: failed to process: {{.Outcome.Err}}{{"\n"}}
{{- end}}
{{- end}}
{{- with .Summary}}{{"\n"}}Files processed: {{.Files}}, passed: {{.Passed}}, with issues: {{.WithIssues}}, failed to process: {{.Failed}}, violations: {{.Violations}}{{"\n"}}
{{- end}}`

// TextOptions controls plain-text rendering
type TextOptions struct {
	// Color wraps the PASS/FAIL markers in ANSI colors
	Color bool
}

// Text writes the human-readable report: one section per file in input order
// followed by a summary line.
func Text(w io.Writer, r *report.Report, opts TextOptions) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"pass": func() string { return marker("✅ [PASS]", ansiGreen, opts.Color) },
		"fail": func() string { return marker("❌ [FAIL]", ansiRed, opts.Color) },
	}).Parse(textTemplate)
	if err != nil {
		return &TemplateError{Message: "failed to parse report template", Cause: err}
	}

	if err := tmpl.Execute(w, r); err != nil {
		return &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return nil
}

func marker(text, color string, enabled bool) string {
	if !enabled {
		return text
	}
	return color + text + ansiReset
}
