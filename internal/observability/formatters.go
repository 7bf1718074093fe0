// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/csb-validator/internal/report"
	"github.com/jonathan/csb-validator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most limit runes, marking the cut with "..."
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintRunSummary outputs the run id and outcome tallies.
func (p *Printer) PrintRunSummary(r *report.Report) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:          %s\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Generated:    %s\n", r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Files:        %d\n", r.Summary.Files))
	sb.WriteString(fmt.Sprintf("Passed:       %d\n", r.Summary.Passed))
	sb.WriteString(fmt.Sprintf("With issues:  %d\n", r.Summary.WithIssues))
	sb.WriteString(fmt.Sprintf("Failed:       %d\n", r.Summary.Failed))
	sb.WriteString(fmt.Sprintf("Violations:   %d", r.Summary.Violations))

	p.printBox("VALIDATION RUN", sb.String())
}

type fieldCount struct {
	key   string
	count int
}

// PrintViolationBreakdown outputs violation counts grouped by field and kind,
// most frequent first.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintViolationBreakdown(r *report.Report) {
	if r == nil {
		return
	}
	if r.Summary.Violations == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	counts := map[string]int{}
	for _, e := range r.Entries {
		for _, f := range e.Outcome.Issues {
			for _, v := range f.Violations {
				counts[fmt.Sprintf("%s (%s)", v.Field, v.Kind)]++
			}
		}
	}
	sorted := make([]fieldCount, 0, len(counts))
	for k, c := range counts {
		sorted = append(sorted, fieldCount{key: k, count: c})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].key < sorted[j].key
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", r.Summary.Violations))
	for i, fc := range sorted {
		sb.WriteString(fmt.Sprintf("⚠ %-36s %6d", fc.key, fc.count))
		if i < len(sorted)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VIOLATIONS BY FIELD", sb.String())
}

// PrintFailures outputs the files that could not be processed.
func (p *Printer) PrintFailures(r *report.Report) {
	if r == nil || r.Summary.Failed == 0 {
		return
	}

	failed := make([]report.Entry, 0, r.Summary.Failed)
	for _, e := range r.Entries {
		if e.Outcome.Status == types.ProcessingFailed {
			failed = append(failed, e)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d file(s) could not be processed:\n\n", len(failed)))

	count := min(len(failed), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", failed[i].Path))
		sb.WriteString(fmt.Sprintf("  %s", failed[i].Outcome.Err))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(failed) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more files", len(failed)-maxItemsToShow))
	}

	p.printBox("PROCESSING FAILURES", sb.String())
}
