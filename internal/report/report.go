// Package report folds per-file outcomes into a run report.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/csb-validator/internal/pipeline"
	"github.com/jonathan/csb-validator/internal/types"
)

// Entry is one file's section of the report
type Entry struct {
	Path    string
	Outcome types.FileOutcome
}

// Summary tallies outcomes across the run
type Summary struct {
	Files      int `json:"files"`
	Passed     int `json:"passed"`
	WithIssues int `json:"with_issues"`
	Failed     int `json:"failed"`
	Violations int `json:"violations"`
}

// Report is the combined result of a run. Entries are in input order.
type Report struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Entries     []Entry
	Summary     Summary
}

// Aggregate builds a report from pipeline results, keeping their order
func Aggregate(results []pipeline.Result) *Report {
	r := &Report{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Entries:     make([]Entry, 0, len(results)),
	}
	for _, res := range results {
		r.add(res.Path, res.Outcome)
	}
	return r
}

// Single builds a report for one file
func Single(path string, outcome types.FileOutcome) *Report {
	return Aggregate([]pipeline.Result{{Path: path, Outcome: outcome}})
}

func (r *Report) add(path string, outcome types.FileOutcome) {
	r.Entries = append(r.Entries, Entry{Path: path, Outcome: outcome})
	r.Summary.Files++
	switch outcome.Status {
	case types.AllPassed:
		r.Summary.Passed++
	case types.HasIssues:
		r.Summary.WithIssues++
		r.Summary.Violations += outcome.ViolationCount()
	case types.ProcessingFailed:
		r.Summary.Failed++
	}
}

// Failed reports whether any file did not pass
func (r *Report) Failed() bool {
	return r.Summary.WithIssues > 0 || r.Summary.Failed > 0
}
