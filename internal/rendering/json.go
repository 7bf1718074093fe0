package rendering

import (
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonathan/csb-validator/internal/report"
	"github.com/jonathan/csb-validator/internal/types"
)

// Document is the machine-readable form of a report
type Document struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Summary     report.Summary `json:"summary"`
	Files       []FileDocument `json:"files"`
}

// FileDocument is one file's section of a Document
type FileDocument struct {
	File     string                `json:"file"`
	Status   types.Status          `json:"status"`
	Error    string                `json:"error,omitempty"`
	Features []types.FeatureResult `json:"features"`
}

// NewDocument converts a report into its JSON document form
func NewDocument(r *report.Report) Document {
	doc := Document{
		RunID:       r.RunID.String(),
		GeneratedAt: r.GeneratedAt,
		Summary:     r.Summary,
		Files:       make([]FileDocument, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		doc.Files = append(doc.Files, NewFileDocument(e.Path, e.Outcome))
	}
	return doc
}

// NewFileDocument converts one file outcome
func NewFileDocument(path string, outcome types.FileOutcome) FileDocument {
	features := outcome.Issues
	if features == nil {
		features = []types.FeatureResult{}
	}
	return FileDocument{
		File:     path,
		Status:   outcome.Status,
		Error:    outcome.Err,
		Features: features,
	}
}

// MarshalJSON renders the report as indented JSON
func MarshalJSON(r *report.Report) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(r), "", "  ")
	if err != nil {
		return nil, &RenderError{Message: "failed to marshal report to JSON", Cause: err}
	}
	return data, nil
}

// JSON writes the report as indented JSON followed by a newline
func JSON(w io.Writer, r *report.Report) error {
	data, err := MarshalJSON(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return &RenderError{Message: "failed to write report", Cause: err}
	}
	return nil
}
