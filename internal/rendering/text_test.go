package rendering

import (
	"bytes"
	"testing"

	"github.com/jonathan/csb-validator/internal/pipeline"
	"github.com/jonathan/csb-validator/internal/report"
	"github.com/jonathan/csb-validator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *report.Report {
	return report.Aggregate([]pipeline.Result{
		{Path: "good.geojson", Outcome: types.Passed()},
		{Path: "bad.geojson", Outcome: types.WithIssues([]types.FeatureResult{
			{Index: 2, Line: 14, Violations: []types.Violation{
				{Field: "longitude", Kind: types.OutOfRange, Message: "Longitude should be ≤ 180: 200"},
				{Field: "time", Kind: types.NotInPast, Message: "Timestamp should be in the past: 2099-01-01"},
			}},
			{Index: 5, Violations: []types.Violation{
				{Field: "depth", Kind: types.MissingField, Message: "Depth cannot be blank"},
			}},
		})},
		{Path: "broken.geojson", Outcome: types.Failed("failed to parse document: document is empty")},
	})
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleReport(), TextOptions{}))

	expected := "✅ [PASS] good.geojson\n" +
		"❌ [FAIL] bad.geojson: 3 violation(s) in 2 feature(s)\n" +
		"  Feature #2 (line 14):\n" +
		"    - Longitude should be ≤ 180: 200\n" +
		"    - Timestamp should be in the past: 2099-01-01\n" +
		"  Feature #5:\n" +
		"    - Depth cannot be blank\n" +
		"❌ [FAIL] broken.geojson: failed to process: failed to parse document: document is empty\n" +
		"\n" +
		"Files processed: 3, passed: 1, with issues: 1, failed to process: 1, violations: 3\n"
	assert.Equal(t, expected, buf.String())
}

func TestText_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleReport(), TextOptions{Color: true}))

	out := buf.String()
	assert.Contains(t, out, ansiGreen+"✅ [PASS]"+ansiReset+" good.geojson")
	assert.Contains(t, out, ansiRed+"❌ [FAIL]"+ansiReset+" bad.geojson")
}

func TestText_NoFiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, report.Aggregate(nil), TextOptions{}))
	assert.Equal(t, "\nFiles processed: 0, passed: 0, with issues: 0, failed to process: 0, violations: 0\n", buf.String())
}
