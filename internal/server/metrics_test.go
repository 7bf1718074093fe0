package server

import (
	"testing"
	"time"

	"github.com/jonathan/csb-validator/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Cannot use t.Parallel() - shared global metrics

func TestRecordOutcome(t *testing.T) {
	passedBefore := testutil.ToFloat64(filesValidatedTotal.WithLabelValues("passed"))
	issuesBefore := testutil.ToFloat64(filesValidatedTotal.WithLabelValues("has_issues"))
	depthBefore := testutil.ToFloat64(violationsTotal.WithLabelValues("depth", "missing_field"))

	RecordOutcome(types.Passed())
	RecordOutcome(types.WithIssues([]types.FeatureResult{
		{Index: 1, Violations: []types.Violation{{Field: "depth", Kind: types.MissingField, Message: "Depth cannot be blank"}}},
		{Index: 2, Violations: []types.Violation{{Field: "depth", Kind: types.MissingField, Message: "Depth cannot be blank"}}},
	}))

	assert.Equal(t, passedBefore+1, testutil.ToFloat64(filesValidatedTotal.WithLabelValues("passed")))
	assert.Equal(t, issuesBefore+1, testutil.ToFloat64(filesValidatedTotal.WithLabelValues("has_issues")))
	assert.Equal(t, depthBefore+2, testutil.ToFloat64(violationsTotal.WithLabelValues("depth", "missing_field")))
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(rateLimitedTotal)
	RecordRateLimited()
	assert.Equal(t, before+1, testutil.ToFloat64(rateLimitedTotal))
}

func TestRecordRequest(t *testing.T) {
	before := testutil.CollectAndCount(requestDuration)
	RecordRequest("GET", "/record-request-test", 200, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.CollectAndCount(requestDuration))
}
