package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_Accepted(t *testing.T) {
	utc := func(y int, mo time.Month, d, h, mi, s, ns int) time.Time {
		return time.Date(y, mo, d, h, mi, s, ns, time.UTC)
	}

	tests := []struct {
		input    string
		expected time.Time
	}{
		{input: "2020-01-01T00:00:00Z", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "2020-01-01T00:00:00", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "2020-01-01 06:30:00", expected: utc(2020, 1, 1, 6, 30, 0, 0)},
		{input: "2020-01-01T00:00:00.250Z", expected: utc(2020, 1, 1, 0, 0, 0, 250_000_000)},
		{input: "2020-01-01T00:00:00.123456", expected: utc(2020, 1, 1, 0, 0, 0, 123_456_000)},
		{input: "2020-01-01T02:00:00+02:00", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "2020-01-01T02:00:00+0200", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "2020-01-01T02:00:00+02", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "2020-01-01T00:00:00-05:00", expected: utc(2020, 1, 1, 5, 0, 0, 0)},
		{input: "2020-01-01T10:15", expected: utc(2020, 1, 1, 10, 15, 0, 0)},
		{input: "2020-01-01T10:15+0200", expected: utc(2020, 1, 1, 8, 15, 0, 0)},
		{input: "2020-01-01T10:15+02", expected: utc(2020, 1, 1, 8, 15, 0, 0)},
		{input: "2020-01-01T00", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "2020-01-01T00Z", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "2020-01-01T06+01:00", expected: utc(2020, 1, 1, 5, 0, 0, 0)},
		{input: "2020-01-01T00:00:00,5", expected: utc(2020, 1, 1, 0, 0, 0, 500_000_000)},
		{input: "2020-W01-1", expected: utc(2019, 12, 30, 0, 0, 0, 0)},
		{input: "2020W017", expected: utc(2020, 1, 5, 0, 0, 0, 0)},
		{input: "2020-W53", expected: utc(2020, 12, 28, 0, 0, 0, 0)},
		{input: "2021-W02-3T12:00:00Z", expected: utc(2021, 1, 13, 12, 0, 0, 0)},
		{input: "2020-01-01", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "20200101T000000Z", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "20200101T000000", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
		{input: "20200101", expected: utc(2020, 1, 1, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ts), "got %s", ts)
		})
	}
}

func TestParseTimestamp_Rejected(t *testing.T) {
	for _, input := range []string{
		"",
		"not a date",
		"01/02/2020",
		"2020-02-30",
		"2020-01-01T25:00:00Z",
		"2020-01-01T00:00:00 UTC",
		"2020-01-01T00:00:00ZZ",
		"2020-01-01T",
		"2021-W53-1",
		"2020-W00-1",
		"2020-W01-8",
		"2020-W1",
	} {
		_, err := ParseTimestamp(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseTimestamp_NaiveIsUTC(t *testing.T) {
	ts, err := ParseTimestamp("2021-07-04T12:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}
