package parsing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatures_FeatureCollection(t *testing.T) {
	content := []byte(`{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-70.5, 42.1]},
      "properties": {"depth": 12.3, "time": "2020-01-01T00:00:00Z"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [1, 2]},
      "properties": {"longitude": 5, "latitude": 6, "depth": 1}
    }
  ]
}`)

	features, err := ParseFeatures(content)
	require.NoError(t, err)
	require.Len(t, features, 2)

	first, ok := features[0].Properties.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, -70.5, first["longitude"])
	assert.Equal(t, 42.1, first["latitude"])
	assert.Equal(t, 12.3, first["depth"])
	assert.Equal(t, 4, features[0].Line)

	second, ok := features[1].Properties.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 5.0, second["longitude"], "explicit properties win over geometry")
	assert.Equal(t, 6.0, second["latitude"])
	assert.Equal(t, 9, features[1].Line)
}

func TestParseFeatures_BareArrayOfProperties(t *testing.T) {
	features, err := ParseFeatures([]byte(`[{"longitude":200,"latitude":45,"depth":10,"time":"2020-01-01T00:00:00Z"}]`))
	require.NoError(t, err)
	require.Len(t, features, 1)

	props, ok := features[0].Properties.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 200.0, props["longitude"])
	assert.Equal(t, 1, features[0].Line)
}

func TestParseFeatures_EmptyArray(t *testing.T) {
	features, err := ParseFeatures([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestParseFeatures_EmptyFeatureCollection(t *testing.T) {
	features, err := ParseFeatures([]byte(`{"type":"FeatureCollection","features":[]}`))
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestParseFeatures_ObjectWithoutFeatures(t *testing.T) {
	features, err := ParseFeatures([]byte(`{"type":"FeatureCollection"}`))
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestParseFeatures_SingleFeature(t *testing.T) {
	features, err := ParseFeatures([]byte(`
{"type":"Feature","properties":{"depth":3}}`))
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, 2, features[0].Line)
}

func TestParseFeatures_NonObjectElementsAreKept(t *testing.T) {
	features, err := ParseFeatures([]byte(`[42, {"type":"Feature","properties":"oops"}, {"type":"Feature"}]`))
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, 42.0, features[0].Properties)
	assert.Equal(t, "oops", features[1].Properties)
	assert.Nil(t, features[2].Properties)
}

func TestParseFeatures_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{name: "empty", content: "", message: "document is empty"},
		{name: "whitespace", content: "  \n\t", message: "document is empty"},
		{name: "not json", content: "not json", message: "invalid JSON"},
		{name: "truncated", content: `{"features": [`, message: "invalid JSON"},
		{name: "trailing value", content: `[] []`, message: "invalid JSON"},
		{name: "trailing garbage", content: `{"features": []} x`, message: "invalid JSON"},
		{name: "scalar", content: `42`, message: "expected a feature collection, got a number"},
		{name: "string", content: `"hello"`, message: "expected a feature collection, got a string"},
		{name: "null", content: `null`, message: "expected a feature collection, got null"},
		{name: "features not array", content: `{"features": {"a": 1}}`, message: `"features" must be an array, got an object`},
		{name: "features null", content: `{"features": null}`, message: `"features" must be an array, got null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, err := ParseFeatures([]byte(tt.content))
			require.Error(t, err)
			assert.Nil(t, features)

			var parseErr *Error
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.message, parseErr.Message)
			assert.Contains(t, err.Error(), "failed to parse document")
		})
	}
}

func TestParseFeatures_OverflowingNumberIsInfinite(t *testing.T) {
	features, err := ParseFeatures([]byte(`[{"longitude":1e400,"latitude":-1e400,"depth":12345678901234567890}]`))
	require.NoError(t, err)
	require.Len(t, features, 1)

	props, ok := features[0].Properties.(map[string]any)
	require.True(t, ok)
	assert.True(t, math.IsInf(props["longitude"].(float64), 1))
	assert.True(t, math.IsInf(props["latitude"].(float64), -1))
	assert.Equal(t, 12345678901234567890.0, props["depth"])
}

func TestParseFeatures_NestedNumbersAreFloats(t *testing.T) {
	features, err := ParseFeatures([]byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[3,4]},"properties":{"depth":7}}`))
	require.NoError(t, err)
	require.Len(t, features, 1)

	props, ok := features[0].Properties.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3.0, props["longitude"])
	assert.Equal(t, 4.0, props["latitude"])
	assert.Equal(t, 7.0, props["depth"])
}

func TestError_Unwrap(t *testing.T) {
	_, err := ParseFeatures([]byte("{bad"))
	require.Error(t, err)

	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, parseErr.Unwrap(), "decoder diagnostic is kept")
	assert.Contains(t, err.Error(), parseErr.Cause.Error())
}
