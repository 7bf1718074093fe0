package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureLines_TopLevelArray(t *testing.T) {
	content := []byte(`[
  {"depth": 1},
  {"depth": 2,
   "nested": [1, 2, {"x": "]"}]},

  {"depth": 3}
]`)
	assert.Equal(t, []int{2, 3, 6}, FeatureLines(content))
}

func TestFeatureLines_FeaturesMember(t *testing.T) {
	content := []byte(`{
  "name": "features",
  "bbox": [0, 0, 1, 1],
  "features": [
    {"type": "Feature", "properties": {"note": "a \"quoted\" ] brace {"}},
    {"type": "Feature",
     "properties": {}}
  ],
  "other": [{"ignored": true}]
}`)
	assert.Equal(t, []int{5, 6}, FeatureLines(content))
}

func TestFeatureLines_NestedFeaturesKeyIgnored(t *testing.T) {
	content := []byte(`{"meta": {"features": [1, 2]}, "features": [
{"a": 1}]}`)
	assert.Equal(t, []int{2}, FeatureLines(content))
}

func TestFeatureLines_Empty(t *testing.T) {
	assert.Empty(t, FeatureLines([]byte(`[]`)))
	assert.Empty(t, FeatureLines([]byte(`{"features": []}`)))
}
