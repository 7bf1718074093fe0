// Package parsing loads GeoJSON-like documents into an ordered list of features.
package parsing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// Feature is one element of a document's feature collection
type Feature struct {
	// Properties is the decoded property mapping, or whatever value stood in its place
	Properties any
	// Line is the 1-based source line on which the feature starts, 0 if unknown
	Line int
}

// ParseFeatures decodes content and extracts its features in document order.
//
// Accepted containers are a GeoJSON FeatureCollection, a single Feature, or a
// bare array whose elements are Features or property mappings. An object with
// no "features" member yields zero features. Anything that cannot be decoded,
// or whose "features" member is not an array, returns an *Error.
func ParseFeatures(content []byte) ([]Feature, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &Error{Message: "document is empty"}
	}

	doc, err := decode(content)
	if err != nil {
		return nil, &Error{Message: "invalid JSON", Cause: err}
	}

	var elements []any
	switch d := doc.(type) {
	case []any:
		elements = d
	case map[string]any:
		raw, hasFeatures := d["features"]
		switch {
		case hasFeatures:
			arr, ok := raw.([]any)
			if !ok {
				return nil, &Error{Message: fmt.Sprintf("\"features\" must be an array, got %s", kindOf(raw))}
			}
			elements = arr
		case d["type"] == "Feature":
			elements = []any{d}
		}
	default:
		return nil, &Error{Message: fmt.Sprintf("expected a feature collection, got %s", kindOf(doc))}
	}

	lines := FeatureLines(content)
	features := make([]Feature, 0, len(elements))
	for i, el := range elements {
		f := Feature{Properties: propertiesOf(el)}
		if i < len(lines) {
			f.Line = lines[i]
		}
		features = append(features, f)
	}
	return features, nil
}

// decode reads exactly one JSON value from content. Numbers are decoded as
// float64; a literal beyond the float64 range becomes ±Inf so that the field
// rules report it instead of the whole document failing.
func decode(content []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return resolveNumbers(doc), nil
}

func resolveNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		// ParseFloat returns ±Inf alongside ErrRange on overflow
		f, _ := strconv.ParseFloat(string(t), 64)
		return f
	case map[string]any:
		for k, el := range t {
			t[k] = resolveNumbers(el)
		}
		return t
	case []any:
		for i, el := range t {
			t[i] = resolveNumbers(el)
		}
		return t
	default:
		return v
	}
}

// propertiesOf returns the property mapping of one collection element.
// Elements that look like GeoJSON Features contribute their "properties" member,
// with longitude and latitude taken from a Point's coordinates when the
// properties do not carry them. Any other element is its own property mapping.
func propertiesOf(el any) any {
	obj, ok := el.(map[string]any)
	if !ok {
		return el
	}
	_, hasProps := obj["properties"]
	if !hasProps && obj["type"] != "Feature" {
		return obj
	}

	props := obj["properties"]
	lon, lat, ok := coordinates(obj["geometry"])
	if !ok {
		return props
	}

	var merged map[string]any
	switch p := props.(type) {
	case nil:
		merged = make(map[string]any, 2)
	case map[string]any:
		merged = make(map[string]any, len(p)+2)
		for k, v := range p {
			merged[k] = v
		}
	default:
		return props
	}
	if _, ok := merged["longitude"]; !ok {
		merged["longitude"] = lon
	}
	if _, ok := merged["latitude"]; !ok {
		merged["latitude"] = lat
	}
	return merged
}

// coordinates extracts [lon, lat] from a geometry object. The values are
// returned as decoded so that the field rules judge their shape.
func coordinates(geometry any) (lon, lat any, ok bool) {
	g, isObj := geometry.(map[string]any)
	if !isObj {
		return nil, nil, false
	}
	coords, isArr := g["coordinates"].([]any)
	if !isArr || len(coords) < 2 {
		return nil, nil, false
	}
	return coords[0], coords[1], true
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
