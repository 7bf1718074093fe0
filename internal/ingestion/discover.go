// Package ingestion resolves command-line arguments into input files and reads them.
package ingestion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions lists the file extensions picked up when an argument is a directory
var Extensions = []string{".geojson", ".json"}

// Input is one file to validate. Err is set when the argument it came from
// could not be resolved; the input is then reported as a processing failure.
type Input struct {
	Path string
	Err  error
}

// Expand resolves arguments in order. A directory expands to the GeoJSON files
// directly inside it, sorted by name. A pattern the shell left unexpanded is
// globbed here. Any other argument is passed through as a path, so a missing
// file surfaces later as a read failure.
func Expand(args []string) []Input {
	inputs := make([]Input, 0, len(args))
	for _, arg := range args {
		inputs = append(inputs, expandArg(arg)...)
	}
	return inputs
}

func expandArg(arg string) []Input {
	info, err := os.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		return expandDir(arg)
	case err == nil:
		return []Input{{Path: arg}}
	case !hasMeta(arg):
		return []Input{{Path: arg}}
	}

	matches, err := filepath.Glob(arg)
	if err != nil {
		return []Input{{Path: arg, Err: &PatternError{Pattern: arg, Message: "invalid pattern", Cause: err}}}
	}
	if len(matches) == 0 {
		return []Input{{Path: arg, Err: &PatternError{Pattern: arg, Message: "no files match"}}}
	}
	inputs := make([]Input, 0, len(matches))
	for _, m := range matches {
		if fi, statErr := os.Stat(m); statErr == nil && fi.IsDir() {
			continue
		}
		inputs = append(inputs, Input{Path: m})
	}
	if len(inputs) == 0 {
		return []Input{{Path: arg, Err: &PatternError{Pattern: arg, Message: "no files match"}}}
	}
	return inputs
}

func expandDir(dir string) []Input {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []Input{{Path: dir, Err: &FileReadError{Path: dir, Cause: err}}}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !HasGeoJSONExtension(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return []Input{{Path: dir, Err: &PatternError{Pattern: dir, Message: "no GeoJSON files in directory"}}}
	}
	sort.Strings(paths)

	inputs := make([]Input, len(paths))
	for i, p := range paths {
		inputs[i] = Input{Path: p}
	}
	return inputs
}

// HasGeoJSONExtension reports whether name ends in one of Extensions
func HasGeoJSONExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[")
}
