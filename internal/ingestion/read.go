package ingestion

import "os"

// ReadFile reads a whole input file
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Cause: err}
	}
	return content, nil
}
