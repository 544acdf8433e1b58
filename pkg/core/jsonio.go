package core

import (
	"encoding/json"
	"io"
)

// MarshalFiles pretty-prints a result list as a JSON array.
func MarshalFiles(w io.Writer, files []string) error {
	if files == nil {
		files = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(files)
}

// UnmarshalFiles decodes a JSON array written by MarshalFiles.
func UnmarshalFiles(r io.Reader) ([]string, error) {
	var files []string
	if err := json.NewDecoder(r).Decode(&files); err != nil {
		return nil, err
	}
	return files, nil
}
