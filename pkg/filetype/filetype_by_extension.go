package filetype

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"

	"github.com/cloudposse/gridtable/pkg/perf"
)

// Supported table source extensions.
const (
	ExtCSV  = ".csv"
	ExtTSV  = ".tsv"
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

var knownExts = []string{ExtCSV, ExtTSV, ExtJSON, ExtYAML, ExtYML}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseByExtension decodes JSON or YAML data based on the provided extension.
// Any other extension returns the data as a raw string.
func ParseByExtension(data []byte, ext string) (any, error) {
	defer perf.Track(nil, "filetype.ParseByExtension")()

	switch ext {
	case ExtJSON:
		return parseJSON(data)
	case ExtYAML, ExtYML:
		return parseYAML(data)
	default:
		return string(data), nil
	}
}

func parseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "parse JSON")
	}
	return v, nil
}

func parseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "parse YAML")
	}
	return v, nil
}

// MarshalByExtension encodes v as indented JSON or as YAML based on ext.
func MarshalByExtension(v any, ext string) ([]byte, error) {
	defer perf.Track(nil, "filetype.MarshalByExtension")()

	switch ext {
	case ExtJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encode JSON")
		}
		return append(data, '\n'), nil
	case ExtYAML, ExtYML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "encode YAML")
		}
		return data, nil
	default:
		return nil, errors.Newf("cannot encode to %q", ext)
	}
}

// ExtractFilenameFromPath extracts the actual filename from a path or URL.
// It removes query strings and fragments from URLs.
// Examples:
//   - "https://example.com/books.json?v=1#section" → "books.json"
//   - "/path/to/books.yaml" → "books.yaml"
//   - "books.csv" → "books.csv"
func ExtractFilenameFromPath(path string) string {
	if idx := strings.Index(path, "#"); idx != -1 {
		path = path[:idx]
	}

	if idx := strings.Index(path, "?"); idx != -1 {
		path = path[:idx]
	}

	return filepath.Base(path)
}

// GetFileExtension returns the lowercase file extension including the dot.
// Examples:
//   - "books.csv" → ".csv"
//   - "BOOKS.JSON" → ".json"
//   - "books.backup.yaml" → ".yaml"
//   - "books" → ""
//   - ".hidden" → ""
func GetFileExtension(filename string) string {
	if filename == "" || filename == "." {
		return ""
	}

	ext := filepath.Ext(filename)

	// A bare extension such as ".json" is only an extension when it is a known one.
	if ext == filename {
		lowerExt := strings.ToLower(ext)
		for _, known := range knownExts {
			if lowerExt == known {
				return lowerExt
			}
		}
		return ""
	}

	if ext == "." {
		return ""
	}

	return strings.ToLower(ext)
}

// IsKnownExtension reports whether ext names a supported table source.
func IsKnownExtension(ext string) bool {
	for _, known := range knownExts {
		if ext == known {
			return true
		}
	}
	return false
}
