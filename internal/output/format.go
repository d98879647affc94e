package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format specifies how structured data is printed.
type Format string

const (
	// FormatYAML prints YAML.
	FormatYAML Format = "yaml"

	// FormatJSON prints indented JSON.
	FormatJSON Format = "json"

	// FormatTable prints a lipgloss table.
	FormatTable Format = "table"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the format is known.
func (f Format) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name. The second result is false for
// unknown names.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(s))
	if f == "yml" {
		f = FormatYAML
	}
	if !f.Valid() {
		return "", false
	}
	return f, true
}

// Marshal renders v as YAML or JSON.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("format %q cannot marshal structured data", f)
	}
}
