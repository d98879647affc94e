// Package answers assembles the option answers of one generation run from
// template defaults, user config, answers files, and --set flags.
package answers

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"

	oerrors "github.com/skelkit/skel/internal/errors"
)

// Answers maps option names to scalar values (string, bool, or number).
type Answers map[string]any

// Keys returns the option names in sorted order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the answer for key formatted as text, or "" when unset.
func (a Answers) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Clone returns a shallow copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// FromStrings converts a string map, e.g. config defaults, into Answers.
func FromStrings(m map[string]string) Answers {
	out := make(Answers, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge layers answers left to right: later layers win.
func Merge(layers ...Answers) Answers {
	out := Answers{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// LoadFile reads a YAML or JSON answers file holding a flat mapping.
func LoadFile(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oerrors.NewNotFoundError("answers file does not exist", path, "")
		}
		return nil, fmt.Errorf("reading answers file %s: %w", path, err)
	}

	a, err := Parse(data)
	if err != nil {
		return nil, oerrors.NewConfigError(err.Error(), path, "", "Answers files are flat mappings of option name to value", err)
	}
	return a, nil
}

// Parse decodes a YAML or JSON answers document. Nested values are rejected.
func Parse(data []byte) (Answers, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, oerrors.Newf(oerrors.ErrConfig, "parsing answers: %w", err)
	}

	a := make(Answers, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string, bool:
			a[k] = v
		case float64:
			// JSON numbers decode as float64; whole numbers read better as ints.
			if v == float64(int64(v)) {
				a[k] = int64(v)
			} else {
				a[k] = v
			}
		case nil:
			a[k] = ""
		default:
			return nil, oerrors.Newf(oerrors.ErrConfig, "option %q: value must be a scalar, got %T", k, v)
		}
	}
	return a, nil
}

// ParseSet parses --set flags of the form key=value. Values stay strings;
// the pruning context normalizes yes/no spellings.
func ParseSet(pairs []string) (Answers, error) {
	a := make(Answers, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid --set value %q", p),
				"",
				"",
				"Use --set key=value, e.g. --set project_cli=no",
			)
		}
		a[key] = value
	}
	return a, nil
}
