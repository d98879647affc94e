package prune

import (
	"fmt"
	"sort"
	"strconv"
)

// answer is one normalized context value. Booleans keep their native form so
// gates never compare encoded strings.
type answer struct {
	text    string
	boolean *bool
}

// Context holds the answers a generation run resolved, keyed by option name.
type Context struct {
	values map[string]answer
}

// NewContext normalizes raw answers as produced by prompts, answers files,
// or --set flags. Only scalar values are accepted.
func NewContext(raw map[string]any) (Context, error) {
	c := Context{values: make(map[string]answer, len(raw))}
	for name, v := range raw {
		a, err := normalize(v)
		if err != nil {
			return Context{}, fmt.Errorf("option %q: %w", name, err)
		}
		c.values[name] = a
	}
	return c, nil
}

func normalize(v any) (answer, error) {
	switch v := v.(type) {
	case bool:
		b := v
		return answer{text: strconv.FormatBool(v), boolean: &b}, nil
	case string:
		return answer{text: v}, nil
	case int, int64, float64:
		return answer{text: fmt.Sprint(v)}, nil
	default:
		return answer{}, fmt.Errorf("%w: unsupported value type %T", ErrInvalidAnswer, v)
	}
}

// Has reports whether name has an answer.
func (c Context) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Names returns the answered option names in sorted order.
func (c Context) Names() []string {
	names := make([]string, 0, len(c.values))
	for name := range c.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bool returns the answer for name as a boolean.
func (c Context) Bool(name string) (bool, error) {
	a, ok := c.values[name]
	if !ok {
		return false, fmt.Errorf("option %q: %w", name, ErrMissingKey)
	}
	if a.boolean != nil {
		return *a.boolean, nil
	}
	b, err := ParseBool(a.text)
	if err != nil {
		return false, fmt.Errorf("option %q: %w", name, err)
	}
	return b, nil
}

// Label returns the answer for name as a choice label.
func (c Context) Label(name string) (string, error) {
	a, ok := c.values[name]
	if !ok {
		return "", fmt.Errorf("option %q: %w", name, ErrMissingKey)
	}
	return a.text, nil
}

// ParseBool reads the yes/no spellings used by template prompts. Spellings
// are case-sensitive apart from the capitalized True/False.
func ParseBool(s string) (bool, error) {
	switch s {
	case "yes", "y", "true", "True", "on", "1":
		return true, nil
	case "no", "n", "false", "False", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a yes/no answer", ErrInvalidAnswer, s)
	}
}
