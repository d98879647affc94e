package prune

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
)

// Gate is a schema entry that conditions removal of paths on an answer.
// The only implementations are BoolGate and ChoiceGate.
type Gate interface {
	gate()
}

// BoolGate removes its paths when the option is declined.
type BoolGate struct {
	paths []string
}

// NewBoolGate creates a BoolGate over the given paths, in order.
func NewBoolGate(paths ...string) BoolGate {
	return BoolGate{paths: slices.Clone(paths)}
}

func (BoolGate) gate() {}

// Paths returns the gated paths in declaration order.
func (g BoolGate) Paths() []string {
	return slices.Clone(g.paths)
}

// ChoiceGate keeps the paths of the selected label and removes the paths of
// every other label.
type ChoiceGate struct {
	choices map[string][]string
}

// NewChoiceGate creates a ChoiceGate from label to paths.
func NewChoiceGate(choices map[string][]string) ChoiceGate {
	c := make(map[string][]string, len(choices))
	for label, paths := range choices {
		c[label] = slices.Clone(paths)
	}
	return ChoiceGate{choices: c}
}

func (ChoiceGate) gate() {}

// Labels returns the declared labels sorted alphabetically.
func (g ChoiceGate) Labels() []string {
	labels := make([]string, 0, len(g.choices))
	for label := range g.choices {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Paths returns the paths declared for label.
func (g ChoiceGate) Paths(label string) []string {
	return slices.Clone(g.choices[label])
}

// checkGate rejects entries the engine cannot interpret.
func checkGate(name string, g Gate) error {
	switch g := g.(type) {
	case BoolGate:
		return checkPaths(name, g.paths)
	case ChoiceGate:
		for _, label := range g.Labels() {
			if err := checkPaths(name+"."+label, g.choices[label]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("option %q: %w: unsupported entry type %T", name, ErrMalformedGate, g)
	}
}

func checkPaths(name string, paths []string) error {
	for _, p := range paths {
		if p == "" {
			return fmt.Errorf("option %q: %w: empty path", name, ErrMalformedGate)
		}
		if !filepath.IsLocal(filepath.FromSlash(p)) {
			return fmt.Errorf("option %q: %w: %q", name, ErrUnsafePath, p)
		}
	}
	return nil
}
