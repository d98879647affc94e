package prune

import (
	"fmt"
	"sort"
)

// Schema maps option names to gates. It is immutable once built, so several
// template variants can hold their own schemas side by side.
type Schema struct {
	gates map[string]Gate
	names []string
}

// NewSchema builds a Schema from option name to gate. Every gate is checked
// up front; a nil or unknown gate fails with ErrMalformedGate.
func NewSchema(gates map[string]Gate) (*Schema, error) {
	s := &Schema{
		gates: make(map[string]Gate, len(gates)),
		names: make([]string, 0, len(gates)),
	}
	for name, g := range gates {
		if err := checkGate(name, g); err != nil {
			return nil, err
		}
		s.gates[name] = g
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s, nil
}

// Names returns the option names in sorted order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Gate returns the gate declared for name.
func (s *Schema) Gate(name string) (Gate, bool) {
	if s == nil {
		return nil, false
	}
	g, ok := s.gates[name]
	return g, ok
}

// Len returns the number of options.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Render returns a copy of the schema with every path passed through fn.
// Used to substitute answers into paths such as "src/{{ .project_package }}".
func (s *Schema) Render(fn func(string) (string, error)) (*Schema, error) {
	gates := make(map[string]Gate, s.Len())
	for _, name := range s.Names() {
		switch g := s.gates[name].(type) {
		case BoolGate:
			paths, err := renderPaths(name, g.paths, fn)
			if err != nil {
				return nil, err
			}
			gates[name] = BoolGate{paths: paths}
		case ChoiceGate:
			choices := make(map[string][]string, len(g.choices))
			for label, p := range g.choices {
				paths, err := renderPaths(name, p, fn)
				if err != nil {
					return nil, err
				}
				choices[label] = paths
			}
			gates[name] = ChoiceGate{choices: choices}
		default:
			return nil, fmt.Errorf("option %q: %w: unsupported entry type %T", name, ErrMalformedGate, g)
		}
	}
	return NewSchema(gates)
}

func renderPaths(name string, paths []string, fn func(string) (string, error)) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := fn(p)
		if err != nil {
			return nil, fmt.Errorf("option %q: rendering path %q: %w", name, p, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Document returns the schema in its file shape: a path list for a BoolGate
// and a label mapping for a ChoiceGate.
func (s *Schema) Document() map[string]any {
	options := make(map[string]any, s.Len())
	for _, name := range s.Names() {
		switch g := s.gates[name].(type) {
		case BoolGate:
			options[name] = g.Paths()
		case ChoiceGate:
			choices := make(map[string][]string, len(g.choices))
			for _, label := range g.Labels() {
				choices[label] = g.Paths(label)
			}
			options[name] = choices
		}
	}
	return map[string]any{"options": options}
}
