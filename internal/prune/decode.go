package prune

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	oerrors "github.com/skelkit/skel/internal/errors"
)

// UnmarshalYAML decodes a schema document:
//
//	options:
//	  project_cli:            # path list -> BoolGate
//	    - src/app/__main__.py
//	  project_githost:        # label mapping -> ChoiceGate
//	    github: [.github]
//	    gitlab: [.gitlab-ci.yml]
//
// Any other shape is rejected with ErrMalformedGate.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w: schema document must be a mapping", node.Line, ErrMalformedGate)
	}

	var options *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "options" {
			options = node.Content[i+1]
		}
	}

	gates := map[string]Gate{}
	if options != nil && !isNull(options) {
		if options.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: %w: options must be a mapping", options.Line, ErrMalformedGate)
		}
		for i := 0; i+1 < len(options.Content); i += 2 {
			name := options.Content[i].Value
			if _, dup := gates[name]; dup {
				return fmt.Errorf("line %d: option %q: %w: declared twice", options.Content[i].Line, name, ErrMalformedGate)
			}
			g, err := decodeGate(name, options.Content[i+1])
			if err != nil {
				return err
			}
			gates[name] = g
		}
	}

	built, err := NewSchema(gates)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}

func decodeGate(name string, node *yaml.Node) (Gate, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		paths, err := decodePaths(name, node)
		if err != nil {
			return nil, err
		}
		return BoolGate{paths: paths}, nil

	case yaml.MappingNode:
		choices := make(map[string][]string, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			label := node.Content[i].Value
			if _, dup := choices[label]; dup {
				return nil, fmt.Errorf("line %d: option %q: %w: label %q declared twice", node.Content[i].Line, name, ErrMalformedGate, label)
			}
			paths, err := decodePaths(name+"."+label, node.Content[i+1])
			if err != nil {
				return nil, err
			}
			choices[label] = paths
		}
		return ChoiceGate{choices: choices}, nil

	default:
		return nil, fmt.Errorf("line %d: option %q: %w: expected a path list or a choice mapping", node.Line, name, ErrMalformedGate)
	}
}

func decodePaths(name string, node *yaml.Node) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: option %q: %w: expected a path list", node.Line, name, ErrMalformedGate)
	}
	paths := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode || isNull(item) {
			return nil, fmt.Errorf("line %d: option %q: %w: path must be a string", item.Line, name, ErrMalformedGate)
		}
		paths = append(paths, item.Value)
	}
	return paths, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// DecodeSchema parses a schema document.
func DecodeSchema(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSchemaFile reads, validates, and decodes the schema at path.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oerrors.NewNotFoundError("schema file does not exist", path, "")
		}
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}
	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	s, err := DecodeSchema(data)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return s, nil
}
