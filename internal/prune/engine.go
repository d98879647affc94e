package prune

import (
	"fmt"
)

// Removal is one path the engine decided to delete.
type Removal struct {
	// Option is the schema option that produced the removal.
	Option string

	// Label is the unselected choice label, empty for a BoolGate.
	Label string

	// Path is relative to the project root.
	Path string
}

// Engine resolves a Context against a Schema and removes discarded paths.
type Engine struct {
	remover PathRemover
}

// NewEngine creates an engine that deletes through r.
func NewEngine(r PathRemover) *Engine {
	return &Engine{remover: r}
}

// Plan resolves every gate in schema against ctx and returns the paths to
// delete. It touches nothing on disk; any missing answer or malformed gate
// aborts the whole plan.
func Plan(schema *Schema, ctx Context) ([]Removal, error) {
	var plan []Removal

	for _, name := range schema.Names() {
		g, _ := schema.Gate(name)

		switch g := g.(type) {
		case BoolGate:
			chosen, err := ctx.Bool(name)
			if err != nil {
				return nil, err
			}
			if chosen {
				continue
			}
			for _, p := range g.paths {
				plan = append(plan, Removal{Option: name, Path: p})
			}

		case ChoiceGate:
			selected, err := ctx.Label(name)
			if err != nil {
				return nil, err
			}
			for _, label := range g.Labels() {
				if label == selected {
					continue
				}
				for _, p := range g.choices[label] {
					plan = append(plan, Removal{Option: name, Label: label, Path: p})
				}
			}

		default:
			return nil, fmt.Errorf("option %q: %w: unsupported entry type %T", name, ErrMalformedGate, g)
		}
	}

	return plan, nil
}

// Prune plans the removals for ctx and executes them. Nothing is deleted
// when planning fails. The executed plan is returned for reporting.
func (e *Engine) Prune(schema *Schema, ctx Context) ([]Removal, error) {
	plan, err := Plan(schema, ctx)
	if err != nil {
		return nil, err
	}

	e.Execute(plan)
	return plan, nil
}

// Execute removes every path in plan, in order.
func (e *Engine) Execute(plan []Removal) {
	for _, r := range plan {
		e.remover.Remove(r.Path)
	}
}

// Prune removes the paths under root that ctx discards according to schema.
func Prune(root string, schema *Schema, ctx Context) ([]Removal, error) {
	return NewEngine(NewRemover(root)).Prune(schema, ctx)
}
