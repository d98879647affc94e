// Package naming checks candidate package and crate names against the
// identifier grammar of the target ecosystem before a project is generated.
package naming

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/gosimple/slug"

	oerrors "github.com/skelkit/skel/internal/errors"
)

// Grammar is the identifier grammar of one target ecosystem.
type Grammar struct {
	// Name is the key used by --grammar and template manifests.
	Name string

	// Language is the display name used in diagnostics.
	Language string

	// Kind is what the ecosystem calls a package ("crate", "package").
	Kind string

	// Pattern is the full-match expression a candidate must satisfy.
	Pattern *regexp.Regexp

	// AllowHyphen reports whether Pattern accepts '-'.
	AllowHyphen bool
}

var (
	identPattern  = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]+$`)
	hyphenPattern = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9-]+$`)
)

// Built-in grammars.
var (
	Rust = Grammar{Name: "rust", Language: "Rust", Kind: "crate", Pattern: identPattern}

	Python = Grammar{Name: "python", Language: "Python", Kind: "package", Pattern: identPattern}

	JavaScript = Grammar{Name: "javascript", Language: "JavaScript", Kind: "package", Pattern: hyphenPattern, AllowHyphen: true}
)

var builtins = map[string]Grammar{
	Rust.Name:       Rust,
	Python.Name:     Python,
	JavaScript.Name: JavaScript,
}

// Names returns the built-in grammar names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in grammar called name.
func Lookup(name string) (Grammar, error) {
	g, ok := builtins[strings.ToLower(name)]
	if !ok {
		return Grammar{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown name grammar %q", name),
			"",
			fmt.Sprintf("Available grammars: %s", strings.Join(Names(), ", ")),
		)
	}
	return g, nil
}

// InvalidNameError reports a candidate rejected by a grammar.
type InvalidNameError struct {
	Name    string
	Grammar Grammar
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s is not a valid %s %s name", e.Name, e.Grammar.Language, e.Grammar.Kind)
}

// Unwrap lets callers match oerrors.ErrValidation.
func (e *InvalidNameError) Unwrap() error {
	return oerrors.ErrValidation
}

// Diagnostic is the single line written to stderr when generation aborts.
func (e *InvalidNameError) Diagnostic() string {
	return "ERROR: " + e.Error() + "."
}

// Validate returns an *InvalidNameError when candidate does not match g.
func (g Grammar) Validate(candidate string) error {
	if g.Pattern == nil || !g.Pattern.MatchString(candidate) {
		return &InvalidNameError{Name: candidate, Grammar: g}
	}
	return nil
}

// Validate checks candidate against the built-in grammar called grammar.
func Validate(grammar, candidate string) error {
	g, err := Lookup(grammar)
	if err != nil {
		return err
	}
	return g.Validate(candidate)
}

// PackageName derives a package name from a human project name. The result
// is a lowercase slug; grammars without hyphens get underscores instead.
// The result is not validated.
func PackageName(projectName string, g Grammar) string {
	name := slug.Make(projectName)
	if !g.AllowHyphen {
		name = strings.ReplaceAll(name, "-", "_")
	}
	return name
}
