// Package templates embeds the project template variants and generates
// projects from them: render the tree, then prune unselected options.
package templates

import (
	"github.com/skelkit/skel/internal/answers"
	"github.com/skelkit/skel/internal/prune"
)

// Manifest is a variant's skel.yaml.
type Manifest struct {
	// Name is the variant identifier (python, rust, vue).
	Name string `yaml:"name"`

	// Description explains what the generated project contains.
	Description string `yaml:"description"`

	// Grammar names the identifier grammar project_package must satisfy.
	Grammar string `yaml:"grammar"`

	// Defaults are the lowest-precedence answers.
	Defaults map[string]any `yaml:"defaults"`

	// Schema lists the paths each option prunes. Paths may reference answers,
	// e.g. src/{{ .project_package }}/__main__.py.
	Schema *prune.Schema `yaml:"schema"`
}

// TemplateFile is one rendered file of a variant.
type TemplateFile struct {
	// SourcePath is the path within the variant's template tree.
	SourcePath string

	// TargetPath is the rendered output path (with .tmpl suffix removed).
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string

	// Variant is the template variant to use.
	Variant string

	// Answers override the variant defaults, already merged from config,
	// answers file, and --set flags.
	Answers answers.Answers

	// Force allows generating into a non-empty directory.
	Force bool

	// GitInit initializes a git repository in TargetDir afterwards.
	GitInit bool
}

// GenerateResult contains the result of a generation run.
type GenerateResult struct {
	// Variant is the variant that was generated.
	Variant string

	// TargetDir is where the project was generated.
	TargetDir string

	// Answers are the final answers, including derived ones.
	Answers answers.Answers

	// Files are the generated paths that survived pruning.
	Files []string

	// Removed are the paths pruning deleted.
	Removed []prune.Removal

	// GitInitialized reports whether a repository was created.
	GitInitialized bool
}
