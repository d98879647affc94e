package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/answers"
	"github.com/skelkit/skel/internal/cmdutil"
	"github.com/skelkit/skel/internal/config"
	"github.com/skelkit/skel/internal/output"
	"github.com/skelkit/skel/internal/prune"
	"github.com/skelkit/skel/internal/templates"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		af          cmdutil.AnswerFlags
		dirFlag     string
		forceFlag   bool
		gitInitFlag bool
	)

	c := &cobra.Command{
		Use:   "generate <variant>",
		Short: "Generate a project from a template variant",
		Long: `Generate a project from an embedded template variant.

Answers are merged with precedence: --set > --answers file > config defaults
> variant defaults. project_package, project_githost and project_homepage are
derived from project_name and project_repository unless set explicitly.

The package name is checked before anything is written. After rendering,
files that belong to options you did not select are removed.

Examples:
  # Python package with a CLI, hosted on GitLab
  skel generate python --set project_name="My Tool" --set project_cli=yes \
    --set project_repository=https://gitlab.com/me/my-tool

  # Rust application into a specific directory, with a git repository
  skel generate rust --dir ./mock --git-init`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, cfg, &af, args[0], dirFlag, forceFlag, gitInitFlag)
		},
	}

	c.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory to generate into (defaults to the package name)")
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Generate into a non-empty directory")
	c.Flags().BoolVar(&gitInitFlag, "git-init", false, "Initialize a git repository (env: SKEL_GIT_INIT)")
	af.AddTo(c)

	return c
}

func runGenerate(c *cobra.Command, cfg *config.GlobalConfig, af *cmdutil.AnswerFlags, variantName, dir string, force, gitInit bool) error {
	stderr := c.ErrOrStderr()

	variant, err := templates.Get(variantName)
	if err != nil {
		return cmdutil.Fail(stderr, err)
	}

	userAnswers, err := af.Resolve(cfg.Config)
	if err != nil {
		return cmdutil.Fail(stderr, err)
	}

	if dir == "" {
		dir, err = defaultTargetDir(variant, userAnswers)
		if err != nil {
			return cmdutil.Fail(stderr, err)
		}
	}

	if !c.Flags().Changed("git-init") {
		gitInit = cfg.Config.GitInit
	}

	gen := templates.NewGenerator(templates.GenerateOptions{
		TargetDir: dir,
		Variant:   variant.Name,
		Answers:   userAnswers,
		Force:     force,
		GitInit:   gitInit,
	})

	var result *templates.GenerateResult
	err = output.RunWithSpinner(c.Context(), fmt.Sprintf("Generating %s project", variant.Name), func() error {
		var genErr error
		result, genErr = gen.Generate(c.Context())
		return genErr
	})
	if err != nil {
		return cmdutil.Fail(stderr, err)
	}

	printGenerateResult(c, result, cfg.Verbose)
	return nil
}

// defaultTargetDir names the target directory after the package the run
// will generate.
func defaultTargetDir(variant templates.Variant, userAnswers answers.Answers) (string, error) {
	grammar, err := variant.NameGrammar()
	if err != nil {
		return "", err
	}
	final := answers.Derive(answers.Merge(variant.Defaults(), userAnswers), grammar)
	return final.String(answers.KeyProjectPackage), nil
}

// printGenerateResult prints the generated tree. With verbose set, pruned
// paths appear in the tree marked with the option that removed them.
func printGenerateResult(c *cobra.Command, result *templates.GenerateResult, verbose bool) {
	w := c.OutOrStdout()

	absDir, err := filepath.Abs(result.TargetDir)
	if err != nil {
		absDir = result.TargetDir
	}

	entries := make(map[string]output.TreeEntry, len(result.Files)+len(result.Removed))
	for _, f := range result.Files {
		entries[f] = output.TreeEntry{Description: fileDescription(f)}
	}
	for _, r := range result.Removed {
		output.Debug("pruned", "option", r.Option, "label", r.Label, "path", r.Path)
		if verbose {
			entries[r.Path] = output.TreeEntry{Status: output.StatusRemoved, Description: removalDescription(r)}
		}
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Created %s project %s in %s",
		output.StyleNoun.Render(result.Variant),
		output.StyleBold.Render(result.Answers.String(answers.KeyProjectName)),
		absDir)))
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderFileTree(filepath.Base(absDir), entries))
	if result.GitInitialized {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.FormatCheckmark("Initialized git repository"))
	}
}

func removalDescription(r prune.Removal) string {
	if r.Label != "" {
		return fmt.Sprintf("pruned: %s=%s", r.Option, r.Label)
	}
	return "pruned: " + r.Option
}

// fileDescription returns a short description for well-known files.
func fileDescription(path string) string {
	descriptions := map[string]string{
		"README.md":      "Project readme",
		"justfile":       "Task runner recipes",
		"pyproject.toml": "Python package metadata",
		"Cargo.toml":     "Rust crate manifest",
		"package.json":   "Node package manifest",
		".gitlab-ci.yml": "GitLab CI pipeline",
	}
	if desc, ok := descriptions[path]; ok {
		return desc
	}
	if strings.HasSuffix(path, "/__main__.py") {
		return "Command line entrypoint"
	}
	return ""
}
