package templates

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/skelkit/skel/internal/answers"
	oerrors "github.com/skelkit/skel/internal/errors"
	"github.com/skelkit/skel/internal/output"
	"github.com/skelkit/skel/internal/prune"
)

// Generator runs one generation: validate the package name, render the
// variant, write it, prune it.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate creates a project from a variant. Every check that can fail
// (name grammar, target directory, rendering, schema resolution) runs
// before the first file is written.
func (g *Generator) Generate(ctx context.Context) (*GenerateResult, error) {
	variant, err := Get(g.opts.Variant)
	if err != nil {
		return nil, err
	}
	log := output.ScopedLogger(variant.Name)

	grammar, err := variant.NameGrammar()
	if err != nil {
		return nil, err
	}

	final := answers.Derive(answers.Merge(variant.Defaults(), g.opts.Answers), grammar)

	if err := grammar.Validate(final.String(answers.KeyProjectPackage)); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	renderer := NewRenderer(final)
	files, err := renderer.RenderTemplate(variant.Files)
	if err != nil {
		return nil, oerrors.NewConfigError(err.Error(), g.opts.Variant, "", "", err)
	}

	schema, err := variant.Schema.Render(renderer.RenderPath)
	if err != nil {
		return nil, err
	}
	pruneCtx, err := prune.NewContext(final)
	if err != nil {
		return nil, err
	}
	plan, err := prune.Plan(schema, pruneCtx)
	if err != nil {
		return nil, err
	}

	log.Debug("generating project",
		"target", g.opts.TargetDir,
		"package", final.String(answers.KeyProjectPackage),
		"files", len(files),
		"removals", len(plan))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := g.writeFiles(files); err != nil {
		return nil, err
	}

	prune.NewEngine(prune.NewRemover(g.opts.TargetDir)).Execute(plan)

	result := &GenerateResult{
		Variant:   variant.Name,
		TargetDir: g.opts.TargetDir,
		Answers:   final,
		Files:     survivors(files, plan),
		Removed:   plan,
	}

	if g.opts.GitInit {
		if err := initRepository(g.opts.TargetDir); err != nil {
			return result, err
		}
		result.GitInitialized = true
		log.Debug("initialized git repository", "path", g.opts.TargetDir)
	}

	return result, nil
}

func (g *Generator) writeFiles(files []TemplateFile) error {
	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.TargetPath))

		parentDir := filepath.Dir(targetPath)
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", parentDir, err)
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", targetPath, err)
		}
		output.Debug("created file", "path", f.TargetPath)
	}
	return nil
}

// checkTargetDir validates the target directory.
func (g *Generator) checkTargetDir() error {
	info, err := os.Stat(g.opts.TargetDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewValidationError("target is not a directory", g.opts.TargetDir, "", "")
	}

	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 && !g.opts.Force {
		return oerrors.NewValidationError(
			"target directory is not empty",
			g.opts.TargetDir,
			"",
			"Use --force to generate into it anyway",
		)
	}

	return nil
}

// survivors returns the generated paths not covered by a removal.
func survivors(files []TemplateFile, plan []prune.Removal) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !removed(f.TargetPath, plan) {
			out = append(out, f.TargetPath)
		}
	}
	return out
}

func removed(p string, plan []prune.Removal) bool {
	for _, r := range plan {
		rp := filepath.ToSlash(filepath.Clean(r.Path))
		if p == rp || strings.HasPrefix(p, rp+"/") {
			return true
		}
	}
	return false
}

// initRepository creates a git repository on branch main and stages the
// generated files. An existing repository in dir is reused as is.
func initRepository(dir string) error {
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(dir)
	}
	if err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}

	w, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	if err := w.AddGlob("."); err != nil {
		return fmt.Errorf("staging generated files: %w", err)
	}
	return nil
}
