package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/skelkit/skel/internal/answers"
	"github.com/skelkit/skel/internal/prune"
)

const tmplSuffix = ".tmpl"

// Renderer substitutes answers into template contents and paths.
type Renderer struct {
	data answers.Answers
}

// NewRenderer creates a new renderer with the given answers.
func NewRenderer(data answers.Answers) *Renderer {
	return &Renderer{data: data}
}

var funcs = template.FuncMap{
	// truthy reads a yes/no answer; unreadable answers are false.
	"truthy": func(v any) bool {
		switch v := v.(type) {
		case bool:
			return v
		case nil:
			return false
		default:
			b, err := prune.ParseBool(fmt.Sprint(v))
			return err == nil && b
		}
	},
}

// RenderString renders content. Unknown answers are an error.
func (r *Renderer) RenderString(name, content string) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(r.data)); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// RenderPath renders the answers referenced by a relative path. Paths
// without actions are returned unchanged.
func (r *Renderer) RenderPath(p string) (string, error) {
	if !strings.Contains(p, "{{") {
		return p, nil
	}
	return r.RenderString(p, p)
}

// RenderTemplate renders every file of fsys. Files ending in .tmpl are
// executed and lose the suffix; other files are copied verbatim. Results
// are sorted by target path.
func (r *Renderer) RenderTemplate(fsys fs.FS) ([]TemplateFile, error) {
	var files []TemplateFile

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		target, err := r.RenderPath(strings.TrimSuffix(p, tmplSuffix))
		if err != nil {
			return fmt.Errorf("rendering path %s: %w", p, err)
		}
		if !fs.ValidPath(target) {
			return fmt.Errorf("rendering path %s: %q is not a relative path", p, target)
		}

		if strings.HasSuffix(p, tmplSuffix) {
			rendered, err := r.RenderString(path.Base(p), string(content))
			if err != nil {
				return fmt.Errorf("rendering %s: %w", p, err)
			}
			content = []byte(rendered)
		}

		files = append(files, TemplateFile{
			SourcePath: p,
			TargetPath: target,
			Content:    content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].TargetPath < files[j].TargetPath })
	return files, nil
}

// ListTemplateFiles returns the unrendered target paths of fsys.
func ListTemplateFiles(fsys fs.FS) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, strings.TrimSuffix(p, tmplSuffix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
