package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/skelkit/skel/internal/answers"
	oerrors "github.com/skelkit/skel/internal/errors"
	"github.com/skelkit/skel/internal/naming"
)

//go:embed all:variants
var variantsFS embed.FS

const (
	variantsRoot = "variants"
	manifestFile = "skel.yaml"
	templateDir  = "template"
)

// Variant is an embedded template variant.
type Variant struct {
	Manifest

	// Files is the variant's template tree.
	Files fs.FS
}

// Defaults returns a copy of the variant's default answers.
func (v Variant) Defaults() answers.Answers {
	return answers.Answers(v.Manifest.Defaults).Clone()
}

// NameGrammar returns the grammar project_package must satisfy.
func (v Variant) NameGrammar() (naming.Grammar, error) {
	return naming.Lookup(v.Grammar)
}

var (
	loadOnce sync.Once
	variants map[string]Variant
	loadErr  error
)

func loadVariants() (map[string]Variant, error) {
	loadOnce.Do(func() {
		variants, loadErr = LoadVariants(variantsFS, variantsRoot)
	})
	return variants, loadErr
}

// LoadVariants reads every <root>/<name>/skel.yaml in fsys.
func LoadVariants(fsys fs.FS, root string) (map[string]Variant, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("reading variants: %w", err)
	}

	out := make(map[string]Variant, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := loadVariant(fsys, path.Join(root, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", e.Name(), err)
		}
		out[v.Name] = v
	}
	return out, nil
}

func loadVariant(fsys fs.FS, dir string) (Variant, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, manifestFile))
	if err != nil {
		return Variant{}, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Variant{}, fmt.Errorf("%s: %w", manifestFile, err)
	}
	if m.Name == "" {
		m.Name = path.Base(dir)
	}
	if _, err := naming.Lookup(m.Grammar); err != nil {
		return Variant{}, fmt.Errorf("%s: %w", manifestFile, err)
	}

	files, err := fs.Sub(fsys, path.Join(dir, templateDir))
	if err != nil {
		return Variant{}, err
	}
	return Variant{Manifest: m, Files: files}, nil
}

// Get returns an embedded variant by name.
func Get(name string) (Variant, error) {
	all, err := loadVariants()
	if err != nil {
		return Variant{}, err
	}
	v, ok := all[name]
	if !ok {
		return Variant{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template variant %q", name),
			"",
			fmt.Sprintf("Available variants: %s", strings.Join(Names(), ", ")),
		)
	}
	return v, nil
}

// List returns all embedded variants sorted by name.
func List() ([]Variant, error) {
	all, err := loadVariants()
	if err != nil {
		return nil, err
	}
	out := make([]Variant, 0, len(all))
	for _, v := range all {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Names returns the embedded variant names in sorted order.
func Names() []string {
	all, _ := loadVariants()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
