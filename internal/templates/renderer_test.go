package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelkit/skel/internal/answers"
)

func TestRenderer_RenderString(t *testing.T) {
	r := NewRenderer(answers.Answers{
		"project_name": "Mock",
		"project_cli":  "no",
		"project_tool": true,
	})

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "substitution", input: "# {{ .project_name }}", want: "# Mock"},
		{name: "truthy string", input: "{{ if truthy .project_cli }}cli{{ else }}lib{{ end }}", want: "lib"},
		{name: "truthy bool", input: "{{ if truthy .project_tool }}tool{{ end }}", want: "tool"},
		{name: "missing answer", input: "{{ .project_missing }}", wantErr: true},
		{name: "parse error", input: "{{ .project_name", wantErr: true},
		{name: "literal braces", input: `{{ "{{" }}args{{ "}}" }}`, want: "{{args}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderString(tt.name, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_RenderPath(t *testing.T) {
	r := NewRenderer(answers.Answers{"project_package": "mock"})

	got, err := r.RenderPath("src/{{ .project_package }}/__main__.py")
	require.NoError(t, err)
	assert.Equal(t, "src/mock/__main__.py", got)

	got, err = r.RenderPath(".github")
	require.NoError(t, err)
	assert.Equal(t, ".github", got)
}

func TestRenderer_RenderTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md.tmpl":                         {Data: []byte("# {{ .project_name }}\n")},
		".github/workflows/ci.yaml":              {Data: []byte("run: ${{ matrix.os }}\n")},
		"src/{{.project_package}}/__init__.py.tmpl": {Data: []byte(`"""{{ .project_name }}"""` + "\n")},
	}

	r := NewRenderer(answers.Answers{"project_name": "Mock", "project_package": "mock"})
	files, err := r.RenderTemplate(fsys)
	require.NoError(t, err)
	require.Len(t, files, 3)

	byTarget := map[string]string{}
	for _, f := range files {
		byTarget[f.TargetPath] = string(f.Content)
	}
	assert.Equal(t, "# Mock\n", byTarget["README.md"])
	assert.Equal(t, "run: ${{ matrix.os }}\n", byTarget[".github/workflows/ci.yaml"], "non-template files are copied verbatim")
	assert.Equal(t, `"""Mock"""`+"\n", byTarget["src/mock/__init__.py"])
	assert.Equal(t, ".github/workflows/ci.yaml", files[0].TargetPath, "sorted by target path")
}

func TestRenderer_RenderTemplateRejectsEscapingPaths(t *testing.T) {
	fsys := fstest.MapFS{
		"src/{{.project_package}}/x.py": {Data: []byte("")},
	}

	r := NewRenderer(answers.Answers{"project_package": "../../etc"})
	_, err := r.RenderTemplate(fsys)
	assert.Error(t, err)
}

func TestListTemplateFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md.tmpl": {Data: []byte("")},
		"src/main.rs":    {Data: []byte("")},
	}

	files, err := ListTemplateFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src/main.rs"}, files)
}
