package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("mock", map[string]TreeEntry{
		"README.md":                 {Description: "Project readme"},
		"src/mock/__init__.py":      {},
		".github/workflows/ci.yaml": {},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 8)
	assert.Contains(t, lines[0], "mock/")

	// Directories first, then files, alphabetically.
	assert.Contains(t, lines[1], "├── .github/")
	assert.Contains(t, lines[2], "│   └── workflows/")
	assert.Contains(t, lines[3], "│       └── ci.yaml")
	assert.Contains(t, lines[4], "├── src/")
	assert.Contains(t, lines[5], "│   └── mock/")
	assert.Contains(t, lines[6], "│       └── __init__.py")
	assert.Contains(t, lines[7], "└── README.md")
	assert.Contains(t, lines[7], "Project readme")
}

func TestRenderFileTree_RemovedEntries(t *testing.T) {
	out := RenderFileTree("mock", map[string]TreeEntry{
		"src/mock/__init__.py": {},
		"src/mock/__main__.py": {Status: StatusRemoved, Description: "pruned: project_cli"},
		".gitlab-ci.yml":       {Status: StatusRemoved, Description: "pruned: project_githost=gitlab"},
	})

	assert.Contains(t, out, "__main__.py")
	assert.Contains(t, out, "pruned: project_cli")
	assert.Contains(t, out, "pruned: project_githost=gitlab")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[1], "├── src/", "directories still sort first")
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("mock", nil))
}
