package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skelkit/skel/internal/naming"
)

func TestGitHost(t *testing.T) {
	tests := []struct {
		repo string
		want string
	}{
		{"https://github.com/scruffaluff/templates", HostGitHub},
		{"https://gitlab.com/scruffaluff/templates", HostGitLab},
		{"https://GitLab.com/group/sub/repo", HostGitLab},
		{"https://bitbucket.org/scruffaluff/templates", HostNone},
		{"not a url", HostNone},
		{"", HostNone},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			assert.Equal(t, tt.want, GitHost(tt.repo))
		})
	}
}

func TestHomepage(t *testing.T) {
	tests := []struct {
		repo string
		want string
	}{
		{"https://gitlab.com/group/sub/repo", "https://group.gitlab.io/sub/repo"},
		{"https://github.com/scruffaluff/templates", "https://scruffaluff.github.io/templates"},
		{"https://github.com/scruffaluff/templates.git", "https://scruffaluff.github.io/templates"},
		{"https://github.com/scruffaluff", "https://github.com/scruffaluff"},
		{"https://bitbucket.org/a/b", "https://bitbucket.org/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			assert.Equal(t, tt.want, Homepage(tt.repo))
		})
	}
}

func TestDerive(t *testing.T) {
	t.Run("fills computed answers", func(t *testing.T) {
		in := Answers{
			KeyProjectName:       "My Project",
			KeyProjectRepository: "https://gitlab.com/mock/my-project",
		}
		got := Derive(in, naming.Python)

		assert.Equal(t, "my_project", got[KeyProjectPackage])
		assert.Equal(t, HostGitLab, got[KeyProjectGitHost])
		assert.Equal(t, "https://mock.gitlab.io/my-project", got[KeyProjectHomepage])
		assert.NotContains(t, in, KeyProjectPackage, "input is not mutated")
	})

	t.Run("explicit answers win", func(t *testing.T) {
		got := Derive(Answers{
			KeyProjectName:       "My Project",
			KeyProjectPackage:    "$Mock?",
			KeyProjectRepository: "https://github.com/mock/mock",
			KeyProjectGitHost:    HostGitLab,
		}, naming.Rust)

		assert.Equal(t, "$Mock?", got[KeyProjectPackage])
		assert.Equal(t, HostGitLab, got[KeyProjectGitHost])
		assert.Equal(t, "https://mock.github.io/mock", got[KeyProjectHomepage])
	})

	t.Run("no repository", func(t *testing.T) {
		got := Derive(Answers{KeyProjectName: "app"}, naming.JavaScript)
		assert.Equal(t, "app", got[KeyProjectPackage])
		assert.NotContains(t, got, KeyProjectGitHost)
		assert.NotContains(t, got, KeyProjectHomepage)
	})
}
