package answers

import (
	"net/url"
	"strings"

	"github.com/skelkit/skel/internal/naming"
)

// Well-known option names.
const (
	KeyProjectName       = "project_name"
	KeyProjectPackage    = "project_package"
	KeyProjectRepository = "project_repository"
	KeyProjectGitHost    = "project_githost"
	KeyProjectHomepage   = "project_homepage"
)

// Git host labels.
const (
	HostGitHub = "github"
	HostGitLab = "gitlab"
	HostNone   = "none"
)

// Derive fills computed answers that the user did not set explicitly:
// project_package from project_name, project_githost and project_homepage
// from project_repository. Explicit answers always win.
func Derive(a Answers, g naming.Grammar) Answers {
	out := a.Clone()

	if _, ok := out[KeyProjectPackage]; !ok {
		if name := out.String(KeyProjectName); name != "" {
			out[KeyProjectPackage] = naming.PackageName(name, g)
		}
	}

	repo := out.String(KeyProjectRepository)
	if repo == "" {
		return out
	}
	if _, ok := out[KeyProjectGitHost]; !ok {
		out[KeyProjectGitHost] = GitHost(repo)
	}
	if _, ok := out[KeyProjectHomepage]; !ok {
		out[KeyProjectHomepage] = Homepage(repo)
	}
	return out
}

// GitHost classifies a repository URL by its host.
func GitHost(repository string) string {
	u, err := url.Parse(repository)
	if err != nil {
		return HostNone
	}
	switch strings.ToLower(u.Hostname()) {
	case "github.com", "www.github.com":
		return HostGitHub
	case "gitlab.com", "www.gitlab.com":
		return HostGitLab
	default:
		return HostNone
	}
}

// Homepage maps a GitHub or GitLab repository URL to its pages site, e.g.
// https://gitlab.com/group/sub/repo -> https://group.gitlab.io/sub/repo.
// Other URLs are returned unchanged.
func Homepage(repository string) string {
	host := GitHost(repository)
	if host == HostNone {
		return repository
	}

	u, err := url.Parse(repository)
	if err != nil {
		return repository
	}

	parts := strings.Split(strings.Trim(strings.TrimSuffix(u.Path, ".git"), "/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		return repository
	}

	return "https://" + parts[0] + "." + host + ".io/" + strings.Join(parts[1:], "/")
}
