package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/vibecheck/pkg/domain/model"
)

// DetectRepoURL returns the GitHub web URL of the origin remote of the git repository that contains dir
func DetectRepoURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin", goerr.V("dir", dir))
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", goerr.New("no remote URL found", goerr.V("dir", dir))
	}

	id, err := parseRemoteURL(urls[0])
	if err != nil {
		return "", err
	}

	return model.RepoURL(*id), nil
}

// parseRemoteURL accepts both scp-like (git@github.com:owner/repo.git) and URL style remotes
func parseRemoteURL(remote string) (*model.RepositoryIdentifier, error) {
	s := strings.TrimSpace(remote)
	if !strings.Contains(s, "://") {
		if at := strings.Index(s, "@"); at >= 0 {
			s = s[at+1:]
		}
		host, path, ok := strings.Cut(s, ":")
		if !ok {
			return nil, goerr.New("unsupported git remote URL", goerr.V("url", remote))
		}
		s = "ssh://" + host + "/" + path
	}

	id, ok := model.ParseRepoURL(s)
	if !ok {
		return nil, goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", remote))
	}
	id.Name = strings.TrimSuffix(id.Name, ".git")
	if id.Name == "" {
		return nil, goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", remote))
	}

	return id, nil
}
