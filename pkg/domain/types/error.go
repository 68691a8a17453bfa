package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	ErrInvalidRepoURL = goerr.New("invalid repository URL")
	ErrRateLimited    = goerr.New("GitHub API rate limit exceeded")
	ErrRepoNotFound   = goerr.New("repository not found or private")

	ErrInvalidAnalysis = goerr.New("invalid analysis response")
)

// GitHubAPIError is a non-success response of the GitHub API that is neither rate limit nor not found.
type GitHubAPIError struct {
	StatusCode int
	Status     string
}

func (x *GitHubAPIError) Error() string {
	return "GitHub API error: " + x.Status
}
