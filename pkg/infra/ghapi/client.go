package ghapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vibecheck/pkg/domain/interfaces"
	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

type Client struct {
	baseURL   *url.URL
	token     types.GitHubToken
	app       *appCredential
	transport http.RoundTripper
}

type appCredential struct {
	id        types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client) error

// WithToken sets a default token used when a request does not carry its own token
func WithToken(token types.GitHubToken) Option {
	return func(x *Client) error {
		x.token = token
		return nil
	}
}

// WithGitHubApp authenticates requests as a GitHub App installation when no token is available
func WithGitHubApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(x *Client) error {
		if appID == 0 {
			return goerr.Wrap(types.ErrInvalidOption, "appID is empty")
		}
		if installID == 0 {
			return goerr.Wrap(types.ErrInvalidOption, "installID is empty")
		}
		if pem == "" {
			return goerr.Wrap(types.ErrInvalidOption, "pem is empty")
		}

		x.app = &appCredential{
			id:        appID,
			installID: installID,
			pem:       pem,
		}
		return nil
	}
}

// WithBaseURL replaces the API endpoint, e.g. for GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", baseURL), goerr.V("error", err.Error()))
		}
		x.baseURL = u
		return nil
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) error {
		x.transport = tr
		return nil
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		transport: http.DefaultTransport,
	}

	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// tokenTransport attaches a bearer token to every request
type tokenTransport struct {
	base  http.RoundTripper
	token types.GitHubToken
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	newReq := req.Clone(req.Context())
	newReq.Header.Set("Authorization", "Bearer "+string(x.token))
	return x.base.RoundTrip(newReq)
}

func (x *Client) buildGithubHTTPClient(token types.GitHubToken) (*http.Client, error) {
	if token == "" {
		token = x.token
	}

	switch {
	case token != "":
		return &http.Client{Transport: &tokenTransport{base: x.transport, token: token}}, nil

	case x.app != nil:
		itr, err := ghinstallation.New(x.transport, int64(x.app.id), int64(x.app.installID), []byte(x.app.pem))
		if err != nil {
			return nil, goerr.Wrap(err, "Failed to create github app transport")
		}
		if x.baseURL != nil {
			itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
		}
		return &http.Client{Transport: itr}, nil

	default:
		return &http.Client{Transport: x.transport}, nil
	}
}

// buildGithubClient rejects identifiers that would escape /repos/{owner}/{repo} before any request is built
func (x *Client) buildGithubClient(input *interfaces.GitHubRepoInput) (*github.Client, error) {
	if err := input.Repo.Validate(); err != nil {
		return nil, err
	}

	httpClient, err := x.buildGithubHTTPClient(input.Token)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client, nil
}

func repoValues(input *interfaces.GitHubRepoInput) []goerr.Option {
	return []goerr.Option{
		goerr.V("owner", input.Repo.Owner),
		goerr.V("repo", input.Repo.Name),
	}
}

// classifyError converts a failure of a mandatory request into one of rate limit, not found or other API error
func classifyError(err error, resp *github.Response, input *interfaces.GitHubRepoInput) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return goerr.Wrap(types.ErrRateLimited, "rate limited by GitHub API", repoValues(input)...)
	}

	var httpResp *http.Response
	if resp != nil {
		httpResp = resp.Response
	}
	var errResp *github.ErrorResponse
	if httpResp == nil && errors.As(err, &errResp) {
		httpResp = errResp.Response
	}
	if httpResp == nil {
		return goerr.Wrap(err, "failed to request GitHub API", repoValues(input)...)
	}

	switch httpResp.StatusCode {
	case http.StatusForbidden, http.StatusTooManyRequests:
		return goerr.Wrap(types.ErrRateLimited, "rate limited by GitHub API",
			append(repoValues(input), goerr.V("status", httpResp.StatusCode))...)

	case http.StatusNotFound:
		return goerr.Wrap(types.ErrRepoNotFound, "repository not found",
			append(repoValues(input), goerr.V("status", httpResp.StatusCode))...)

	default:
		apiErr := &types.GitHubAPIError{
			StatusCode: httpResp.StatusCode,
			Status:     httpResp.Status,
		}
		return goerr.Wrap(apiErr, "GitHub API returned error",
			append(repoValues(input), goerr.V("error", err.Error()))...)
	}
}

func (x *Client) GetRepository(ctx context.Context, input *interfaces.GitHubRepoInput) (*model.RepoMetadata, error) {
	logging.From(ctx).Debug("Sending GetRepository request", slog.Any("input", input))

	client, err := x.buildGithubClient(input)
	if err != nil {
		return nil, err
	}

	repo, resp, err := client.Repositories.Get(ctx, input.Repo.Owner, input.Repo.Name)
	if err != nil {
		return nil, classifyError(err, resp, input)
	}

	return &model.RepoMetadata{
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Language:      repo.GetLanguage(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		Topics:        repo.Topics,
		DefaultBranch: repo.GetDefaultBranch(),
		License:       repo.GetLicense().GetSPDXID(),
		HTMLURL:       repo.GetHTMLURL(),
		Fork:          repo.GetFork(),
		Archived:      repo.GetArchived(),
		CreatedAt:     repo.GetCreatedAt().Time,
		PushedAt:      repo.GetPushedAt().Time,
	}, nil
}

func (x *Client) ListCommits(ctx context.Context, input *interfaces.GitHubRepoInput, limit int) ([]model.CommitSummary, error) {
	client, err := x.buildGithubClient(input)
	if err != nil {
		return nil, err
	}

	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: limit},
	}
	commits, _, err := client.Repositories.ListCommits(ctx, input.Repo.Owner, input.Repo.Name, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", repoValues(input)...)
	}

	if len(commits) > limit {
		commits = commits[:limit]
	}

	summaries := make([]model.CommitSummary, 0, len(commits))
	for _, c := range commits {
		var date string
		if d := c.GetCommit().GetAuthor().GetDate(); !d.IsZero() {
			date = d.UTC().Format(time.RFC3339)
		}

		summaries = append(summaries, model.CommitSummary{
			Message:    c.GetCommit().GetMessage(),
			AuthorName: c.GetCommit().GetAuthor().GetName(),
			Date:       date,
		})
	}

	return summaries, nil
}

func (x *Client) ListRootFiles(ctx context.Context, input *interfaces.GitHubRepoInput) ([]string, error) {
	client, err := x.buildGithubClient(input)
	if err != nil {
		return nil, err
	}

	_, dir, _, err := client.Repositories.GetContents(ctx, input.Repo.Owner, input.Repo.Name, "", nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get root contents", repoValues(input)...)
	}
	if dir == nil {
		return nil, goerr.New("root contents is not a directory listing", repoValues(input)...)
	}

	names := make([]string, 0, len(dir))
	for _, entry := range dir {
		names = append(names, entry.GetName())
	}

	return names, nil
}

func (x *Client) GetFileContent(ctx context.Context, input *interfaces.GitHubRepoInput, path string) (string, error) {
	client, err := x.buildGithubClient(input)
	if err != nil {
		return "", err
	}

	file, _, _, err := client.Repositories.GetContents(ctx, input.Repo.Owner, input.Repo.Name, path, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get file contents", append(repoValues(input), goerr.V("path", path))...)
	}

	return decodeContent(file, append(repoValues(input), goerr.V("path", path)))
}

func (x *Client) GetReadme(ctx context.Context, input *interfaces.GitHubRepoInput) (string, error) {
	client, err := x.buildGithubClient(input)
	if err != nil {
		return "", err
	}

	readme, _, err := client.Repositories.GetReadme(ctx, input.Repo.Owner, input.Repo.Name, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get README", repoValues(input)...)
	}

	return decodeContent(readme, repoValues(input))
}

func decodeContent(content *github.RepositoryContent, values []goerr.Option) (string, error) {
	if content == nil || content.Content == nil {
		return "", goerr.New("no content in response", values...)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode content", append(values, goerr.V("encoding", content.GetEncoding()))...)
	}

	return decoded, nil
}
