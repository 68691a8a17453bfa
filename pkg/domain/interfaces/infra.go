package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub LLM

import (
	"context"

	"google.golang.org/genai"

	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
)

type GitHubRepoInput struct {
	Repo model.RepositoryIdentifier

	// Token overrides the default credential of the client if not empty
	Token types.GitHubToken
}

// GitHub is read-only access to the GitHub REST API. GetRepository classifies failures into
// types.ErrRateLimited, types.ErrRepoNotFound and *types.GitHubAPIError.
type GitHub interface {
	GetRepository(ctx context.Context, input *GitHubRepoInput) (*model.RepoMetadata, error)
	ListCommits(ctx context.Context, input *GitHubRepoInput, limit int) ([]model.CommitSummary, error)
	ListRootFiles(ctx context.Context, input *GitHubRepoInput) ([]string, error)
	GetFileContent(ctx context.Context, input *GitHubRepoInput, path string) (string, error)
	GetReadme(ctx context.Context, input *GitHubRepoInput) (string, error)
}

type GenerateInput struct {
	Prompt string
	Schema *genai.Schema
}

// LLM sends a single prompt and returns the raw text of the response
type LLM interface {
	Generate(ctx context.Context, input *GenerateInput) (string, error)
}
