package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/secmon-lab/vibecheck/pkg/domain/interfaces"
	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

// CollectRepoContext assembles RepoContext of a repository. Only failure of repository metadata request is returned as error.
// Commits, root listing, tool config files and README are best-effort: a failure leaves the field empty (or nil for README) and is only logged.
func (x *UseCase) CollectRepoContext(ctx context.Context, input *model.CollectRepoContextInput) (*model.RepoContext, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx).With(
		slog.String("owner", input.Repo.Owner),
		slog.String("repo", input.Repo.Name),
	)
	ctx = logging.With(ctx, logger)

	ghInput := &interfaces.GitHubRepoInput{
		Repo:  input.Repo,
		Token: input.Token,
	}

	// Other requests are meaningless for a repository that can not be retrieved
	metadata, err := x.clients.GitHub().GetRepository(ctx, ghInput)
	if err != nil {
		return nil, err
	}

	var (
		commits     []model.CommitSummary
		fileNames   []string
		toolConfigs map[string]string
		readme      *string
	)

	// Each goroutine writes only its own variables
	var eg errgroup.Group
	eg.Go(func() error {
		commits = x.collectCommits(ctx, ghInput)
		return nil
	})
	eg.Go(func() error {
		fileNames = x.collectRootFiles(ctx, ghInput)
		toolConfigs = x.collectToolConfigs(ctx, ghInput, fileNames)
		return nil
	})
	eg.Go(func() error {
		readme = x.collectReadme(ctx, ghInput)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to collect repository context")
	}

	logger.Info("Collected repository context",
		slog.Int("commits", len(commits)),
		slog.Int("files", len(fileNames)),
		slog.Int("tool_configs", len(toolConfigs)),
		slog.Bool("readme", readme != nil),
	)

	return &model.RepoContext{
		Repo:               input.Repo,
		Metadata:           *metadata,
		FileNames:          fileNames,
		RecentCommits:      commits,
		ReadmeExcerpt:      readme,
		ToolConfigContents: toolConfigs,
	}, nil
}

func (x *UseCase) collectCommits(ctx context.Context, input *interfaces.GitHubRepoInput) []model.CommitSummary {
	commits, err := x.clients.GitHub().ListCommits(ctx, input, model.MaxRecentCommits)
	if err != nil {
		logging.From(ctx).Warn("Failed to list recent commits", slog.Any("error", err))
		return []model.CommitSummary{}
	}
	if commits == nil {
		return []model.CommitSummary{}
	}
	if len(commits) > model.MaxRecentCommits {
		commits = commits[:model.MaxRecentCommits]
	}
	return commits
}

func (x *UseCase) collectRootFiles(ctx context.Context, input *interfaces.GitHubRepoInput) []string {
	files, err := x.clients.GitHub().ListRootFiles(ctx, input)
	if err != nil {
		logging.From(ctx).Warn("Failed to list root files", slog.Any("error", err))
		return []string{}
	}
	if files == nil {
		return []string{}
	}
	return files
}

// collectToolConfigs fetches watch-list files that exist in fileNames. Files not in the listing are never requested.
func (x *UseCase) collectToolConfigs(ctx context.Context, input *interfaces.GitHubRepoInput, fileNames []string) map[string]string {
	contents := make(map[string]string)

	for _, name := range model.ToolConfigWatchList {
		if !slices.Contains(fileNames, name) {
			continue
		}

		content, err := x.clients.GitHub().GetFileContent(ctx, input, name)
		if err != nil {
			logging.From(ctx).Warn("Failed to fetch tool config file",
				slog.String("path", name),
				slog.Any("error", err),
			)
			continue
		}

		contents[name] = content
	}

	return contents
}

func (x *UseCase) collectReadme(ctx context.Context, input *interfaces.GitHubRepoInput) *string {
	readme, err := x.clients.GitHub().GetReadme(ctx, input)
	if err != nil {
		logging.From(ctx).Warn("Failed to fetch README", slog.Any("error", err))
		return nil
	}

	excerpt := model.TruncateReadme(readme)
	return &excerpt
}
