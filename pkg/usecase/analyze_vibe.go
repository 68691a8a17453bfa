package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/vibecheck/pkg/domain/interfaces"
	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

// AnalyzeVibe asks LLM to judge AI authorship likelihood of the repository. A single request is sent and
// the response must match the result schema completely, otherwise no result is returned.
func (x *UseCase) AnalyzeVibe(ctx context.Context, repoCtx *model.RepoContext) (*model.VibeAnalysisResult, error) {
	if x.clients.LLM() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "LLM client is not configured")
	}

	prompt, err := BuildPrompt(repoCtx)
	if err != nil {
		return nil, err
	}

	raw, err := x.clients.LLM().Generate(ctx, &interfaces.GenerateInput{
		Prompt: prompt,
		Schema: vibeAnalysisSchema,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate vibe analysis", goerr.V("repo", repoCtx.Repo.String()))
	}

	result, err := model.ParseVibeAnalysis(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse vibe analysis", goerr.V("repo", repoCtx.Repo.String()))
	}

	logging.From(ctx).Info("Analyzed repository vibe",
		slog.String("repo", repoCtx.Repo.String()),
		slog.Int("score", result.Score),
		slog.String("verdict", result.Verdict),
	)

	return result, nil
}
