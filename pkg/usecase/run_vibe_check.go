package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

// RunVibeCheck parses repository URL, collects repository context and analyzes it, in this order.
// Any failure aborts the whole operation and no partial report is returned.
func (x *UseCase) RunVibeCheck(ctx context.Context, input *model.VibeCheckInput) (*model.VibeCheckReport, error) {
	setStatus := func(status types.AnalysisStatus) {
		logging.From(ctx).Debug("vibe check status changed", slog.String("status", status.String()))
		if input.OnStatus != nil {
			input.OnStatus(status)
		}
	}
	fail := func(err error) (*model.VibeCheckReport, error) {
		setStatus(types.AnalysisStatusError)
		return nil, err
	}

	repo, ok := model.ParseRepoURL(input.URL)
	if !ok {
		return fail(goerr.Wrap(types.ErrInvalidRepoURL, "failed to parse repository URL", goerr.V("url", input.URL)))
	}

	ctx = logging.With(ctx, logging.From(ctx).With(slog.String("target", repo.String())))

	setStatus(types.AnalysisStatusCollecting)
	repoCtx, err := x.CollectRepoContext(ctx, &model.CollectRepoContextInput{
		Repo:  *repo,
		Token: input.Token,
	})
	if err != nil {
		return fail(err)
	}

	setStatus(types.AnalysisStatusAnalyzing)
	result, err := x.AnalyzeVibe(ctx, repoCtx)
	if err != nil {
		return fail(err)
	}

	setStatus(types.AnalysisStatusCompleted)
	return &model.VibeCheckReport{
		Repo:   *repo,
		Status: types.AnalysisStatusCompleted,
		Result: *result,
	}, nil
}
