package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/vibecheck/pkg/domain/model"
)

type UseCase interface {
	CollectRepoContext(ctx context.Context, input *model.CollectRepoContextInput) (*model.RepoContext, error)
	AnalyzeVibe(ctx context.Context, repoCtx *model.RepoContext) (*model.VibeAnalysisResult, error)
	RunVibeCheck(ctx context.Context, input *model.VibeCheckInput) (*model.VibeCheckReport, error)
}
