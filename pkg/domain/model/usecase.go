package model

import (
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
)

type CollectRepoContextInput struct {
	Repo  RepositoryIdentifier
	Token types.GitHubToken
}

func (x *CollectRepoContextInput) Validate() error {
	return x.Repo.Validate()
}

// StatusFunc is called at each phase boundary of a vibe check
type StatusFunc func(status types.AnalysisStatus)

type VibeCheckInput struct {
	URL   string
	Token types.GitHubToken

	// OnStatus is optional
	OnStatus StatusFunc
}

// VibeCheckReport is a completed vibe check. It is never built from a partial result.
type VibeCheckReport struct {
	Repo   RepositoryIdentifier `json:"repo" yaml:"repo"`
	Status types.AnalysisStatus `json:"status" yaml:"status"`
	Result VibeAnalysisResult   `json:"result" yaml:"result"`
}
