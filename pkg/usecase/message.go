package usecase

import (
	"errors"

	"github.com/secmon-lab/vibecheck/pkg/domain/types"
)

const (
	MsgInvalidRepoURL  = "Invalid GitHub URL. Please use format: https://github.com/owner/repo"
	MsgRateLimited     = "GitHub API rate limit exceeded. Please provide a token."
	MsgRepoNotFound    = "Repository not found. Check the URL or visibility."
	MsgInvalidAnalysis = "The analysis service returned an unexpected response format."
	MsgUnexpected      = "An unexpected error occurred."
)

// UserMessage converts an error of RunVibeCheck into a single message to be shown to users
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *types.GitHubAPIError
	switch {
	case errors.Is(err, types.ErrInvalidRepoURL):
		return MsgInvalidRepoURL
	case errors.Is(err, types.ErrRateLimited):
		return MsgRateLimited
	case errors.Is(err, types.ErrRepoNotFound):
		return MsgRepoNotFound
	case errors.As(err, &apiErr):
		return "GitHub Error: " + apiErr.Status
	case errors.Is(err, types.ErrInvalidAnalysis):
		return MsgInvalidAnalysis
	default:
		return MsgUnexpected
	}
}
