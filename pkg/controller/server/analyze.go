package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/secmon-lab/vibecheck/pkg/domain/interfaces"
	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/usecase"
	"github.com/secmon-lab/vibecheck/pkg/utils/errutil"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

type analyzeRequest struct {
	URL   string            `json:"url"`
	Token types.GitHubToken `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleAnalyze(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req analyzeRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, cfg.maxBodySize))
		if err := dec.Decode(&req); err != nil {
			logging.From(ctx).Warn("invalid request body", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "Invalid request body."})
			return
		}

		if cfg.analyzeTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.analyzeTimeout)
			defer cancel()
		}

		report, err := uc.RunVibeCheck(ctx, &model.VibeCheckInput{
			URL:   req.URL,
			Token: req.Token,
			OnStatus: func(status types.AnalysisStatus) {
				logging.From(ctx).Info("vibe check progress", slog.String("status", status.String()))
			},
		})
		if err != nil {
			code := errorToStatusCode(err)
			if code >= http.StatusInternalServerError {
				errutil.HandleError(ctx, "vibe check failed", err)
			} else {
				logging.From(ctx).Warn("vibe check rejected", slog.Any("error", err))
			}
			writeJSON(w, code, &errorResponse{Error: usecase.UserMessage(err)})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func errorToStatusCode(err error) int {
	var apiErr *types.GitHubAPIError
	switch {
	case errors.Is(err, types.ErrInvalidRepoURL):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrRepoNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &apiErr), errors.Is(err, types.ErrInvalidAnalysis):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
