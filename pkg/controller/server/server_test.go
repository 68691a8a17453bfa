package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/vibecheck/pkg/controller/server"
	"github.com/secmon-lab/vibecheck/pkg/domain/mock"
	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/infra"
	"github.com/secmon-lab/vibecheck/pkg/usecase"
)

func postAnalyze(t *testing.T, srv *server.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := server.New(usecase.New(infra.New()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestAnalyze(t *testing.T) {
	t.Run("completed report", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			RunVibeCheckFunc: func(ctx context.Context, input *model.VibeCheckInput) (*model.VibeCheckReport, error) {
				gt.V(t, input.URL).Equal("https://github.com/acme/widget")
				gt.V(t, input.Token).Equal(types.GitHubToken("ghp_test"))
				gt.True(t, input.OnStatus != nil)
				input.OnStatus(types.AnalysisStatusCollecting)

				_, hasDeadline := ctx.Deadline()
				gt.True(t, hasDeadline)

				return &model.VibeCheckReport{
					Repo:   model.RepositoryIdentifier{Owner: "acme", Name: "widget"},
					Status: types.AnalysisStatusCompleted,
					Result: model.VibeAnalysisResult{
						Score:           81,
						Verdict:         "Certified Vibe Coded",
						Reasoning:       "Commits are uniform.",
						Evidence:        []string{".cursorrules present"},
						AIToolsDetected: []string{"Cursor"},
					},
				}, nil
			},
		}
		srv := server.New(mockUC, server.WithAnalyzeTimeout(time.Minute))

		rec := postAnalyze(t, srv, `{"url":"https://github.com/acme/widget","token":"ghp_test"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var resp struct {
			Repo struct {
				Owner string `json:"owner"`
				Name  string `json:"name"`
			} `json:"repo"`
			Status string                   `json:"status"`
			Result model.VibeAnalysisResult `json:"result"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Status).Equal("completed")
		gt.V(t, resp.Result.Score).Equal(81)
		gt.V(t, resp.Result.AIToolsDetected).Equal([]string{"Cursor"})
		gt.A(t, mockUC.RunVibeCheckCalls()).Length(1)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		rec := postAnalyze(t, srv, `{"url":`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, mockUC.RunVibeCheckCalls()).Length(0)
	})

	t.Run("body too large", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC, server.WithMaxBodySize(16))

		rec := postAnalyze(t, srv, `{"url":"https://github.com/acme/widget"}`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, mockUC.RunVibeCheckCalls()).Length(0)
	})

	t.Run("error is returned with user message", func(t *testing.T) {
		testCases := []struct {
			name    string
			err     error
			code    int
			message string
		}{
			{
				name:    "invalid URL",
				err:     goerr.Wrap(types.ErrInvalidRepoURL, "bad"),
				code:    http.StatusBadRequest,
				message: usecase.MsgInvalidRepoURL,
			},
			{
				name:    "not found",
				err:     goerr.Wrap(types.ErrRepoNotFound, "missing"),
				code:    http.StatusNotFound,
				message: usecase.MsgRepoNotFound,
			},
			{
				name:    "rate limited",
				err:     goerr.Wrap(types.ErrRateLimited, "limited"),
				code:    http.StatusTooManyRequests,
				message: usecase.MsgRateLimited,
			},
			{
				name:    "other GitHub failure",
				err:     goerr.Wrap(&types.GitHubAPIError{StatusCode: 503, Status: "503 Service Unavailable"}, "down"),
				code:    http.StatusBadGateway,
				message: "GitHub Error: 503 Service Unavailable",
			},
			{
				name:    "invalid analysis",
				err:     goerr.Wrap(types.ErrInvalidAnalysis, "no score"),
				code:    http.StatusBadGateway,
				message: usecase.MsgInvalidAnalysis,
			},
			{
				name:    "unexpected",
				err:     goerr.New("boom"),
				code:    http.StatusInternalServerError,
				message: usecase.MsgUnexpected,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockUC := &mock.UseCaseMock{
					RunVibeCheckFunc: func(ctx context.Context, input *model.VibeCheckInput) (*model.VibeCheckReport, error) {
						return nil, tc.err
					},
				}
				srv := server.New(mockUC)

				rec := postAnalyze(t, srv, `{"url":"https://github.com/acme/widget"}`)
				gt.V(t, rec.Code).Equal(tc.code)

				var resp struct {
					Error string `json:"error"`
				}
				gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				gt.V(t, resp.Error).Equal(tc.message)
			})
		}
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusMethodNotAllowed)
	})
}

func TestErrorToStatusCode(t *testing.T) {
	gt.V(t, server.ErrorToStatusCodeForTest(types.ErrInvalidRepoURL)).Equal(http.StatusBadRequest)
	gt.V(t, server.ErrorToStatusCodeForTest(context.DeadlineExceeded)).Equal(http.StatusInternalServerError)
}

func TestWriteJSON(t *testing.T) {
	t.Run("encodable value", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.WriteJSONForTest(w, http.StatusOK, map[string]int{"score": 10})
		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.V(t, w.Header().Get("Content-Type")).Equal("application/json")
		gt.S(t, w.Body.String()).Equal(`{"score":10}`)
	})

	t.Run("unencodable value falls back to JSON error", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.WriteJSONForTest(w, http.StatusOK, make(chan int))
		gt.V(t, w.Code).Equal(http.StatusInternalServerError)
		gt.V(t, w.Header().Get("Content-Type")).Equal("application/json")

		var resp struct {
			Error string `json:"error"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		gt.V(t, resp.Error).Equal(usecase.MsgUnexpected)
	})
}
