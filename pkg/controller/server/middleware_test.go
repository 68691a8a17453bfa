package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/vibecheck/pkg/controller/server"
	"github.com/secmon-lab/vibecheck/pkg/domain/mock"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger and request ID to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		logger := logging.From(capturedCtx)
		gt.V(t, logger == logging.From(context.Background())).Equal(false)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, string(reqID)).Equal(w.Header().Get("X-Request-ID"))
	})

	t.Run("statusCodeLogger keeps status code", func(t *testing.T) {
		testCases := []struct {
			name         string
			handlerFunc  http.HandlerFunc
			expectedCode int
		}{
			{
				name: "explicit 404",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				},
				expectedCode: http.StatusNotFound,
			},
			{
				name: "defaults to 200 when WriteHeader not called",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("ok"))
				},
				expectedCode: http.StatusOK,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				srv := server.New(&mock.UseCaseMock{})
				mux := srv.Mux()
				mux.HandleFunc("/test", tc.handlerFunc)

				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				gt.V(t, w.Code).Equal(tc.expectedCode)
			})
		}
	})
}
