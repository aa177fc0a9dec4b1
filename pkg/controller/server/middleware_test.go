package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/controller/server"
	"github.com/m-mizutani/octosched/pkg/domain/mock"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

func TestPreProcess(t *testing.T) {
	t.Run("request id is shared by context and response header", func(t *testing.T) {
		var captured context.Context
		srv := server.New(&mock.UseCaseMock{})
		srv.Mux().HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			captured = r.Context()
			w.WriteHeader(http.StatusTeapot)
		})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		gt.V(t, rec.Code).Equal(http.StatusTeapot)
		reqID, _ := logging.CtxRequestID(captured)
		gt.V(t, rec.Header().Get("X-Request-ID")).Equal(string(reqID))
		gt.False(t, logging.From(captured) == logging.From(context.Background()))
	})

	t.Run("status defaults to 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		srv.Mux().HandleFunc("/noheader", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/noheader", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})
}
