package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/errutil"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/octosched/pkg/utils/metrics"
)

type Server struct {
	mux *chi.Mux
}

// Dispatcher runs webhook processing after the response is written. The default starts a
// goroutine with a context detached from the request.
type Dispatcher func(ctx context.Context, fn func(ctx context.Context))

func goDispatch(ctx context.Context, fn func(ctx context.Context)) {
	go fn(logging.Detach(ctx))
}

type config struct {
	ghSecret   types.GitHubAppSecret
	adminToken string
	dispatch   Dispatcher
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithAdminToken requires "Authorization: Bearer <token>" on every /admin route.
func WithAdminToken(token string) Option {
	return func(cfg *config) {
		cfg.adminToken = token
	}
}

func WithDispatcher(d Dispatcher) Option {
	return func(cfg *config) {
		cfg.dispatch = d
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		dispatch: goDispatch,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github/app", handleGitHubAppWebhook(uc, cfg))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(adminAuth(cfg.adminToken))

		r.Route("/installation/{idOrLogin}", func(r chi.Router) {
			r.Get("/", getInstallation(uc))
			r.Get("/process", processInstallation(uc))
			r.Post("/process", processInstallation(uc))
		})
		r.Route("/repository/{owner}/{repo}", func(r chi.Router) {
			r.Get("/", getRepository(uc))
			r.Get("/process", processRepository(uc))
			r.Post("/process", processRepository(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		code = http.StatusInternalServerError
		body = []byte(`{"error":"failed to marshal response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

// writeError maps not found to 404 and invalid input to 400. Everything else is reported and
// answered with 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, types.ErrValidationFailed):
		code = http.StatusBadRequest
	default:
		errutil.HandleError(r.Context(), "admin request failed", err)
	}

	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func adminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
