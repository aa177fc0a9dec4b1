package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

func getInstallation(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := uc.GetInstallationDetail(r.Context(), chi.URLParam(r, "idOrLogin"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func processInstallation(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idOrLogin := chi.URLParam(r, "idOrLogin")
		logging.From(r.Context()).Info("Admin reconciliation requested", slog.String("installation", idOrLogin))

		result, err := uc.ReconcileInstallationByIDOrLogin(r.Context(), idOrLogin)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo, err := uc.GetRepositoryByFullName(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, repo)
	}
}

func processRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, name := chi.URLParam(r, "owner"), chi.URLParam(r, "repo")
		logging.From(r.Context()).Info("Admin repository schedule requested",
			slog.String("owner", owner),
			slog.String("repo", name),
		)

		repo, err := uc.ScheduleRepositoryByFullName(r.Context(), owner, name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, repo)
	}
}
