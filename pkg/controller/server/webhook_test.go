package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/controller/server"
	"github.com/m-mizutani/octosched/pkg/domain/mock"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

const testSecret = types.GitHubAppSecret("webhook-secret")

func inline(ctx context.Context, fn func(ctx context.Context)) {
	fn(ctx)
}

func sendWebhook(t *testing.T, srv *server.Server, eventType string, body []byte, secret types.GitHubAppSecret) *httptest.ResponseRecorder {
	t.Helper()

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	req.Header.Set("X-GitHub-Delivery", "delivery-1")
	req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestInstallationWebhook(t *testing.T) {
	t.Run("created is accepted and dispatched", func(t *testing.T) {
		var received *model.InstallationEvent
		uc := &mock.UseCaseMock{
			HandleInstallationEventFunc: func(ctx context.Context, event *model.InstallationEvent) error {
				received = event
				return nil
			},
		}
		srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

		body := []byte(`{"action":"created","installation":{"id":42,"app_id":7,"account":{"id":100,"login":"octo-org","type":"Organization"},"repository_selection":"selected"}}`)
		rec := sendWebhook(t, srv, "installation", body, testSecret)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.V(t, received).NotEqual(nil)
		gt.V(t, received.Action).Equal(types.InstallationActionCreated)
		gt.V(t, received.Installation.ID).Equal(types.GitHubAppInstallID(42))
		gt.V(t, received.Installation.Account.Login).Equal("octo-org")
		gt.V(t, received.Installation.RepositorySelection).Equal(types.RepositorySelection("selected"))
		gt.False(t, received.Installation.IsSuspended())
	})

	t.Run("suspend carries suspension fields", func(t *testing.T) {
		var received *model.InstallationEvent
		uc := &mock.UseCaseMock{
			HandleInstallationEventFunc: func(ctx context.Context, event *model.InstallationEvent) error {
				received = event
				return nil
			},
		}
		srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

		body := []byte(`{"action":"suspend","installation":{"id":42,"account":{"login":"octo-org"},"suspended_at":"2024-01-02T03:04:05Z","suspended_by":{"login":"admin"}}}`)
		rec := sendWebhook(t, srv, "installation", body, testSecret)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.True(t, received.Installation.IsSuspended())
		gt.V(t, received.Installation.SuspendedBy.Login).Equal("admin")
	})

	t.Run("unknown action is ignored", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

		body := []byte(`{"action":"whatever","installation":{"id":42}}`)
		rec := sendWebhook(t, srv, "installation", body, testSecret)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, uc.HandleInstallationEventCalls()).Length(0)
	})

	t.Run("handler failure does not change the response", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			HandleInstallationEventFunc: func(ctx context.Context, event *model.InstallationEvent) error {
				return goerr.Wrap(types.ErrAuthFailed, "revoked")
			},
		}
		srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

		body := []byte(`{"action":"deleted","installation":{"id":42,"account":{"login":"octo-org"}}}`)
		rec := sendWebhook(t, srv, "installation", body, testSecret)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.A(t, uc.HandleInstallationEventCalls()).Length(1)
	})
}

func TestInstallationRepositoriesWebhook(t *testing.T) {
	var received *model.InstallationRepositoriesEvent
	uc := &mock.UseCaseMock{
		HandleInstallationRepositoriesEventFunc: func(ctx context.Context, event *model.InstallationRepositoriesEvent) error {
			received = event
			return nil
		},
	}
	srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

	body := []byte(`{"action":"removed","installation":{"id":42,"account":{"login":"octo-org"}},"repositories_added":[],"repositories_removed":[{"id":1,"full_name":"octo-org/a"},{"id":2,"full_name":"octo-org/b"}]}`)
	rec := sendWebhook(t, srv, "installation_repositories", body, testSecret)

	gt.V(t, rec.Code).Equal(http.StatusAccepted)
	gt.V(t, received.Action).Equal(types.InstallationRepositoriesActionRemoved)
	gt.A(t, received.Added).Length(0)
	gt.V(t, received.Removed).Equal([]model.RepositoryRef{
		{ID: 1, FullName: "octo-org/a"},
		{ID: 2, FullName: "octo-org/b"},
	})
}

func TestInstallationTargetWebhook(t *testing.T) {
	var received *model.InstallationTargetEvent
	uc := &mock.UseCaseMock{
		HandleInstallationTargetEventFunc: func(ctx context.Context, event *model.InstallationTargetEvent) error {
			received = event
			return nil
		},
	}
	srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

	body := []byte(`{"action":"renamed","account":{"id":100,"login":"new-org","type":"Organization"},"changes":{"login":{"from":"old-org"}},"installation":{"id":42},"target_type":"Organization"}`)
	rec := sendWebhook(t, srv, "installation_target", body, testSecret)

	gt.V(t, rec.Code).Equal(http.StatusAccepted)
	gt.V(t, received.Installation.ID).Equal(types.GitHubAppInstallID(42))
	gt.V(t, received.Installation.Account.Login).Equal("new-org")
	gt.V(t, received.OldLogin).Equal("old-org")
}

func TestInstallationTargetWebhookVariants(t *testing.T) {
	uc := &mock.UseCaseMock{}
	srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

	t.Run("unknown action is ignored", func(t *testing.T) {
		body := []byte(`{"action":"transferred","installation":{"id":42}}`)
		rec := sendWebhook(t, srv, "installation_target", body, testSecret)
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("missing installation", func(t *testing.T) {
		body := []byte(`{"action":"renamed","account":{"id":100,"login":"new-org"}}`)
		rec := sendWebhook(t, srv, "installation_target", body, testSecret)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("broken payload", func(t *testing.T) {
		rec := sendWebhook(t, srv, "installation_target", []byte(`{"action":`), testSecret)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	gt.A(t, uc.HandleInstallationTargetEventCalls()).Length(0)
}

func TestWebhookRejected(t *testing.T) {
	uc := &mock.UseCaseMock{}
	srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(inline))

	t.Run("bad signature", func(t *testing.T) {
		body := []byte(`{"action":"created","installation":{"id":42}}`)
		rec := sendWebhook(t, srv, "installation", body, "other-secret")
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("installation event without installation", func(t *testing.T) {
		body := []byte(`{"action":"created"}`)
		rec := sendWebhook(t, srv, "installation", body, testSecret)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unrelated event is ignored", func(t *testing.T) {
		body := []byte(`{"ref":"refs/heads/main"}`)
		rec := sendWebhook(t, srv, "push", body, testSecret)
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	gt.A(t, uc.HandleInstallationEventCalls()).Length(0)
}
