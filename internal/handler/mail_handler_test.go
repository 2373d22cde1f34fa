package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DevanshuTiwaskar/portfolio/internal/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	sendFunc func(ctx context.Context, msg mailer.Message) (mailer.Result, error)
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) (mailer.Result, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, msg)
	}
	return mailer.Result{ID: "email-1"}, nil
}

func TestMailHandler_TestSend_OK(t *testing.T) {
	var got mailer.Message
	h := NewMailHandler(&mockSender{
		sendFunc: func(ctx context.Context, msg mailer.Message) (mailer.Result, error) {
			got = msg
			return mailer.Result{ID: "email-1"}, nil
		},
	}, "me@example.com", "Portfolio Contact <no-reply@example.com>")

	rec := httptest.NewRecorder()
	h.TestSend(rec, httptest.NewRequest(http.MethodGet, "/api/test-send", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"response":{"id":"email-1"}}`, rec.Body.String())
	assert.Equal(t, "me@example.com", got.To)
	assert.Equal(t, "Portfolio Contact <no-reply@example.com>", got.From)
}

func TestMailHandler_TestSend_NoopSender(t *testing.T) {
	h := NewMailHandler(mailer.NoopSender{}, "me@example.com", "x@example.com")

	rec := httptest.NewRecorder()
	h.TestSend(rec, httptest.NewRequest(http.MethodGet, "/api/test-send", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"response":{"id":"skipped","skipped":true}}`, rec.Body.String())
}

func TestMailHandler_TestSend_ProviderError(t *testing.T) {
	h := NewMailHandler(&mockSender{
		sendFunc: func(ctx context.Context, msg mailer.Message) (mailer.Result, error) {
			return mailer.Result{}, errors.New("invalid api key")
		},
	}, "me@example.com", "x@example.com")

	rec := httptest.NewRecorder()
	h.TestSend(rec, httptest.NewRequest(http.MethodGet, "/api/test-send", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp testSendResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "invalid api key", resp.Error)
}

func TestMailHandler_TestSend_NoAdminEmail(t *testing.T) {
	h := NewMailHandler(&mockSender{}, "", "x@example.com")

	rec := httptest.NewRecorder()
	h.TestSend(rec, httptest.NewRequest(http.MethodGet, "/api/test-send", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"ADMIN_EMAIL not configured"}`, rec.Body.String())
}
