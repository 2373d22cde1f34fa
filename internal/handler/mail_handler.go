package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/DevanshuTiwaskar/portfolio/internal/mailer"
)

const testSendTimeout = 15 * time.Second

// MailHandler exposes an operator check of the email configuration.
type MailHandler struct {
	sender     mailer.Sender
	adminEmail string
	from       string
}

// NewMailHandler creates a MailHandler sending as from to adminEmail.
func NewMailHandler(sender mailer.Sender, adminEmail, from string) *MailHandler {
	return &MailHandler{sender: sender, adminEmail: adminEmail, from: from}
}

type testSendResponse struct {
	OK       bool           `json:"ok"`
	Response *mailer.Result `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// TestSend handles GET /api/test-send by mailing the admin address.
func (h *MailHandler) TestSend(w http.ResponseWriter, r *http.Request) {
	if h.adminEmail == "" {
		writeJSON(w, http.StatusInternalServerError, testSendResponse{Error: "ADMIN_EMAIL not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), testSendTimeout)
	defer cancel()

	res, err := h.sender.Send(ctx, mailer.Message{
		From:    h.from,
		To:      h.adminEmail,
		Subject: "Portfolio backend test email",
		HTML:    "<p>This is a test email from the portfolio backend.</p>",
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, testSendResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, testSendResponse{OK: true, Response: &res})
}
