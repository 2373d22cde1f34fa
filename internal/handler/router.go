package handler

import "net/http"

// NewRouter mounts every endpoint and wraps them in the middleware chain:
// request logging, security headers, then CORS.
func NewRouter(h *Handler, contact *ContactHandler, mail *MailHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/test-send", mail.TestSend)
	mux.HandleFunc("POST /api/contact", contact.Submit)

	return RequestLogger(SecurityHeaders(h.CORS(mux)))
}
