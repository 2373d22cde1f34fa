package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DevanshuTiwaskar/portfolio/internal/repository"
)

// OriginPolicy decides which browser origins may call the API.
type OriginPolicy struct {
	// Allowed lists exact origins, e.g. "http://localhost:5173".
	Allowed []string
	// Suffixes lists accepted origin suffixes, e.g. ".vercel.app" for preview deploys.
	Suffixes []string
}

// Allows reports whether a request carrying the given Origin header is accepted.
// Requests without an Origin (curl, same-origin, server-to-server) always are.
func (p OriginPolicy) Allows(origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range p.Allowed {
		if o == origin {
			return true
		}
	}
	for _, s := range p.Suffixes {
		if strings.HasSuffix(origin, s) {
			return true
		}
	}
	return false
}

type Handler struct {
	db      repository.DB
	origins OriginPolicy
}

func New(db repository.DB, origins OriginPolicy) *Handler {
	return &Handler{db: db, origins: origins}
}

// Root is the plain-text liveness endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Backend is running!"))
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !h.origins.Allows(origin) {
			slog.Warn("CORS: origin not allowed", "origin", origin, "path", r.URL.Path)
			writeJSON(w, http.StatusForbidden, messageResponse{Message: "Not allowed by CORS"})
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
