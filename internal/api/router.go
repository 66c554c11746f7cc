package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/sowilo/internal/auditservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *auditservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Analysis.
	r.Post("/analyze/page", h.AnalyzePage)
	r.Post("/analyze/content", h.AnalyzeContent)
	r.Post("/analyze/schema", h.AnalyzeSchema)

	// Stored documents.
	r.Get("/documents", h.ListDocuments)
	r.Get("/documents/*", h.AuditDocument)

	// SSE endpoint (protected by the same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
