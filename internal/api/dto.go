package api

import (
	"encoding/json"

	"github.com/starford/sowilo/internal/auditservice"
	"github.com/starford/sowilo/internal/storage"
)

// AnalyzePageRequest is the request body for a URL audit.
type AnalyzePageRequest struct {
	URL string `json:"url"`
	auditservice.Options
}

// AnalyzeContentRequest is the request body for a markdown audit.
type AnalyzeContentRequest struct {
	Content string `json:"content"`
	auditservice.Options
}

// AnalyzeSchemaRequest is the request body for a JSON-LD validation. Schema
// holds the raw payload: a node object, an array of nodes, or a document with
// an @graph array.
type AnalyzeSchemaRequest struct {
	Schema json.RawMessage `json:"schema"`
}

// DocumentListResponse wraps a docs directory listing.
type DocumentListResponse struct {
	Documents []storage.DocInfo `json:"documents"`
	Total     int               `json:"total"`
}

// PageAudit is the full page report (aliased from the domain layer).
type PageAudit = auditservice.PageAudit

// ContentAudit is the markdown report (aliased from the domain layer).
type ContentAudit = auditservice.ContentAudit

// SchemaAudit is the JSON-LD report (aliased from the domain layer).
type SchemaAudit = auditservice.SchemaAudit
