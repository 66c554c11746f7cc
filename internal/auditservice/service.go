// Package auditservice orchestrates fetching, extraction, and scoring into
// complete audit reports.
package auditservice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/checksum"
	"github.com/starford/sowilo/internal/extract"
	"github.com/starford/sowilo/internal/fetch"
	"github.com/starford/sowilo/internal/instruction"
	"github.com/starford/sowilo/internal/readability"
	"github.com/starford/sowilo/internal/schemaval"
	"github.com/starford/sowilo/internal/seoscore"
	"github.com/starford/sowilo/internal/storage"
	"github.com/starford/sowilo/internal/textmetrics"
)

// Options are the per-request analysis knobs. Empty fields fall back to the
// service defaults.
type Options struct {
	Keyword                string `json:"keyword,omitempty"`
	Audience               string `json:"audience,omitempty"`
	PageType               string `json:"pageType,omitempty"`
	LongSentenceWords      int    `json:"longSentenceWords,omitempty"`
	LongParagraphSentences int    `json:"longParagraphSentences,omitempty"`
}

// ContentAudit is the report for one markdown document.
type ContentAudit struct {
	ID        string               `json:"id"`
	Path      string               `json:"path,omitempty"`
	Checksum  string               `json:"checksum"`
	Analysis  instruction.Analysis `json:"analysis"`
	AuditedAt time.Time            `json:"audited_at"`
}

// SchemaAudit is the report for a JSON-LD payload.
type SchemaAudit struct {
	Nodes []schemaval.Analysis     `json:"nodes"`
	Graph *schemaval.GraphAnalysis `json:"graph,omitempty"`
	Site  schemaval.SiteScore      `json:"site"`
}

// PageAudit is the full report for one fetched URL.
type PageAudit struct {
	ID          string                `json:"id"`
	URL         string                `json:"url"`
	FinalURL    string                `json:"finalUrl"`
	StatusCode  int                   `json:"statusCode"`
	Page        *extract.Page         `json:"page"`
	WordCount   int                   `json:"wordCount"`
	SEO         seoscore.Details      `json:"seo"`
	Readability readability.Scores    `json:"readability"`
	TopKeywords []textmetrics.Keyword `json:"topKeywords"`
	Schema      *SchemaAudit          `json:"schema,omitempty"`
	Checksum    string                `json:"checksum"`
	AuditedAt   time.Time             `json:"audited_at"`
}

// Service wires the fetcher, docs storage, and the scoring pipeline.
type Service struct {
	fetcher  *fetch.Fetcher
	store    storage.Provider
	defaults Options
}

// NewService creates an audit service. store may be nil when no docs
// directory is configured.
func NewService(fetcher *fetch.Fetcher, store storage.Provider, defaults Options) *Service {
	return &Service{fetcher: fetcher, store: store, defaults: defaults}
}

func (s *Service) merge(opts Options) Options {
	if opts.Keyword == "" {
		opts.Keyword = s.defaults.Keyword
	}
	if opts.Audience == "" {
		opts.Audience = s.defaults.Audience
	}
	if opts.PageType == "" {
		opts.PageType = s.defaults.PageType
	}
	if opts.LongSentenceWords <= 0 {
		opts.LongSentenceWords = s.defaults.LongSentenceWords
	}
	if opts.LongParagraphSentences <= 0 {
		opts.LongParagraphSentences = s.defaults.LongParagraphSentences
	}
	return opts
}

// AuditContent analyzes raw markdown and returns a content report.
func (s *Service) AuditContent(_ context.Context, markdown string, opts Options) (*ContentAudit, error) {
	if markdown == "" {
		return nil, fmt.Errorf("%w: empty content", apperr.ErrInvalidInput)
	}
	opts = s.merge(opts)
	analysis := instruction.Analyze(markdown, instruction.Options{
		Keyword:                opts.Keyword,
		Audience:               opts.Audience,
		LongSentenceWords:      opts.LongSentenceWords,
		LongParagraphSentences: opts.LongParagraphSentences,
	})
	return &ContentAudit{
		ID:        uuid.NewString(),
		Checksum:  checksum.Sum([]byte(markdown)),
		Analysis:  analysis,
		AuditedAt: time.Now().UTC(),
	}, nil
}

// AuditDocument reads a stored markdown document and analyzes it.
func (s *Service) AuditDocument(ctx context.Context, path string, opts Options) (*ContentAudit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no docs directory configured", apperr.ErrInvalidInput)
	}
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	audit, err := s.AuditContent(ctx, string(data), opts)
	if err != nil {
		return nil, err
	}
	audit.Path = path
	return audit, nil
}

// ListDocuments lists stored markdown documents under dir.
func (s *Service) ListDocuments(_ context.Context, dir string) ([]storage.DocInfo, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no docs directory configured", apperr.ErrInvalidInput)
	}
	return s.store.List(dir)
}

// AuditPage fetches a URL and runs the full page pipeline: extraction, SEO
// scoring, readability, and structured-data validation.
func (s *Service) AuditPage(ctx context.Context, pageURL string, opts Options) (*PageAudit, error) {
	if pageURL == "" {
		return nil, fmt.Errorf("%w: empty url", apperr.ErrInvalidInput)
	}
	opts = s.merge(opts)

	res, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnreachable, err)
	}

	page, err := extract.Parse(res.Body, res.FinalURL)
	if err != nil {
		return nil, err
	}

	words := textmetrics.Words(page.Text)
	scores, _ := readability.Analyze(page.Text)

	audit := &PageAudit{
		ID:         uuid.NewString(),
		URL:        pageURL,
		FinalURL:   res.FinalURL,
		StatusCode: res.StatusCode,
		Page:       page,
		WordCount:  len(words),
		SEO: seoscore.Score(seoscore.Signals{
			Title:       page.Title,
			Description: page.MetaDescription,
			WordCount:   len(words),
			BodyWords:   words,
			Headings:    page.Headings,
			Images:      page.Images,
			Links:       page.Links,
			Keyword:     opts.Keyword,
			PageType:    opts.PageType,
		}),
		Readability: scores,
		TopKeywords: textmetrics.TopKeywords(words, 10),
		Checksum:    checksum.Sum(res.Body),
		AuditedAt:   time.Now().UTC(),
	}

	if len(page.JSONLD) > 0 {
		audit.Schema = s.analyzeJSONLD(page.JSONLD)
	}
	return audit, nil
}

// AuditSchema validates a decoded JSON-LD payload: a single node, an array of
// nodes, or a document with an @graph array.
func (s *Service) AuditSchema(_ context.Context, payload any) (*SchemaAudit, error) {
	switch v := payload.(type) {
	case map[string]any:
		return s.analyzeJSONLD([]map[string]any{v}), nil
	case []any:
		var docs []map[string]any
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: array elements must be objects", apperr.ErrInvalidInput)
			}
			docs = append(docs, m)
		}
		return s.analyzeJSONLD(docs), nil
	default:
		return nil, fmt.Errorf("%w: payload must be a JSON object or array", apperr.ErrInvalidInput)
	}
}

func (s *Service) analyzeJSONLD(docs []map[string]any) *SchemaAudit {
	audit := &SchemaAudit{}

	// Graph analysis runs over the first @graph array found; per-node
	// validation covers every flattened node.
	for _, d := range docs {
		if raw, ok := d["@graph"].([]any); ok {
			var members []map[string]any
			for _, item := range raw {
				if m, ok := item.(map[string]any); ok {
					members = append(members, m)
				}
			}
			g := schemaval.AnalyzeGraph(members)
			audit.Graph = &g
			break
		}
	}

	for _, node := range extract.GraphNodes(docs) {
		audit.Nodes = append(audit.Nodes, schemaval.AnalyzeSchema(node))
	}
	audit.Site = schemaval.ScoreSite(audit.Nodes)
	return audit
}
