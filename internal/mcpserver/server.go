// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes Sowilo audit tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/sowilo/internal/auditservice"
)

// Server wraps the MCP server with Sowilo tools.
type Server struct {
	mcp *server.MCPServer
	svc *auditservice.Service
}

// New creates a new MCP server with all audit tools registered.
func New(svc *auditservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Sowilo",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("analyze_page",
		mcp.WithDescription("Fetch a URL and produce a full SEO, readability, and structured-data audit."),
		mcp.WithString("url", mcp.Required(), mcp.Description("Absolute URL of the page to audit")),
		mcp.WithString("keyword", mcp.Description("Target keyword to score against")),
		mcp.WithString("pageType", mcp.Description("Page type for content-length scoring: blog, product, or landing")),
	), s.analyzePage)

	s.mcp.AddTool(mcp.NewTool("analyze_content",
		mcp.WithDescription("Analyze markdown content and return prioritized improvement instructions. "+
			"Instructions follow the contract available via the get_instruction_contract tool or the "+
			"sowilo://instruction-format resource."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Markdown content, optionally with YAML frontmatter")),
		mcp.WithString("keyword", mcp.Description("Target keyword")),
		mcp.WithString("audience", mcp.Description("Target audience: general, technical, or beginner")),
	), s.analyzeContent)

	s.mcp.AddTool(mcp.NewTool("analyze_schema",
		mcp.WithDescription("Validate a JSON-LD payload against Schema.org expectations and analyze its @graph structure."),
		mcp.WithString("schema", mcp.Required(), mcp.Description("JSON-LD as a JSON string: a node, an array of nodes, or a document with @graph")),
	), s.analyzeSchema)

	s.mcp.AddTool(mcp.NewTool("audit_document",
		mcp.WithDescription("Audit a markdown document stored in the configured docs directory."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the document (e.g. guides/intro.md)")),
		mcp.WithString("keyword", mcp.Description("Target keyword")),
	), s.auditDocument)

	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List markdown documents available for auditing."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listDocuments)

	s.mcp.AddTool(mcp.NewTool("get_instruction_contract",
		mcp.WithDescription("Returns the instruction format contract. "+
			"Call this before applying instructions to understand the action semantics."),
	), s.getInstructionContract)

	// Resource: instruction format contract.
	s.mcp.AddResource(
		mcp.NewResource("sowilo://instruction-format", "Instruction Format Contract",
			mcp.WithResourceDescription("Canonical format of the improvement instructions emitted by audits."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readInstructionFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func optionsFromRequest(req mcp.CallToolRequest) auditservice.Options {
	opts := auditservice.Options{}
	if v, err := req.RequireString("keyword"); err == nil {
		opts.Keyword = v
	}
	if v, err := req.RequireString("audience"); err == nil {
		opts.Audience = v
	}
	if v, err := req.RequireString("pageType"); err == nil {
		opts.PageType = v
	}
	return opts
}

func jsonResult(v any) *mcp.CallToolResult {
	out, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(out))
}

func (s *Server) analyzePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	audit, err := s.svc.AuditPage(ctx, url, optionsFromRequest(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(audit), nil
}

func (s *Server) analyzeContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	audit, err := s.svc.AuditContent(ctx, content, optionsFromRequest(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(audit), nil
}

func (s *Server) analyzeSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("schema")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("schema is not valid JSON: %v", err)), nil
	}
	audit, err := s.svc.AuditSchema(ctx, payload)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(audit), nil
}

func (s *Server) auditDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	audit, err := s.svc.AuditDocument(ctx, path, optionsFromRequest(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("audit %s: %v", path, err)), nil
	}
	return jsonResult(audit), nil
}

func (s *Server) listDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	docs, err := s.svc.ListDocuments(ctx, folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, d := range docs {
		paths = append(paths, d.Path)
	}
	if len(paths) == 0 {
		return mcp.NewToolResultText("no documents found"), nil
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) getInstructionContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(InstructionFormatContract), nil
}

func (s *Server) readInstructionFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "sowilo://instruction-format",
			MIMEType: "text/markdown",
			Text:     InstructionFormatContract,
		},
	}, nil
}
