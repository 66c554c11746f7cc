package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/sowilo/internal/auditservice"
	"github.com/starford/sowilo/internal/fetch"
	"github.com/starford/sowilo/internal/testutil"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	docsDir, store := testutil.TestDocs(t)
	svc := auditservice.NewService(fetch.New(fetch.Options{}), store, auditservice.Options{})
	return New(svc), docsDir
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so we invoke the handler
	// functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "analyze_page":
		result, err = srv.analyzePage(ctx, req)
	case "analyze_content":
		result, err = srv.analyzeContent(ctx, req)
	case "analyze_schema":
		result, err = srv.analyzeSchema(ctx, req)
	case "audit_document":
		result, err = srv.auditDocument(ctx, req)
	case "list_documents":
		result, err = srv.listDocuments(ctx, req)
	case "get_instruction_contract":
		result, err = srv.getInstructionContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestAnalyzeContentTool(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "analyze_content", map[string]interface{}{
		"content": "---\ntitle: T\n---\n# T\n\nBody text for the tool.",
	})
	if r.IsError {
		t.Fatalf("unexpected error: %s", resultText(r))
	}
	text := resultText(r)
	if !strings.Contains(text, `"instructions"`) {
		t.Errorf("missing instructions in %q", text)
	}
	if !strings.Contains(text, `"wordCount"`) {
		t.Errorf("missing word count in %q", text)
	}
}

func TestAnalyzeContentToolRequiresContent(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "analyze_content", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error for missing content")
	}
}

func TestAnalyzeSchemaTool(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "analyze_schema", map[string]interface{}{
		"schema": `{"@type": "Product", "name": "Desk"}`,
	})
	if r.IsError {
		t.Fatalf("unexpected error: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), `"isValid": true`) {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestAnalyzeSchemaToolRejectsBadJSON(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "analyze_schema", map[string]interface{}{
		"schema": "not json",
	})
	if !r.IsError {
		t.Error("expected error for invalid JSON")
	}
}

func TestAuditDocumentTool(t *testing.T) {
	srv, docsDir := testServer(t)
	testutil.WriteDoc(t, docsDir, "note.md", "# Note\n\nContent to audit.")

	r := callTool(t, srv, "audit_document", map[string]interface{}{"path": "note.md"})
	if r.IsError {
		t.Fatalf("unexpected error: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), `"path": "note.md"`) {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestAuditDocumentToolMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "audit_document", map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing document")
	}
}

func TestListDocumentsTool(t *testing.T) {
	srv, docsDir := testServer(t)

	r := callTool(t, srv, "list_documents", map[string]interface{}{})
	if resultText(r) != "no documents found" {
		t.Errorf("empty list result = %q", resultText(r))
	}

	testutil.WriteDoc(t, docsDir, "a.md", "a")
	testutil.WriteDoc(t, docsDir, "sub/b.md", "b")

	r = callTool(t, srv, "list_documents", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "a.md") {
		t.Errorf("list missing a.md: %q", text)
	}
}

func TestInstructionContractTool(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_instruction_contract", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "Instruction Format Contract") {
		t.Errorf("contract missing title: %q", text[:80])
	}
	if !strings.Contains(text, "priority") {
		t.Error("contract missing priority field docs")
	}
}
