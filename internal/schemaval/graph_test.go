package schemaval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeGraphReferences(t *testing.T) {
	graph := []map[string]any{
		{
			"@id":       "https://example.com/#website",
			"@type":     "WebSite",
			"publisher": map[string]any{"@id": "https://example.com/#org"},
		},
		{
			"@id":   "https://example.com/#org",
			"@type": "Organization",
		},
	}
	a := AnalyzeGraph(graph)

	assert.Len(t, a.Nodes, 2)
	assert.Equal(t, []string{"https://example.com/#org"}, a.Nodes[0].References)
	assert.Equal(t, []string{"https://example.com/#website"}, a.Nodes[1].ReferencedBy)
	assert.Equal(t, []string{"https://example.com/#website"}, a.RootNodes)
	assert.Empty(t, a.OrphanNodes)
	assert.Empty(t, a.CircularReferences)
}

func TestAnalyzeGraphOrphan(t *testing.T) {
	graph := []map[string]any{
		{"@id": "a", "@type": "WebPage", "about": map[string]any{"@id": "b"}},
		{"@id": "b", "@type": "Organization"},
		{"@id": "c", "@type": "Person"},
	}
	a := AnalyzeGraph(graph)

	// c has no edges in either direction: both a root and an orphan.
	assert.ElementsMatch(t, []string{"a", "c"}, a.RootNodes)
	assert.Equal(t, []string{"c"}, a.OrphanNodes)
}

func TestAnalyzeGraphMutualPair(t *testing.T) {
	graph := []map[string]any{
		{"@id": "b", "@type": "WebPage", "isPartOf": map[string]any{"@id": "a"}},
		{"@id": "a", "@type": "WebSite", "mainEntity": map[string]any{"@id": "b"}},
	}
	a := AnalyzeGraph(graph)

	assert.Equal(t, []string{"a <-> b"}, a.CircularReferences)
	// Mutually referencing nodes are neither roots nor orphans.
	assert.Empty(t, a.RootNodes)
	assert.Empty(t, a.OrphanNodes)
}

func TestAnalyzeGraphLongerCyclesNotFlagged(t *testing.T) {
	graph := []map[string]any{
		{"@id": "a", "next": map[string]any{"@id": "b"}},
		{"@id": "b", "next": map[string]any{"@id": "c"}},
		{"@id": "c", "next": map[string]any{"@id": "a"}},
	}
	a := AnalyzeGraph(graph)
	assert.Empty(t, a.CircularReferences)
	assert.Empty(t, a.RootNodes)
}

func TestAnalyzeGraphIgnoresUnknownAndSelfRefs(t *testing.T) {
	graph := []map[string]any{
		{
			"@id":       "a",
			"sameAs":    map[string]any{"@id": "https://twitter.com/whoever"},
			"mainEntityOfPage": map[string]any{"@id": "a"},
		},
	}
	a := AnalyzeGraph(graph)

	assert.Len(t, a.Nodes, 1)
	assert.Empty(t, a.Nodes[0].References)
	assert.Equal(t, []string{"a"}, a.OrphanNodes)
}

func TestAnalyzeGraphNestedAndArrayRefs(t *testing.T) {
	graph := []map[string]any{
		{
			"@id": "page",
			"breadcrumb": map[string]any{
				"itemListElement": []any{
					map[string]any{"item": map[string]any{"@id": "home"}},
					map[string]any{"item": map[string]any{"@id": "home"}},
				},
			},
		},
		{"@id": "home"},
	}
	a := AnalyzeGraph(graph)

	// Duplicate references collapse to one edge.
	assert.Equal(t, []string{"home"}, a.Nodes[0].References)
	assert.Equal(t, []string{"page"}, a.Nodes[1].ReferencedBy)
}

func TestAnalyzeGraphDuplicateIDsCollapse(t *testing.T) {
	graph := []map[string]any{
		{"@id": "x", "@type": "WebPage"},
		{"@id": "x", "@type": "WebPage"},
	}
	a := AnalyzeGraph(graph)
	assert.Len(t, a.Nodes, 1)
}

func TestAnalyzeGraphDeterministic(t *testing.T) {
	graph := []map[string]any{
		{
			"@id":   "hub",
			"one":   map[string]any{"@id": "n1"},
			"two":   map[string]any{"@id": "n2"},
			"three": map[string]any{"@id": "n3"},
			"four":  map[string]any{"@id": "n4"},
		},
		{"@id": "n1"}, {"@id": "n2"}, {"@id": "n3"}, {"@id": "n4"},
	}
	first := AnalyzeGraph(graph)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, AnalyzeGraph(graph))
	}
	// Map keys walk in sorted order: four, one, three, two.
	assert.Equal(t, []string{"n4", "n1", "n3", "n2"}, first.Nodes[0].References)
}

func TestScoreSite(t *testing.T) {
	analyses := []Analysis{
		{Type: "Organization", ValidationScore: 100, CompletenessScore: 50},
		{Type: "WebSite", ValidationScore: 100, CompletenessScore: 100},
		{Type: "BreadcrumbList", ValidationScore: 100, CompletenessScore: 100},
		{Type: "Article", ValidationScore: 100, CompletenessScore: 70},
	}
	s := ScoreSite(analyses)

	assert.Equal(t, 40, s.Validation)
	// avg completeness 80% of 35 = 28.
	assert.Equal(t, 28, s.Completeness)
	// Organization 8 + BreadcrumbList 7 + WebSite 5 + content type 5 = 25.
	assert.Equal(t, 25, s.Coverage)
	assert.Equal(t, 93, s.Total)
}

func TestScoreSiteEmpty(t *testing.T) {
	assert.Equal(t, SiteScore{}, ScoreSite(nil))
}

func TestScoreSitePartialCoverage(t *testing.T) {
	s := ScoreSite([]Analysis{{Type: "Person", ValidationScore: 50, CompletenessScore: 0}})
	assert.Equal(t, 20, s.Validation)
	assert.Equal(t, 0, s.Completeness)
	assert.Equal(t, 0, s.Coverage)
}
