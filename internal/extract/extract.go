// Package extract parses fetched HTML into the plain records the scoring and
// validation packages consume.
package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/starford/sowilo/internal/seoscore"
)

// Page is everything the auditors need from one HTML document.
type Page struct {
	Title           string              `json:"title"`
	MetaDescription string              `json:"metaDescription"`
	Canonical       string              `json:"canonical"`
	Robots          string              `json:"robots"`
	Viewport        string              `json:"viewport"`
	Lang            string              `json:"lang"`
	OpenGraph       map[string]string   `json:"openGraph"`
	TwitterCard     map[string]string   `json:"twitterCard"`
	Headings        []seoscore.Heading  `json:"headings"`
	Images          []seoscore.Image    `json:"images"`
	Links           seoscore.LinkCounts `json:"links"`
	Text            string              `json:"-"`
	JSONLD          []map[string]any    `json:"-"`
	JSONLDErrors    []string            `json:"jsonldErrors,omitempty"`
}

// Parse extracts all page signals from raw HTML. baseURL is used to classify
// links as internal or external; an empty or unparsable baseURL classifies
// every absolute link as external.
func Parse(html []byte, baseURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("extract: parse html: %w", err)
	}

	p := &Page{
		OpenGraph:   map[string]string{},
		TwitterCard: map[string]string{},
	}

	p.Title = strings.TrimSpace(doc.Find("title").First().Text())
	p.MetaDescription, _ = doc.Find(`meta[name="description"]`).Attr("content")
	p.Robots, _ = doc.Find(`meta[name="robots"]`).Attr("content")
	p.Viewport, _ = doc.Find(`meta[name="viewport"]`).Attr("content")
	p.Canonical, _ = doc.Find(`link[rel="canonical"]`).Attr("href")
	p.Lang, _ = doc.Find("html").Attr("lang")

	doc.Find(`meta[property^="og:"]`).Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, _ := s.Attr("content")
		if prop != "" {
			p.OpenGraph[strings.TrimPrefix(prop, "og:")] = content
		}
	})
	doc.Find(`meta[name^="twitter:"]`).Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		if name != "" {
			p.TwitterCard[strings.TrimPrefix(name, "twitter:")] = content
		}
	})

	for level := 1; level <= 6; level++ {
		sel := fmt.Sprintf("h%d", level)
		lvl := level
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			p.Headings = append(p.Headings, seoscore.Heading{
				Level: lvl,
				Text:  strings.TrimSpace(s.Text()),
			})
		})
	}

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		p.Images = append(p.Images, seoscore.Image{Src: src, Alt: alt})
	})

	p.Links = classifyLinks(doc, baseURL)
	p.Text = bodyText(doc)
	p.JSONLD, p.JSONLDErrors = extractJSONLD(doc)

	return p, nil
}

// classifyLinks counts unique internal and external anchors.
func classifyLinks(doc *goquery.Document, baseURL string) seoscore.LinkCounts {
	var counts seoscore.LinkCounts
	base, _ := url.Parse(baseURL)
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || href == "#" || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}

		u, err := url.Parse(href)
		if err != nil {
			return
		}
		switch {
		case u.Host == "":
			counts.Internal++
		case base != nil && base.Host != "" && u.Host == base.Host:
			counts.Internal++
		default:
			counts.External++
		}
	})
	return counts
}

// bodyText returns the visible body text with scripts and styles removed.
func bodyText(doc *goquery.Document) string {
	body := doc.Find("body").Clone()
	body.Find("script, style, noscript").Remove()
	return strings.Join(strings.Fields(body.Text()), " ")
}

// extractJSONLD parses every application/ld+json script block into plain node
// maps. Unparsable blocks become warnings, not errors, and a top-level array
// contributes each of its object elements.
func extractJSONLD(doc *goquery.Document) ([]map[string]any, []string) {
	var nodes []map[string]any
	var warnings []string

	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			warnings = append(warnings, fmt.Sprintf("json-ld block %d: %v", i, err))
			return
		}
		switch v := parsed.(type) {
		case map[string]any:
			nodes = append(nodes, v)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					nodes = append(nodes, m)
				}
			}
		}
	})
	return nodes, warnings
}

// GraphNodes flattens JSON-LD documents into individual nodes: a document
// with an @graph array contributes its members, anything else contributes
// itself.
func GraphNodes(docs []map[string]any) []map[string]any {
	var out []map[string]any
	for _, d := range docs {
		if g, ok := d["@graph"].([]any); ok {
			for _, item := range g {
				if m, ok := item.(map[string]any); ok {
					out = append(out, m)
				}
			}
			continue
		}
		out = append(out, d)
	}
	return out
}
