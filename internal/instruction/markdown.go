// Package instruction analyzes markdown documents and emits prioritized,
// machine-actionable improvement instructions.
package instruction

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/sowilo/internal/seoscore"
)

var (
	headingRe    = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*`")
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisRe   = regexp.MustCompile(`(\*\*|__|\*|_)([^*_]+)(\*\*|__|\*|_)`)
	listMarkerRe = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+`)
	blockquoteRe = regexp.MustCompile(`(?m)^>\s?`)
	headLineRe   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)

	// Passive voice: an auxiliary followed by a past-participle-like token.
	passiveRegularRe   = regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being)\s+\w+ed\b`)
	passiveIrregularRe = regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being)\s+(?:made|done|given|taken|seen|known|found|built|written|held|shown|chosen|sent|left|kept|brought|thought|told|said|put|set|sold|paid|meant|felt)\b`)
)

// ExtractFrontmatter splits markdown source into flat key/value frontmatter
// and the remaining body. Frontmatter lives between the first two `---` lines;
// a document without a leading `---` has empty frontmatter. Values are
// stringified with surrounding quotes stripped; nested structures are dropped.
func ExtractFrontmatter(src string) (map[string]string, string) {
	trimmed := strings.TrimLeft(src, "\n\r")
	if !strings.HasPrefix(trimmed, "---") {
		return map[string]string{}, src
	}

	rest := trimmed[len("---"):]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return map[string]string{}, src
	}

	block := rest[:idx]
	body := rest[idx+len("\n---"):]
	body = strings.TrimLeft(body, "\n\r")

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		// Unparsable frontmatter degrades to an empty map, never an error.
		return map[string]string{}, src
	}

	fm := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fm[k] = strings.Trim(val, `"'`)
		case int, int64, float64, bool:
			fm[k] = fmt.Sprint(val)
		}
	}
	return fm, body
}

// StripMarkdown reduces a markdown body to plain text suitable for
// readability analysis: code, images, and markers are removed, link text is
// kept, and runs of three or more blank lines collapse to two.
func StripMarkdown(body string) string {
	text := codeFenceRe.ReplaceAllString(body, "")
	text = inlineCodeRe.ReplaceAllString(text, "")
	text = imageRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = headLineRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "$2")
	text = blockquoteRe.ReplaceAllString(text, "")
	text = listMarkerRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ExtractHeadings returns every ATX heading of the body in document order.
func ExtractHeadings(body string) []seoscore.Heading {
	var out []seoscore.Heading
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := headingRe.FindStringSubmatch(line); m != nil {
			out = append(out, seoscore.Heading{Level: len(m[1]), Text: m[2]})
		}
	}
	return out
}

// Skip is one heading-hierarchy jump of more than one level.
type Skip struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Heading string `json:"heading"`
}

// HierarchySkips walks headings in document order and flags every jump of
// more than one level relative to the previously seen level. Decreasing jumps
// never flag, and the first heading sets the baseline without flagging.
func HierarchySkips(headings []seoscore.Heading) []Skip {
	var out []Skip
	prev := 0
	for _, h := range headings {
		if prev > 0 && h.Level > prev+1 {
			out = append(out, Skip{From: prev, To: h.Level, Heading: h.Text})
		}
		prev = h.Level
	}
	return out
}

// Paragraphs splits a markdown body into prose paragraphs. Heading lines,
// code fences, and table rows are excluded from paragraph aggregation.
func Paragraphs(body string) []string {
	var out []string
	var current []string
	inFence := false

	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			flush()
			continue
		}
		if inFence || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "|") {
			flush()
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	return out
}

// LongSentences returns sentences of text whose word count exceeds maxWords.
func LongSentences(text string, maxWords int) []string {
	var out []string
	for _, s := range splitProseSentences(text) {
		if len(strings.Fields(s)) > maxWords {
			out = append(out, s)
		}
	}
	return out
}

func splitProseSentences(text string) []string {
	var out []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(b.String())
			if s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// SentenceCountIn counts sentence terminators in a paragraph, with a floor of
// one for non-empty text.
func SentenceCountIn(paragraph string) int {
	return len(splitProseSentences(paragraph))
}

// PassiveMatches returns every passive-voice construction found in text, in
// document order.
func PassiveMatches(text string) []string {
	matches := passiveRegularRe.FindAllString(text, -1)
	matches = append(matches, passiveIrregularRe.FindAllString(text, -1)...)
	return matches
}
