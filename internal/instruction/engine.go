package instruction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/starford/sowilo/internal/readability"
	"github.com/starford/sowilo/internal/seoscore"
	"github.com/starford/sowilo/internal/textmetrics"
)

// Instruction actions.
const (
	ActionReplace = "replace"
	ActionAdd     = "add"
	ActionRemove  = "remove"
	ActionSplit   = "split"
	ActionMerge   = "merge"
)

// Instruction categories.
const (
	CategorySEO         = "seo"
	CategoryReadability = "readability"
	CategoryStructure   = "structure"
)

// Instruction priorities, ordered from most to least urgent.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

var priorityRank = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Instruction is one structured fix. Automated instructions are deterministic
// substitutions safe to apply without human judgment.
type Instruction struct {
	Action    string `json:"action"`
	Target    string `json:"target"`
	Value     string `json:"value,omitempty"`
	Reason    string `json:"reason"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	Automated bool   `json:"automated"`
}

// Target audiences and their Flesch-Kincaid grade targets.
const (
	AudienceGeneral   = "general"
	AudienceTechnical = "technical"
	AudienceBeginner  = "beginner"
)

var gradeTargets = map[string]float64{
	AudienceGeneral:   8,
	AudienceTechnical: 12,
	AudienceBeginner:  6,
}

// Options configures the instruction engine. The zero value gets defaults.
type Options struct {
	Keyword                string
	Audience               string
	LongSentenceWords      int
	LongParagraphSentences int
}

func (o Options) withDefaults() Options {
	if o.Audience == "" {
		o.Audience = AudienceGeneral
	}
	if o.LongSentenceWords <= 0 {
		o.LongSentenceWords = 25
	}
	if o.LongParagraphSentences <= 0 {
		o.LongParagraphSentences = 5
	}
	return o
}

// CategoryScores are the per-category health scores, 0–100 each.
type CategoryScores struct {
	SEO         int `json:"seo"`
	Readability int `json:"readability"`
	Structure   int `json:"structure"`
}

// Analysis is the full output for one markdown document.
type Analysis struct {
	Instructions []Instruction      `json:"instructions"`
	Scores       CategoryScores     `json:"scores"`
	WordCount    int                `json:"wordCount"`
	Readability  readability.Scores `json:"readability"`
	Frontmatter  map[string]string  `json:"frontmatter"`
	Headings     []seoscore.Heading `json:"headings"`
}

const (
	wordCountCriticalBelow = 150
	wordCountMinimum       = 300
	wordCountComfortable   = 1000
	maxLongSentenceItems   = 5
	maxLongParagraphItems  = 3
	maxPassiveExamples     = 3
	passiveTolerance       = 3
	complexWordMaxPct      = 15.0
	minHeadingsLongContent = 3
	longContentWords       = 500

	penaltySEO         = 15
	penaltyReadability = 10
	penaltyStructure   = 12
)

// Analyze runs the full instruction pipeline on a markdown document.
func Analyze(markdown string, opts Options) Analysis {
	opts = opts.withDefaults()

	fm, body := ExtractFrontmatter(markdown)
	plain := StripMarkdown(body)
	words := textmetrics.Words(plain)
	headings := ExtractHeadings(body)
	scores, _ := readability.Analyze(plain)

	g := &generator{opts: opts}
	g.contentRules(fm, body, plain, words, headings)
	g.readabilityRules(body, plain, words, scores)
	g.structureRules(fm, headings, len(words))

	sort.SliceStable(g.out, func(i, j int) bool {
		return priorityRank[g.out[i].Priority] < priorityRank[g.out[j].Priority]
	})

	return Analysis{
		Instructions: g.out,
		Scores:       categoryScores(g.out),
		WordCount:    len(words),
		Readability:  scores,
		Frontmatter:  fm,
		Headings:     headings,
	}
}

type generator struct {
	opts Options
	out  []Instruction
}

func (g *generator) add(in Instruction) {
	g.out = append(g.out, in)
}

// contentRules covers word count, keyword placement, and frontmatter metadata.
func (g *generator) contentRules(fm map[string]string, body, plain string, words []string, headings []seoscore.Heading) {
	wc := len(words)

	switch {
	case wc < wordCountCriticalBelow:
		g.add(Instruction{
			Action:   ActionAdd,
			Target:   "content",
			Reason:   fmt.Sprintf("content has %d words; at least %d are needed for search visibility", wc, wordCountMinimum),
			Priority: PriorityCritical,
			Category: CategorySEO,
		})
	case wc < wordCountMinimum:
		g.add(Instruction{
			Action:   ActionAdd,
			Target:   "content",
			Reason:   fmt.Sprintf("content has %d words; at least %d are needed for search visibility", wc, wordCountMinimum),
			Priority: PriorityHigh,
			Category: CategorySEO,
		})
	case wc < wordCountComfortable:
		g.add(Instruction{
			Action:   ActionAdd,
			Target:   "content",
			Reason:   fmt.Sprintf("content has %d words; consider expanding toward %d for stronger topical coverage", wc, wordCountComfortable),
			Priority: PriorityLow,
			Category: CategorySEO,
		})
	}

	if g.opts.Keyword != "" {
		g.keywordRules(body, words, headings)
	}

	if fm["description"] == "" {
		g.add(Instruction{
			Action:    ActionAdd,
			Target:    "frontmatter.description",
			Value:     suggestDescription(plain),
			Reason:    "frontmatter has no description; search engines fall back to arbitrary page text",
			Priority:  PriorityHigh,
			Category:  CategorySEO,
			Automated: true,
		})
	}
}

func (g *generator) keywordRules(body string, words []string, headings []seoscore.Heading) {
	kw := strings.ToLower(g.opts.Keyword)
	density := textmetrics.KeywordDensity(words, kw)

	switch {
	case density < 0.5:
		g.add(Instruction{
			Action:   ActionAdd,
			Target:   "content",
			Value:    g.opts.Keyword,
			Reason:   fmt.Sprintf("keyword density is %.1f%%; aim for 0.5%%–3%%", density),
			Priority: PriorityHigh,
			Category: CategorySEO,
		})
	case density > 3:
		g.add(Instruction{
			Action:   ActionReplace,
			Target:   "content",
			Reason:   fmt.Sprintf("keyword density is %.1f%%; above 3%% reads as stuffing", density),
			Priority: PriorityHigh,
			Category: CategorySEO,
		})
	}

	paragraphs := Paragraphs(body)
	if len(paragraphs) > 0 && !strings.Contains(strings.ToLower(paragraphs[0]), kw) {
		g.add(Instruction{
			Action:   ActionAdd,
			Target:   "introduction",
			Value:    g.opts.Keyword,
			Reason:   "target keyword does not appear in the first paragraph",
			Priority: PriorityMedium,
			Category: CategorySEO,
		})
	}

	inHeading := false
	for _, h := range headings {
		if strings.Contains(strings.ToLower(h.Text), kw) {
			inHeading = true
			break
		}
	}
	if len(headings) > 0 && !inHeading {
		g.add(Instruction{
			Action:   ActionAdd,
			Target:   "headings",
			Value:    g.opts.Keyword,
			Reason:   "target keyword does not appear in any heading",
			Priority: PriorityMedium,
			Category: CategorySEO,
		})
	}
}

// readabilityRules covers grade level, sentence and paragraph length, passive
// voice, and vocabulary complexity.
func (g *generator) readabilityRules(body, plain string, words []string, scores readability.Scores) {
	target := gradeTargets[g.opts.Audience]
	if target == 0 {
		target = gradeTargets[AudienceGeneral]
	}
	if scores.FleschKincaidGrade > target+2 {
		g.add(Instruction{
			Action:   ActionReplace,
			Target:   "content",
			Reason:   fmt.Sprintf("reading grade %.1f exceeds the %s-audience target of %.0f; simplify wording and shorten sentences", scores.FleschKincaidGrade, g.opts.Audience, target),
			Priority: PriorityMedium,
			Category: CategoryReadability,
		})
	}

	long := LongSentences(plain, g.opts.LongSentenceWords)
	for i, s := range long {
		if i >= maxLongSentenceItems {
			break
		}
		g.add(Instruction{
			Action:   ActionSplit,
			Target:   snippet(s, 60),
			Reason:   fmt.Sprintf("sentence has %d words; split above %d", len(strings.Fields(s)), g.opts.LongSentenceWords),
			Priority: PriorityMedium,
			Category: CategoryReadability,
		})
	}

	longParas := 0
	for _, p := range Paragraphs(body) {
		if SentenceCountIn(p) <= g.opts.LongParagraphSentences {
			continue
		}
		if longParas >= maxLongParagraphItems {
			break
		}
		longParas++
		g.add(Instruction{
			Action:   ActionSplit,
			Target:   snippet(p, 60),
			Reason:   fmt.Sprintf("paragraph has %d sentences; split above %d", SentenceCountIn(p), g.opts.LongParagraphSentences),
			Priority: PriorityLow,
			Category: CategoryReadability,
		})
	}

	if passive := PassiveMatches(plain); len(passive) > passiveTolerance {
		examples := passive
		if len(examples) > maxPassiveExamples {
			examples = examples[:maxPassiveExamples]
		}
		g.add(Instruction{
			Action:   ActionReplace,
			Target:   "content",
			Value:    strings.Join(examples, "; "),
			Reason:   fmt.Sprintf("%d passive-voice constructions found; rewrite in active voice", len(passive)),
			Priority: PriorityLow,
			Category: CategoryReadability,
		})
	}

	if len(words) > 0 {
		pct := 100 * float64(textmetrics.ComplexWordCount(words)) / float64(len(words))
		if pct > complexWordMaxPct {
			g.add(Instruction{
				Action:   ActionReplace,
				Target:   "content",
				Reason:   fmt.Sprintf("%.1f%% of words have three or more syllables; aim below %.0f%%", pct, complexWordMaxPct),
				Priority: PriorityMedium,
				Category: CategoryReadability,
			})
		}
	}
}

// structureRules covers H1 usage, heading hierarchy, and section density.
func (g *generator) structureRules(fm map[string]string, headings []seoscore.Heading, wordCount int) {
	var h1s []seoscore.Heading
	for _, h := range headings {
		if h.Level == 1 {
			h1s = append(h1s, h)
		}
	}

	switch {
	case len(h1s) == 0:
		g.add(Instruction{
			Action:    ActionAdd,
			Target:    "heading",
			Value:     "# " + titleFor(fm),
			Reason:    "document has no H1 heading",
			Priority:  PriorityCritical,
			Category:  CategoryStructure,
			Automated: true,
		})
	case len(h1s) > 1:
		for _, h := range h1s[1:] {
			g.add(Instruction{
				Action:    ActionReplace,
				Target:    "# " + h.Text,
				Value:     "## " + h.Text,
				Reason:    "document has multiple H1 headings; demote extras to H2",
				Priority:  PriorityHigh,
				Category:  CategoryStructure,
				Automated: true,
			})
		}
	}

	for _, skip := range HierarchySkips(headings) {
		g.add(Instruction{
			Action:   ActionReplace,
			Target:   strings.Repeat("#", skip.To) + " " + skip.Heading,
			Value:    strings.Repeat("#", skip.From+1) + " " + skip.Heading,
			Reason:   fmt.Sprintf("heading level jumps from H%d to H%d", skip.From, skip.To),
			Priority: PriorityMedium,
			Category: CategoryStructure,
		})
	}

	if len(headings) < minHeadingsLongContent && wordCount > longContentWords {
		g.add(Instruction{
			Action:   ActionAdd,
			Target:   "structure",
			Reason:   fmt.Sprintf("%d words with only %d headings; add subheadings to break up the content", wordCount, len(headings)),
			Priority: PriorityMedium,
			Category: CategoryStructure,
		})
	}
}

func categoryScores(instructions []Instruction) CategoryScores {
	counts := map[string]int{}
	for _, in := range instructions {
		counts[in.Category]++
	}
	return CategoryScores{
		SEO:         floor0(100 - counts[CategorySEO]*penaltySEO),
		Readability: floor0(100 - counts[CategoryReadability]*penaltyReadability),
		Structure:   floor0(100 - counts[CategoryStructure]*penaltyStructure),
	}
}

func floor0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// suggestDescription derives a meta description from the opening of the
// plain text, cut at a word boundary near the optimal length.
func suggestDescription(plain string) string {
	const maxLen = 155
	text := strings.Join(strings.Fields(plain), " ")
	if len(text) <= maxLen {
		return text
	}
	cut := strings.LastIndex(text[:maxLen], " ")
	if cut <= 0 {
		cut = maxLen
	}
	return text[:cut]
}

func titleFor(fm map[string]string) string {
	if t := fm["title"]; t != "" {
		return t
	}
	return "Untitled document"
}

func snippet(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
