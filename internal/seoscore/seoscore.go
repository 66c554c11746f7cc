// Package seoscore scores on-page SEO signals into 0–100 sub-scores and a
// weighted composite.
package seoscore

import (
	"math"
	"strings"

	"github.com/starford/sowilo/internal/textmetrics"
)

// Page types for content-length scoring.
const (
	PageTypeBlog    = "blog"
	PageTypeProduct = "product"
	PageTypeLanding = "landing"
)

// Heading is one extracted heading record.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Image is one extracted image record.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// LinkCounts summarizes the page's anchor inventory.
type LinkCounts struct {
	Internal int `json:"internal"`
	External int `json:"external"`
	Broken   int `json:"broken"`
}

// Signals is the plain-record input to the scorer; a collaborator (DOM
// extractor, markdown analyzer) produces it.
type Signals struct {
	Title       string
	Description string
	WordCount   int
	BodyWords   []string
	Headings    []Heading
	Images      []Image
	Links       LinkCounts
	Keyword     string
	PageType    string
}

// Details holds the seven sub-scores and the weighted composites, all 0–100.
type Details struct {
	Title         int `json:"title"`
	Description   int `json:"description"`
	Headings      int `json:"headings"`
	Images        int `json:"images"`
	Links         int `json:"links"`
	ContentLength int `json:"contentLength"`
	Keyword       int `json:"keyword"`
	OnPage        int `json:"onPage"`
	Content       int `json:"content"`
	Technical     int `json:"technical"`
	Overall       int `json:"overall"`
}

var titleActionWords = []string{
	"how", "why", "what", "best", "top", "guide", "review",
	"tips", "free", "new", "ultimate", "complete",
}

var ctaWords = []string{
	"learn", "discover", "find", "get", "try", "start",
	"explore", "read", "shop", "download",
}

// contentLengthRange is the optimal word-count window per page type.
type contentLengthRange struct {
	min, max, ideal int
}

var contentRanges = map[string]contentLengthRange{
	PageTypeBlog:    {min: 1000, max: 2500, ideal: 1500},
	PageTypeProduct: {min: 300, max: 1000, ideal: 500},
	PageTypeLanding: {min: 500, max: 1500, ideal: 800},
}

// Score computes every sub-score and the composite for the given signals.
func Score(sig Signals) Details {
	d := Details{
		Title:         ScoreTitle(sig.Title, sig.Keyword),
		Description:   ScoreDescription(sig.Description, sig.Keyword),
		Headings:      ScoreHeadings(sig.Headings),
		Images:        ScoreImages(sig.Images),
		Links:         ScoreLinks(sig.Links),
		ContentLength: ScoreContentLength(sig.WordCount, sig.PageType),
		Keyword:       ScoreKeyword(sig.BodyWords, sig.Keyword),
	}

	d.OnPage = avg(d.Title, d.Description, d.Headings)
	d.Content = avg(d.ContentLength, d.Keyword)
	d.Technical = avg(d.Images, d.Links)
	d.Overall = int(math.Round(0.4*float64(d.OnPage) + 0.35*float64(d.Content) + 0.25*float64(d.Technical)))
	return d
}

// ScoreTitle scores a title tag. An empty title scores 0. Length bands award
// 40/30/20/10 points for widening distance from the 50–60 character optimum;
// keyword presence, minimum length, and action words add on top. Capped at 100.
func ScoreTitle(title, keyword string) int {
	length := len(title)
	if length == 0 {
		return 0
	}

	score := 0
	switch {
	case length >= 50 && length <= 60:
		score = 40
	case length >= 40 && length <= 70:
		score = 30
	case length >= 30 && length <= 80:
		score = 20
	default:
		score = 10
	}

	lower := strings.ToLower(title)
	if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
		score += 30
		if strings.HasPrefix(lower, strings.ToLower(keyword)) {
			score += 10
		}
	} else {
		score += 15
	}

	if length >= 30 {
		score += 10
	}
	for _, w := range titleActionWords {
		if strings.Contains(lower, w) {
			score += 10
			break
		}
	}

	return clamp(score)
}

// ScoreDescription scores a meta description against the 150–160 character
// optimum, keyword presence, a call-to-action word, terminal punctuation, and
// avoidance of "is a"/"are a" constructions.
func ScoreDescription(desc, keyword string) int {
	length := len(desc)
	if length == 0 {
		return 0
	}

	score := 0
	switch {
	case length >= 150 && length <= 160:
		score = 40
	case length >= 130 && length <= 170:
		score = 30
	case length >= 120 && length <= 180:
		score = 20
	default:
		score = 10
	}

	lower := strings.ToLower(desc)
	if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
		score += 25
	} else {
		score += 10
	}

	for _, w := range ctaWords {
		if strings.Contains(lower, w) {
			score += 15
			break
		}
	}

	if strings.HasSuffix(strings.TrimSpace(desc), ".") ||
		strings.HasSuffix(strings.TrimSpace(desc), "!") ||
		strings.HasSuffix(strings.TrimSpace(desc), "?") {
		score += 10
	}

	if !strings.Contains(lower, "is a ") && !strings.Contains(lower, "are a ") {
		score += 10
	}

	return clamp(score)
}

// ScoreContentLength scores word count against the page-type window. Inside
// the window the score scales from 70 at the edges up to 100 at the ideal;
// below the minimum it ramps linearly to 50; above the maximum it drops in
// steps of how far over the content runs.
func ScoreContentLength(wordCount int, pageType string) int {
	r, ok := contentRanges[pageType]
	if !ok {
		r = contentRanges[PageTypeBlog]
	}

	switch {
	case wordCount >= r.min && wordCount <= r.max:
		distance := math.Abs(float64(wordCount - r.ideal))
		maxDistance := math.Max(float64(r.ideal-r.min), float64(r.max-r.ideal))
		if maxDistance == 0 {
			return 100
		}
		return clamp(int(math.Round(70 + 30*(1-distance/maxDistance))))
	case wordCount < r.min:
		return clamp(int(math.Round(50 * float64(wordCount) / float64(r.min))))
	case wordCount <= r.max+r.max/2:
		return 60
	case wordCount <= r.max*2:
		return 50
	default:
		return 40
	}
}

// ScoreHeadings scores the heading structure: one H1 is worth the most, and
// the presence of H2s and H3s fills out the rest.
func ScoreHeadings(headings []Heading) int {
	counts := make(map[int]int)
	for _, h := range headings {
		counts[h.Level]++
	}

	score := 0
	switch {
	case counts[1] == 1:
		score += 40
	case counts[1] > 1:
		score += 20
	}
	if counts[2] > 0 {
		score += 30
	}
	if counts[3] > 0 {
		score += 30
	}
	return clamp(score)
}

// ScoreImages scores alt-text coverage. A page without images is neutral.
func ScoreImages(images []Image) int {
	if len(images) == 0 {
		return 50
	}
	withAlt := 0
	for _, img := range images {
		if strings.TrimSpace(img.Alt) != "" {
			withAlt++
		}
	}
	score := 40
	switch {
	case withAlt == len(images):
		score += 60
	case withAlt > 0:
		score += 30
	}
	return clamp(score)
}

// ScoreLinks starts at 100 and deducts for missing internal links, missing or
// excessive external links, and broken links.
func ScoreLinks(links LinkCounts) int {
	score := 100

	switch {
	case links.Internal == 0:
		score -= 40
	case links.Internal < 3:
		score -= 30
	case links.Internal < 5:
		score -= 20
	}

	switch {
	case links.External == 0:
		score -= 30
	case links.External > 50:
		score -= 15
	}

	switch {
	case links.Broken > 5:
		score -= 30
	case links.Broken > 3:
		score -= 20
	case links.Broken > 0:
		score -= 10
	}

	return clamp(score)
}

// ScoreKeyword scores target-keyword usage by density band. With no target
// keyword configured the score is neutral.
func ScoreKeyword(words []string, keyword string) int {
	if keyword == "" {
		return 50
	}
	density := textmetrics.KeywordDensity(words, keyword)
	switch {
	case density == 0:
		return 20
	case density < 0.5:
		return 60
	case density <= 3:
		return 100
	default:
		return 40
	}
}

func avg(vals ...int) int {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += clamp(v)
	}
	return int(math.Round(float64(sum) / float64(len(vals))))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
