package seoscore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTitle(t *testing.T) {
	assert.Equal(t, 0, ScoreTitle("", "seo"))

	// 52 chars, keyword prefix, length bonus, action word "guide":
	// 40 + 30 + 10 + 10 + 10 = 100.
	title := "Standing Desk Guide: Choose the Right Desk for 2025"
	assert.Len(t, title, 51)
	assert.Equal(t, 100, ScoreTitle(title, "standing desk"))

	// Same title without a configured keyword: 40 + 15 + 10 + 10 = 75.
	assert.Equal(t, 75, ScoreTitle(title, ""))

	// Short title, no keyword, no action word: 10 + 15 = 25.
	assert.Equal(t, 25, ScoreTitle("Home", ""))
}

func TestScoreTitleLengthBands(t *testing.T) {
	pad := func(n int) string { return strings.Repeat("x", n) }
	// Band points surface as total = band + 15 (no keyword) + length bonus.
	assert.Equal(t, 40+15+10, ScoreTitle(pad(55), ""))
	assert.Equal(t, 30+15+10, ScoreTitle(pad(45), ""))
	assert.Equal(t, 20+15+10, ScoreTitle(pad(35), ""))
	assert.Equal(t, 10+15, ScoreTitle(pad(10), ""))
	assert.Equal(t, 10+15+10, ScoreTitle(pad(90), ""))
}

func TestScoreTitleKeywordNotAtStart(t *testing.T) {
	// Keyword present but not a prefix: no +10 prefix bonus.
	title := "The Complete Guide to a Standing Desk Setup in 2025"
	assert.Len(t, title, 51)
	// 40 + 30 + 10 + 10 = 90.
	assert.Equal(t, 90, ScoreTitle(title, "standing desk"))
}

func TestScoreDescription(t *testing.T) {
	assert.Equal(t, 0, ScoreDescription("", "seo"))

	// 155 chars, keyword, CTA "discover", terminal period, no "is a ":
	// 40 + 25 + 15 + 10 + 10 = 100.
	desc := "Discover how a standing desk can transform your workday with better posture, more energy, and fewer aches. Our tested picks fit every budget and office." // 152
	desc += " Go."
	assert.Len(t, desc, 156)
	assert.Equal(t, 100, ScoreDescription(desc, "standing desk"))

	// Penalized shape: short, no keyword, no CTA, no punctuation, "is a ".
	assert.Equal(t, 10+10, ScoreDescription("this is a short description", ""))
}

func TestScoreContentLengthBlog(t *testing.T) {
	// Ideal word count hits 100.
	assert.Equal(t, 100, ScoreContentLength(1500, PageTypeBlog))
	// Window edges score 70.
	assert.Equal(t, 70, ScoreContentLength(2500, PageTypeBlog))
	// 1000 is 500 from ideal with maxDistance 1000: 70 + 30*0.5 = 85.
	assert.Equal(t, 85, ScoreContentLength(1000, PageTypeBlog))
	// Below minimum ramps linearly: 500/1000 * 50 = 25.
	assert.Equal(t, 25, ScoreContentLength(500, PageTypeBlog))
	assert.Equal(t, 0, ScoreContentLength(0, PageTypeBlog))
	// Over-length steps: <=3750 -> 60, <=5000 -> 50, beyond -> 40.
	assert.Equal(t, 60, ScoreContentLength(3000, PageTypeBlog))
	assert.Equal(t, 50, ScoreContentLength(4000, PageTypeBlog))
	assert.Equal(t, 40, ScoreContentLength(9000, PageTypeBlog))
}

func TestScoreContentLengthOtherPageTypes(t *testing.T) {
	assert.Equal(t, 100, ScoreContentLength(500, PageTypeProduct))
	assert.Equal(t, 100, ScoreContentLength(800, PageTypeLanding))
	// Unknown page type falls back to blog ranges.
	assert.Equal(t, 100, ScoreContentLength(1500, "newsletter"))
}

func TestScoreHeadings(t *testing.T) {
	assert.Equal(t, 0, ScoreHeadings(nil))
	assert.Equal(t, 40, ScoreHeadings([]Heading{{Level: 1, Text: "T"}}))
	assert.Equal(t, 20, ScoreHeadings([]Heading{{Level: 1}, {Level: 1}}))
	full := []Heading{{Level: 1}, {Level: 2}, {Level: 2}, {Level: 3}}
	assert.Equal(t, 100, ScoreHeadings(full))
	// H2/H3 without an H1.
	assert.Equal(t, 60, ScoreHeadings([]Heading{{Level: 2}, {Level: 3}}))
}

func TestScoreImages(t *testing.T) {
	assert.Equal(t, 50, ScoreImages(nil))
	all := []Image{{Src: "a.png", Alt: "a"}, {Src: "b.png", Alt: "b"}}
	assert.Equal(t, 100, ScoreImages(all))
	some := []Image{{Src: "a.png", Alt: "a"}, {Src: "b.png"}}
	assert.Equal(t, 70, ScoreImages(some))
	none := []Image{{Src: "a.png"}, {Src: "b.png", Alt: "   "}}
	assert.Equal(t, 40, ScoreImages(none))
}

func TestScoreLinks(t *testing.T) {
	assert.Equal(t, 100, ScoreLinks(LinkCounts{Internal: 5, External: 2}))
	// No links at all: -40 internal, -30 external.
	assert.Equal(t, 30, ScoreLinks(LinkCounts{}))
	assert.Equal(t, 70-10, ScoreLinks(LinkCounts{Internal: 1, External: 1, Broken: 1}))
	assert.Equal(t, 100-20-15-30, ScoreLinks(LinkCounts{Internal: 4, External: 60, Broken: 9}))
}

func TestScoreKeyword(t *testing.T) {
	words := strings.Fields("desk mat lamp desk chair desk office desk shelf desk")
	assert.Equal(t, 50, ScoreKeyword(words, ""))
	assert.Equal(t, 20, ScoreKeyword(words, "sofa"))
	// 5 of 10 words: 50% density, over the 3% ceiling.
	assert.Equal(t, 40, ScoreKeyword(words, "desk"))

	var big []string
	for i := 0; i < 1000; i++ {
		big = append(big, "word")
	}
	big[0] = "desk"
	big[1] = "desk"
	// 0.2% density.
	assert.Equal(t, 60, ScoreKeyword(big, "desk"))
	big[2] = "desk"
	big[3] = "desk"
	big[4] = "desk"
	// 0.5% density.
	assert.Equal(t, 100, ScoreKeyword(big, "desk"))
}

func TestScoreComposite(t *testing.T) {
	sig := Signals{
		Title:       "Standing Desk Guide: Choose the Right Desk for 2025",
		Description: strings.Repeat("d", 155) + ".",
		WordCount:   1500,
		BodyWords:   []string{"standing", "desk", "setup", "work"},
		Headings:    []Heading{{Level: 1}, {Level: 2}, {Level: 3}},
		Images:      []Image{{Src: "a.png", Alt: "desk"}},
		Links:       LinkCounts{Internal: 5, External: 3},
		Keyword:     "desk",
		PageType:    PageTypeBlog,
	}
	d := Score(sig)

	assert.Equal(t, avgOf(d.Title, d.Description, d.Headings), d.OnPage)
	assert.Equal(t, avgOf(d.ContentLength, d.Keyword), d.Content)
	assert.Equal(t, avgOf(d.Images, d.Links), d.Technical)

	want := int(0.4*float64(d.OnPage) + 0.35*float64(d.Content) + 0.25*float64(d.Technical) + 0.5)
	assert.Equal(t, want, d.Overall)
	assert.GreaterOrEqual(t, d.Overall, 0)
	assert.LessOrEqual(t, d.Overall, 100)
}

func avgOf(vals ...int) int {
	sum := 0
	for _, v := range vals {
		sum += v
	}
	f := float64(sum) / float64(len(vals))
	return int(f + 0.5)
}
