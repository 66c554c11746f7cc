package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starford/sowilo/internal/seoscore"
)

func TestExtractFrontmatter(t *testing.T) {
	src := "---\ntitle: \"My Post\"\ndescription: A description\ndraft: true\nweight: 3\n---\n\nBody text."
	fm, body := ExtractFrontmatter(src)
	assert.Equal(t, "My Post", fm["title"])
	assert.Equal(t, "A description", fm["description"])
	assert.Equal(t, "true", fm["draft"])
	assert.Equal(t, "3", fm["weight"])
	assert.Equal(t, "Body text.", body)
}

func TestExtractFrontmatterMissing(t *testing.T) {
	fm, body := ExtractFrontmatter("# Heading\n\nNo frontmatter here.")
	assert.Empty(t, fm)
	assert.Equal(t, "# Heading\n\nNo frontmatter here.", body)
}

func TestExtractFrontmatterInvalidYAML(t *testing.T) {
	src := "---\n: : :\n  bad\n---\nBody."
	fm, body := ExtractFrontmatter(src)
	assert.Empty(t, fm)
	assert.Equal(t, src, body)
}

func TestExtractFrontmatterUnterminated(t *testing.T) {
	src := "---\ntitle: Oops"
	fm, body := ExtractFrontmatter(src)
	assert.Empty(t, fm)
	assert.Equal(t, src, body)
}

func TestStripMarkdown(t *testing.T) {
	body := "# Title\n\nSome **bold** and *italic* text with a [link](https://example.com).\n\n```go\nfmt.Println(\"skip me\")\n```\n\n![alt text](img.png)\n\n> quoted line\n\n- item one\n- item two"
	plain := StripMarkdown(body)
	assert.NotContains(t, plain, "#")
	assert.NotContains(t, plain, "**")
	assert.NotContains(t, plain, "skip me")
	assert.NotContains(t, plain, "img.png")
	assert.Contains(t, plain, "link")
	assert.Contains(t, plain, "bold")
	assert.Contains(t, plain, "quoted line")
	assert.Contains(t, plain, "item one")
}

func TestExtractHeadings(t *testing.T) {
	body := "# One\n\ntext\n\n## Two\n\n```\n# not a heading\n```\n\n### Three"
	got := ExtractHeadings(body)
	assert.Equal(t, []seoscore.Heading{
		{Level: 1, Text: "One"},
		{Level: 2, Text: "Two"},
		{Level: 3, Text: "Three"},
	}, got)
}

func TestHierarchySkips(t *testing.T) {
	headings := []seoscore.Heading{
		{Level: 1, Text: "A"},
		{Level: 3, Text: "B"},
		{Level: 2, Text: "C"},
		{Level: 4, Text: "D"},
	}
	got := HierarchySkips(headings)
	assert.Equal(t, []Skip{
		{From: 1, To: 3, Heading: "B"},
		{From: 2, To: 4, Heading: "D"},
	}, got)

	// Decreasing jumps and a deep first heading never flag.
	assert.Nil(t, HierarchySkips([]seoscore.Heading{{Level: 3, Text: "X"}, {Level: 1, Text: "Y"}}))
	assert.Nil(t, HierarchySkips(nil))
}

func TestParagraphs(t *testing.T) {
	body := "# Heading\n\nFirst paragraph\nspans two lines.\n\nSecond paragraph.\n\n| a | b |\n| - | - |\n\n```\ncode\n```\n\nThird."
	got := Paragraphs(body)
	assert.Equal(t, []string{
		"First paragraph spans two lines.",
		"Second paragraph.",
		"Third.",
	}, got)
}

func TestLongSentences(t *testing.T) {
	short := "This is short. So is this one."
	assert.Empty(t, LongSentences(short, 25))

	long := "one two three four five six seven eight nine ten eleven twelve."
	got := LongSentences(short+" "+long, 10)
	assert.Len(t, got, 1)
	assert.Contains(t, got[0], "eleven twelve")
}

func TestSentenceCountIn(t *testing.T) {
	assert.Equal(t, 3, SentenceCountIn("One. Two! Three?"))
	assert.Equal(t, 1, SentenceCountIn("no terminator"))
	assert.Equal(t, 0, SentenceCountIn(""))
}

func TestPassiveMatches(t *testing.T) {
	text := "The report was written quickly. Mistakes were made. The cake is delicious."
	got := PassiveMatches(text)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "was written")
	assert.Contains(t, got, "were made")
}
