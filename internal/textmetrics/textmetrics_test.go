package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"hello", "world", "it's", "2024"}, Words("Hello, World! It's 2024"))
	assert.Empty(t, Words(""))
	assert.Empty(t, Words("   \n\t  "))
	assert.Equal(t, []string{"don't", "stop"}, Words("Don't stop."))
}

func TestSentenceCount(t *testing.T) {
	assert.Equal(t, 3, SentenceCount("One. Two! Three?"))
	assert.Equal(t, 1, SentenceCount("no terminator at all"))
	assert.Equal(t, 1, SentenceCount(""))
	// Consecutive terminators do not create empty sentences.
	assert.Equal(t, 2, SentenceCount("Wait... what?!"))
}

func TestSentences(t *testing.T) {
	got := Sentences("First one. Second one! ")
	assert.Equal(t, []string{"First one", "Second one"}, got)
	assert.Nil(t, Sentences("..."))
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"a", 1},
		{"", 1},
		{"beautiful", 4},
		{"make", 1},
		{"yellow", 2},
		{"education", 4},
		{"strength", 1},
		{"rhythm", 1},
		{"table", 1},
		{"HELLO", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CountSyllables(tc.word), "word %q", tc.word)
	}
}

func TestIsComplexWord(t *testing.T) {
	assert.True(t, IsComplexWord("beautiful"))
	assert.True(t, IsComplexWord("education"))
	assert.False(t, IsComplexWord("yellow"))
	assert.False(t, IsComplexWord("cat"))
}

func TestComplexWordCount(t *testing.T) {
	words := Words("The beautiful education of a cat")
	assert.Equal(t, 2, ComplexWordCount(words))
}

func TestCharCount(t *testing.T) {
	// Punctuation and whitespace are excluded by tokenization.
	assert.Equal(t, 10, CharCount(Words("Hello, world!")))
	assert.Equal(t, 0, CharCount(nil))
}

func TestKeywordDensity(t *testing.T) {
	words := Words("the seo guide covers seo basics")
	assert.InDelta(t, 100.0*2/6, KeywordDensity(words, "seo"), 1e-9)
	assert.InDelta(t, 100.0*2/6, KeywordDensity(words, "SEO"), 1e-9)
	assert.Zero(t, KeywordDensity(words, ""))
	assert.Zero(t, KeywordDensity(nil, "seo"))
	assert.Zero(t, KeywordDensity(words, "missing"))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("The"))
	assert.False(t, IsStopWord("keyword"))
}

func TestTopKeywords(t *testing.T) {
	words := Words("desk desk desk chair chair lamp the the the an an")
	got := TopKeywords(words, 10)
	assert.Equal(t, []Keyword{
		{Word: "desk", Count: 3},
		{Word: "chair", Count: 2},
		{Word: "lamp", Count: 1},
	}, got)
}

func TestTopKeywordsLimitAndTies(t *testing.T) {
	// Equal counts keep first-seen order.
	words := Words("alpha beta alpha beta gamma")
	got := TopKeywords(words, 2)
	assert.Equal(t, []Keyword{
		{Word: "alpha", Count: 2},
		{Word: "beta", Count: 2},
	}, got)
}

func TestTopKeywordsSkipsShortWords(t *testing.T) {
	got := TopKeywords(Words("go go go running running"), 10)
	assert.Equal(t, []Keyword{{Word: "running", Count: 2}}, got)
}
