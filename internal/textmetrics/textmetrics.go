// Package textmetrics provides word, sentence, and syllable statistics over
// plain text. All functions are pure and never mutate their inputs.
package textmetrics

import (
	"sort"
	"strings"
)

// stopWords are excluded from keyword frequency ranking.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "was": {},
	"are": {}, "were": {}, "been": {}, "be": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "shall": {}, "not": {}, "no": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "there": {},
	"it": {}, "its": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"we": {}, "they": {}, "my": {}, "your": {}, "his": {}, "her": {},
	"our": {}, "their": {}, "what": {}, "which": {}, "who": {},
	"when": {}, "where": {}, "how": {}, "if": {}, "then": {},
	"than": {}, "so": {}, "into": {}, "about": {}, "more": {},
	"also": {}, "just": {}, "only": {}, "very": {}, "all": {},
	"some": {}, "any": {}, "each": {}, "other": {}, "up": {},
	"out": {}, "over": {}, "such": {},
}

// Keyword is a ranked keyword with its occurrence count.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Words tokenizes text into lowercased words with punctuation stripped.
// Empty tokens are dropped.
func Words(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := normalizeWord(f)
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// normalizeWord lowercases a token and keeps only letters, digits, and
// apostrophes.
func normalizeWord(token string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'':
			b.WriteRune(r)
		case r > 127:
			// Non-ASCII letters pass through untouched.
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SentenceCount splits text on sentence terminators (. ! ?) and counts
// non-empty segments. The result is never below 1 so that callers can divide
// by it safely.
func SentenceCount(text string) int {
	n := 0
	for _, seg := range splitSentences(text) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// Sentences returns the non-empty sentence segments of text, trimmed.
func Sentences(text string) []string {
	var out []string
	for _, seg := range splitSentences(text) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// CountSyllables estimates the syllable count of a single word.
//
// The heuristic is an approximation, not phonetic truth: words of three or
// fewer characters count as one syllable; a trailing "e", "es", or "ed"
// preceded by a non-vowel is stripped; a leading "y" is stripped; the
// remaining maximal vowel runs are counted two characters at a time. A word
// with no vowel run still counts as one syllable.
func CountSyllables(word string) int {
	w := normalizeWord(word)
	if len(w) <= 3 {
		return 1
	}

	w = stripSilentSuffix(w)
	w = strings.TrimPrefix(w, "y")

	count := 0
	i := 0
	for i < len(w) {
		if !isVowel(w[i]) {
			i++
			continue
		}
		count++
		if i+1 < len(w) && isVowel(w[i+1]) {
			i += 2
		} else {
			i++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

func stripSilentSuffix(w string) string {
	for _, suffix := range []string{"es", "ed", "e"} {
		if !strings.HasSuffix(w, suffix) {
			continue
		}
		rest := w[:len(w)-len(suffix)]
		if rest == "" || isVowel(rest[len(rest)-1]) {
			continue
		}
		return rest
	}
	return w
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// SyllableCount sums syllables over all tokenized words of text.
func SyllableCount(text string) int {
	total := 0
	for _, w := range Words(text) {
		total += CountSyllables(w)
	}
	return total
}

// IsComplexWord reports whether a word has three or more syllables.
func IsComplexWord(word string) bool {
	return CountSyllables(word) >= 3
}

// ComplexWordCount counts words with three or more syllables.
func ComplexWordCount(words []string) int {
	n := 0
	for _, w := range words {
		if IsComplexWord(w) {
			n++
		}
	}
	return n
}

// CharCount sums the character lengths of the tokenized words, excluding
// whitespace and punctuation.
func CharCount(words []string) int {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	return n
}

// KeywordDensity returns the percentage of words that exactly match keyword
// (case-insensitive). Zero when there are no words or no keyword.
func KeywordDensity(words []string, keyword string) float64 {
	if len(words) == 0 || keyword == "" {
		return 0
	}
	target := strings.ToLower(keyword)
	matches := 0
	for _, w := range words {
		if w == target {
			matches++
		}
	}
	return float64(matches) / float64(len(words)) * 100
}

// IsStopWord reports whether the lowercased word is in the stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// TopKeywords returns the limit most frequent non-stop-words of words, ranked
// by descending count. Ties keep first-seen order (stable sort).
func TopKeywords(words []string, limit int) []Keyword {
	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if IsStopWord(w) || len(w) < 3 {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make([]Keyword, 0, len(order))
	for _, w := range order {
		ranked = append(ranked, Keyword{Word: w, Count: counts[w]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
