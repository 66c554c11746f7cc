// Package readability computes classic readability formulas over plain text.
package readability

import (
	"math"

	"github.com/starford/sowilo/internal/textmetrics"
)

// Stats holds the raw counts the formulas derive from.
type Stats struct {
	Words        int `json:"words"`
	Sentences    int `json:"sentences"`
	Syllables    int `json:"syllables"`
	ComplexWords int `json:"complexWords"`
	Characters   int `json:"characters"`
}

// Scores holds the five formula results plus an interpretation label derived
// from the Flesch Reading Ease bucket. All floats are rounded to one decimal.
type Scores struct {
	FleschReadingEase         float64 `json:"fleschReadingEase"`
	FleschKincaidGrade        float64 `json:"fleschKincaidGrade"`
	GunningFog                float64 `json:"gunningFog"`
	SMOG                      float64 `json:"smogIndex"`
	AutomatedReadabilityIndex float64 `json:"automatedReadabilityIndex"`
	Interpretation            string  `json:"interpretation"`
}

// Analyze tokenizes text and computes all five scores.
func Analyze(text string) (Scores, Stats) {
	words := textmetrics.Words(text)
	stats := Stats{
		Words:      len(words),
		Sentences:  textmetrics.SentenceCount(text),
		Characters: textmetrics.CharCount(words),
	}
	for _, w := range words {
		s := textmetrics.CountSyllables(w)
		stats.Syllables += s
		if s >= 3 {
			stats.ComplexWords++
		}
	}
	return Score(stats), stats
}

// Score computes all five formulas from pre-computed stats. Every formula
// returns exactly 0 when the word or sentence count is 0 so that empty input
// never produces NaN or Infinity.
func Score(s Stats) Scores {
	out := Scores{
		FleschReadingEase:         FleschReadingEase(s),
		FleschKincaidGrade:        FleschKincaidGrade(s),
		GunningFog:                GunningFog(s),
		SMOG:                      SMOG(s),
		AutomatedReadabilityIndex: AutomatedReadabilityIndex(s),
	}
	out.Interpretation = Interpret(out.FleschReadingEase)
	return out
}

// FleschReadingEase = 206.835 − 1.015·ASL − 84.6·ASW.
func FleschReadingEase(s Stats) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	asl := float64(s.Words) / float64(s.Sentences)
	asw := float64(s.Syllables) / float64(s.Words)
	return round1(206.835 - 1.015*asl - 84.6*asw)
}

// FleschKincaidGrade = 0.39·ASL + 11.8·ASW − 15.59.
func FleschKincaidGrade(s Stats) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	asl := float64(s.Words) / float64(s.Sentences)
	asw := float64(s.Syllables) / float64(s.Words)
	return round1(0.39*asl + 11.8*asw - 15.59)
}

// GunningFog = 0.4·(ASL + 100·complexWords/words).
func GunningFog(s Stats) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	asl := float64(s.Words) / float64(s.Sentences)
	pct := 100 * float64(s.ComplexWords) / float64(s.Words)
	return round1(0.4 * (asl + pct))
}

// SMOG = 1.0430·sqrt(complexWords·30/sentences) + 3.1291 when the sample has
// fewer than 30 sentences, and without the 30/sentences scaling otherwise.
func SMOG(s Stats) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	cw := float64(s.ComplexWords)
	if s.Sentences < 30 {
		cw *= 30 / float64(s.Sentences)
	}
	return round1(1.0430*math.Sqrt(cw) + 3.1291)
}

// AutomatedReadabilityIndex = 4.71·(chars/words) + 0.5·(words/sentences) − 21.43.
func AutomatedReadabilityIndex(s Stats) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	cpw := float64(s.Characters) / float64(s.Words)
	wps := float64(s.Words) / float64(s.Sentences)
	return round1(4.71*cpw + 0.5*wps - 21.43)
}

// Interpret maps a Flesch Reading Ease value to its difficulty bucket. Each
// boundary is inclusive on the lower bound of the easier bucket.
func Interpret(fre float64) string {
	switch {
	case fre >= 90:
		return "Very Easy"
	case fre >= 80:
		return "Easy"
	case fre >= 70:
		return "Fairly Easy"
	case fre >= 60:
		return "Standard"
	case fre >= 50:
		return "Fairly Difficult"
	case fre >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
