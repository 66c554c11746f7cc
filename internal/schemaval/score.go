package schemaval

import "math"

// SiteScore is the aggregate structured-data score for a set of nodes:
// validation quality (0–40), recommended-property completeness (0–35), and
// coverage of the schema types that matter for site-wide SEO (0–25).
type SiteScore struct {
	Validation   int `json:"validation"`
	Completeness int `json:"completeness"`
	Coverage     int `json:"coverage"`
	Total        int `json:"total"`
}

var contentTypes = map[string]struct{}{
	"Article": {}, "BlogPosting": {}, "NewsArticle": {}, "Product": {}, "Event": {},
}

// ScoreSite aggregates per-node analyses into the site-level score.
func ScoreSite(analyses []Analysis) SiteScore {
	var s SiteScore
	if len(analyses) == 0 {
		return s
	}

	var sumV, sumC float64
	present := make(map[string]struct{}, len(analyses))
	for _, a := range analyses {
		sumV += float64(a.ValidationScore)
		sumC += float64(a.CompletenessScore)
		if a.Type != "" {
			present[a.Type] = struct{}{}
		}
	}
	n := float64(len(analyses))
	s.Validation = int(math.Round(40 * (sumV / n) / 100))
	s.Completeness = int(math.Round(35 * (sumC / n) / 100))
	s.Coverage = coverageScore(present)
	s.Total = s.Validation + s.Completeness + s.Coverage
	return s
}

// coverageScore awards fixed points for the presence of an identity type, a
// breadcrumb trail, a site/page wrapper, and any content type, capped at 25.
func coverageScore(present map[string]struct{}) int {
	has := func(types ...string) bool {
		for _, t := range types {
			if _, ok := present[t]; ok {
				return true
			}
		}
		return false
	}

	score := 0
	if has("Organization", "LocalBusiness") {
		score += 8
	}
	if has("BreadcrumbList") {
		score += 7
	}
	if has("WebPage", "WebSite") {
		score += 5
	}
	for t := range present {
		if _, ok := contentTypes[t]; ok {
			score += 5
			break
		}
	}
	if score > 25 {
		score = 25
	}
	return score
}
