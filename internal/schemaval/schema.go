package schemaval

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2})?`)

// PropertyResult is the validation outcome for one present property.
type PropertyResult struct {
	Property string `json:"property"`
	Valid    bool   `json:"valid"`
	Warning  string `json:"warning,omitempty"`
}

// Analysis is the validation result for a single JSON-LD node.
type Analysis struct {
	Type               string           `json:"type"`
	IsValid            bool             `json:"isValid"`
	MissingRequired    []string         `json:"missingRequired"`
	MissingRecommended []string         `json:"missingRecommended"`
	Properties         []PropertyResult `json:"properties"`
	ValidationScore    int              `json:"validationScore"`
	CompletenessScore  int              `json:"completenessScore"`
	Suggestions        []string         `json:"suggestions"`
}

// AnalyzeSchema validates one JSON-LD node against the type registry.
// Data-quality problems surface as warnings and reduced scores, never errors.
func AnalyzeSchema(node map[string]any) Analysis {
	typ := nodeType(node)

	spec, known := registry[typ]
	if !known {
		a := Analysis{
			Type:               typ,
			IsValid:            typ != "",
			MissingRequired:    []string{},
			MissingRecommended: []string{},
			Properties:         []PropertyResult{},
			CompletenessScore:  0,
		}
		if typ == "" {
			a.ValidationScore = 0
			a.Suggestions = []string{"add an @type from the Schema.org vocabulary"}
		} else {
			a.ValidationScore = 50
			a.Suggestions = []string{fmt.Sprintf("@type %q is not a recognized Schema.org type; use a standard type", typ)}
		}
		return a
	}

	a := Analysis{
		Type:               typ,
		MissingRequired:    []string{},
		MissingRecommended: []string{},
		Properties:         []PropertyResult{},
		Suggestions:        []string{},
	}

	validRequired := 0
	for _, prop := range spec.Required {
		val, present := node[prop]
		if !present {
			a.MissingRequired = append(a.MissingRequired, prop)
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("add required property %q", prop))
			continue
		}
		res := checkProperty(prop, val)
		a.Properties = append(a.Properties, res)
		if res.Valid {
			validRequired++
		}
	}

	presentRecommended := 0
	for _, prop := range spec.Recommended {
		val, present := node[prop]
		if !present {
			a.MissingRecommended = append(a.MissingRecommended, prop)
			continue
		}
		presentRecommended++
		a.Properties = append(a.Properties, checkProperty(prop, val))
	}

	if len(spec.Required) == 0 {
		a.ValidationScore = 100
	} else {
		a.ValidationScore = int(math.Round(100 * float64(validRequired) / float64(len(spec.Required))))
	}
	if len(spec.Recommended) == 0 {
		a.CompletenessScore = 100
	} else {
		a.CompletenessScore = int(math.Round(100 * float64(presentRecommended) / float64(len(spec.Recommended))))
	}

	a.IsValid = len(a.MissingRequired) == 0 && !hasWarnings(a.Properties)
	return a
}

// nodeType resolves @type, taking the first element when it is an array.
func nodeType(node map[string]any) string {
	switch t := node["@type"].(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func hasWarnings(props []PropertyResult) bool {
	for _, p := range props {
		if p.Warning != "" {
			return true
		}
	}
	return false
}

// checkProperty applies the format validator registered for the property
// name, if any. One bad property never invalidates unrelated properties.
func checkProperty(prop string, val any) PropertyResult {
	res := PropertyResult{Property: prop, Valid: true}

	switch prop {
	case "url", "image", "logo", "contentUrl", "thumbnailUrl", "embedUrl":
		if s, ok := val.(string); ok && !isAbsoluteURL(s) {
			res.Valid = false
			res.Warning = fmt.Sprintf("%q is not an absolute URL", s)
		}
	case "datePublished", "dateModified", "startDate", "endDate", "uploadDate", "datePosted", "validThrough", "priceValidUntil":
		if s, ok := val.(string); ok && !isoDateRe.MatchString(s) {
			res.Valid = false
			res.Warning = fmt.Sprintf("%q is not an ISO 8601 date", s)
		}
	case "ratingValue":
		if n, ok := asNumber(val); !ok || n < 0 || n > 5 {
			res.Valid = false
			res.Warning = fmt.Sprintf("rating %v is not a number between 0 and 5", val)
		}
	case "price":
		if _, ok := asNumber(val); !ok {
			res.Valid = false
			res.Warning = fmt.Sprintf("price %v is not numeric", val)
		}
	}
	return res
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// asNumber accepts JSON numbers and numeric strings.
func asNumber(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
