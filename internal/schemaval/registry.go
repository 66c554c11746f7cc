// Package schemaval validates JSON-LD nodes against Schema.org property
// expectations and analyzes @graph reference structure.
package schemaval

// typeSpec lists the properties a Schema.org type is expected to carry.
type typeSpec struct {
	Required    []string
	Recommended []string
}

// registry is the closed set of recognized Schema.org types. Unknown types
// degrade to a fixed partial score instead of failing.
var registry = map[string]typeSpec{
	"Article": {
		Required:    []string{"headline", "author", "datePublished"},
		Recommended: []string{"image", "dateModified", "publisher", "description", "mainEntityOfPage"},
	},
	"BlogPosting": {
		Required:    []string{"headline", "author", "datePublished"},
		Recommended: []string{"image", "dateModified", "publisher", "description", "mainEntityOfPage"},
	},
	"NewsArticle": {
		Required:    []string{"headline", "author", "datePublished"},
		Recommended: []string{"image", "dateModified", "publisher", "description", "dateline"},
	},
	"Product": {
		Required:    []string{"name"},
		Recommended: []string{"image", "description", "offers", "aggregateRating", "brand", "sku"},
	},
	"Offer": {
		Required:    []string{"price", "priceCurrency"},
		Recommended: []string{"availability", "url", "priceValidUntil"},
	},
	"Organization": {
		Required:    []string{"name", "url"},
		Recommended: []string{"logo", "sameAs", "contactPoint", "address"},
	},
	"LocalBusiness": {
		Required:    []string{"name", "address"},
		Recommended: []string{"telephone", "openingHours", "geo", "url", "priceRange"},
	},
	"Person": {
		Required:    []string{"name"},
		Recommended: []string{"url", "image", "jobTitle", "sameAs"},
	},
	"WebSite": {
		Required:    []string{"name", "url"},
		Recommended: []string{"potentialAction", "description"},
	},
	"WebPage": {
		Required:    []string{"name"},
		Recommended: []string{"description", "url", "breadcrumb", "datePublished"},
	},
	"BreadcrumbList": {
		Required:    []string{"itemListElement"},
		Recommended: []string{},
	},
	"Event": {
		Required:    []string{"name", "startDate", "location"},
		Recommended: []string{"endDate", "description", "image", "offers", "performer"},
	},
	"Recipe": {
		Required:    []string{"name", "recipeIngredient", "recipeInstructions"},
		Recommended: []string{"image", "author", "prepTime", "cookTime", "nutrition", "aggregateRating"},
	},
	"FAQPage": {
		Required:    []string{"mainEntity"},
		Recommended: []string{},
	},
	"Question": {
		Required:    []string{"name", "acceptedAnswer"},
		Recommended: []string{},
	},
	"HowTo": {
		Required:    []string{"name", "step"},
		Recommended: []string{"image", "totalTime", "estimatedCost", "supply", "tool"},
	},
	"Review": {
		Required:    []string{"itemReviewed", "reviewRating", "author"},
		Recommended: []string{"datePublished", "reviewBody"},
	},
	"AggregateRating": {
		Required:    []string{"ratingValue"},
		Recommended: []string{"reviewCount", "bestRating", "worstRating"},
	},
	"VideoObject": {
		Required:    []string{"name", "description", "thumbnailUrl", "uploadDate"},
		Recommended: []string{"duration", "contentUrl", "embedUrl"},
	},
	"ImageObject": {
		Required:    []string{"contentUrl"},
		Recommended: []string{"caption", "width", "height"},
	},
	"JobPosting": {
		Required:    []string{"title", "description", "datePosted", "hiringOrganization", "jobLocation"},
		Recommended: []string{"baseSalary", "employmentType", "validThrough"},
	},
}
