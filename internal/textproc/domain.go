package textproc

import "strings"

// DefaultDomain is returned when no domain label or fallback keyword matches.
const DefaultDomain = "AI assistant"

// domains is scanned in order; the first label contained in the text wins.
var domains = []string{
	"AI", "machine learning", "data science", "marketing", "business", "writing",
	"programming", "development", "design", "research", "teaching", "academic",
	"engineering", "healthcare", "technology", "science", "communication",
}

type domainBucket struct {
	label    string
	keywords []string
}

// fallbackBuckets are checked in priority order when no explicit domain is mentioned.
var fallbackBuckets = []domainBucket{
	{label: "software engineering", keywords: []string{"code", "programming", "algorithm", "software", "developer"}},
	{label: "content creation", keywords: []string{"write", "essay", "blog", "article", "content"}},
	{label: "analytical research", keywords: []string{"analyze", "research", "study", "investigate"}},
}

// ExtractDomain maps free text to a coarse topical label using substring checks.
func ExtractDomain(text string) string {
	lower := strings.ToLower(text)

	for _, domain := range domains {
		if strings.Contains(lower, strings.ToLower(domain)) {
			return domain
		}
	}

	for _, bucket := range fallbackBuckets {
		if ContainsAny(lower, bucket.keywords) {
			return bucket.label
		}
	}
	return DefaultDomain
}

// ContainsAny reports whether s contains at least one of the substrings.
func ContainsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
