package enrichment

import (
	"net/url"
	"strings"
)

// Traffic source labels.
const (
	SourceDirect   = "direct"
	SourceSearch   = "search"
	SourceSocial   = "social"
	SourceAI       = "ai"
	SourceReferral = "referral"
)

// RefererClassifier classifies traffic sources from referer URLs.
type RefererClassifier struct {
	// checked in order, so more specific hosts come first
	categories []category
}

type category struct {
	label   string
	domains []string
}

// NewRefererClassifier creates a new RefererClassifier with predefined domain lists.
func NewRefererClassifier() *RefererClassifier {
	return &RefererClassifier{
		categories: []category{
			{label: SourceAI, domains: []string{
				"chatgpt.com",
				"chat.openai.com",
				"claude.ai",
				"gemini.google.com",
				"perplexity.ai",
				"copilot.microsoft.com",
			}},
			{label: SourceSearch, domains: []string{
				"google.com",
				"bing.com",
				"yahoo.com",
				"duckduckgo.com",
				"baidu.com",
				"yandex.ru",
				"ecosia.org",
			}},
			{label: SourceSocial, domains: []string{
				"facebook.com",
				"twitter.com",
				"t.co",
				"x.com",
				"instagram.com",
				"linkedin.com",
				"lnkd.in",
				"pinterest.com",
				"reddit.com",
				"tiktok.com",
				"youtube.com",
				"threads.net",
				"mastodon.social",
			}},
		},
	}
}

// ClassifySource returns direct, search, social, ai or referral.
// A missing or unparsable referer counts as a direct visit.
func (r *RefererClassifier) ClassifySource(referer string) string {
	if referer == "" {
		return SourceDirect
	}

	parsed, err := url.Parse(referer)
	if err != nil {
		return SourceDirect
	}

	hostname := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	if hostname == "" {
		return SourceDirect
	}

	for _, c := range r.categories {
		for _, domain := range c.domains {
			if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
				return c.label
			}
		}
	}

	return SourceReferral
}
