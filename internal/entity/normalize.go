package entity

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var tldRe = regexp.MustCompile(`\.(com|org|net|edu|gov|co\.uk|io)$`)

// NormalizeDomain reduces a URL to its bare host: scheme and leading "www."
// stripped, path and query removed, lower-cased. Returns "" for empty input.
// Registration and lookup both go through this, so a domain matches however
// the scraper happened to capture it.
func NormalizeDomain(rawURL string) string {
	d := strings.ToLower(strings.TrimSpace(rawURL))
	if d == "" {
		return ""
	}
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	return d
}

// IsURL reports whether a raw string should be treated as a website rather
// than an organization name. Only explicit scheme or www. prefixes count;
// bare domains in name slots stay names.
func IsURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") ||
		strings.HasPrefix(raw, "https://") ||
		strings.HasPrefix(raw, "www.")
}

var titleCaser = cases.Title(language.AmericanEnglish)

// GuessNameFromDomain derives a display name from an unrecognized domain,
// e.g. "https://www.loop-capital.com/about" -> "Loop Capital". Best effort
// for log hints only; never used for resolution.
func GuessNameFromDomain(rawURL string) string {
	domain := NormalizeDomain(rawURL)
	if domain == "" {
		return ""
	}
	domain = tldRe.ReplaceAllString(domain, "")
	first, _, _ := strings.Cut(domain, ".")
	if first == "" {
		return ""
	}
	first = strings.NewReplacer("-", " ", "_", " ").Replace(first)
	return titleCaser.String(first)
}
