package richtext

import (
	"regexp"
	"strings"
)

// urlPattern matches an http(s) URL preceded by the start of the text or a
// character that is neither a letter, a digit nor an underscore in any
// script. The URL itself is the first capture group.
var urlPattern = regexp.MustCompile(
	`(?:^|[^\p{L}\p{N}_])(https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=?&/()]+)`,
)

// trailingPunct is never kept as the last character of a URL.
const trailingPunct = ".,;:!?"

// ByteSpan is a half-open range of byte offsets into the UTF-8 encoding of a
// text value.
type ByteSpan struct {
	Start int `json:"byteStart"`
	End   int `json:"byteEnd"`
}

// Valid reports whether s addresses a non-empty range inside text.
func (s ByteSpan) Valid(text string) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= len(text)
}

// URLMatch is a URL found in a text together with its byte span.
type URLMatch struct {
	Span ByteSpan
	URL  string
}

// ScanURLs returns the URLs found in text in left-to-right order. Spans never
// overlap. Sentence punctuation directly after a URL, and a closing
// parenthesis without a matching opening one, are left out of the match.
func ScanURLs(text string) []URLMatch {
	var matches []URLMatch
	for _, loc := range urlPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		u := trimURL(text[start:end])
		if !hasHost(u) {
			continue
		}

		matches = append(matches, URLMatch{
			Span: ByteSpan{Start: start, End: start + len(u)},
			URL:  u,
		})
	}

	return matches
}

func trimURL(u string) string {
	for u != "" {
		last := u[len(u)-1]
		switch {
		case strings.IndexByte(trailingPunct, last) >= 0:
			u = u[:len(u)-1]
		case last == ')' && strings.Count(u, "(") < strings.Count(u, ")"):
			u = u[:len(u)-1]
		default:
			return u
		}
	}

	return u
}

// hasHost reports whether anything is left after the scheme.
func hasHost(u string) bool {
	i := strings.Index(u, "://")

	return i >= 0 && len(u) > i+len("://")
}
