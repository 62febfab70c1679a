package richtext

import "strings"

// IsolateURLs puts every URL of text on its own line. Text around the URLs is
// trimmed of surrounding whitespace and empty pieces are dropped. Text without
// URLs is returned unchanged.
func IsolateURLs(text string) string {
	matches := ScanURLs(text)
	if len(matches) == 0 {
		return text
	}

	parts := make([]string, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if before := strings.TrimSpace(text[last:m.Span.Start]); before != "" {
			parts = append(parts, before)
		}
		parts = append(parts, m.URL)
		last = m.Span.End
	}
	if rest := strings.TrimSpace(text[last:]); rest != "" {
		parts = append(parts, rest)
	}

	return strings.Join(parts, "\n")
}
