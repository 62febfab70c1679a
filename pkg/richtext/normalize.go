package richtext

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	// DefaultLimit is the maximum post length accepted by Bluesky.
	DefaultLimit = 300
	// DefaultEllipsis is appended to truncated text.
	DefaultEllipsis = "..."
)

// Normalizer enforces a maximum post length.
//
// Length is measured in Unicode code points unless CountGraphemes is set, in
// which case extended grapheme clusters are counted and cut, which is how
// Bluesky itself measures posts.
type Normalizer struct {
	// Limit is the maximum length of the resulting text.
	Limit int
	// Ellipsis is appended when text is truncated. Its own length counts
	// against Limit.
	Ellipsis string
	// CountGraphemes switches counting from code points to grapheme clusters.
	CountGraphemes bool
}

// NewNormalizer returns a Normalizer using DefaultLimit and DefaultEllipsis.
func NewNormalizer() Normalizer {
	return Normalizer{Limit: DefaultLimit, Ellipsis: DefaultEllipsis}
}

// Length returns the length of text in the units this Normalizer counts.
func (n Normalizer) Length(text string) int {
	if n.CountGraphemes {
		return uniseg.GraphemeClusterCount(text)
	}

	return utf8.RuneCountInString(text)
}

// Normalize returns text unchanged when it fits within Limit. Otherwise it
// returns the first Limit-len(Ellipsis) units followed by Ellipsis, so the
// result is exactly Limit units long. When Limit leaves no room for any text
// the result is the bare Ellipsis. The second result reports truncation.
func (n Normalizer) Normalize(text string) (string, bool) {
	if text == "" || n.Length(text) <= n.Limit {
		return text, false
	}

	keep := n.Limit - n.Length(n.Ellipsis)
	if keep <= 0 {
		return n.Ellipsis, true
	}

	return text[:n.prefixLen(text, keep)] + n.Ellipsis, true
}

// prefixLen returns the byte length of the first units units of text.
func (n Normalizer) prefixLen(text string, units int) int {
	if n.CountGraphemes {
		end := 0
		g := uniseg.NewGraphemes(text)
		for i := 0; i < units && g.Next(); i++ {
			_, end = g.Positions()
		}

		return end
	}

	seen := 0
	for i := range text {
		if seen == units {
			return i
		}
		seen++
	}

	return len(text)
}
