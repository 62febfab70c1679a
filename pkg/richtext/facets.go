package richtext

// LinkFeatureType is the lexicon type of a link facet feature.
const LinkFeatureType = "app.bsky.richtext.facet#link"

// Feature is a rich-text annotation attached to a facet.
type Feature struct {
	Type string `json:"$type"`
	URI  string `json:"uri"`
}

// Facet annotates a byte range of the post text.
type Facet struct {
	Index    ByteSpan  `json:"index"`
	Features []Feature `json:"features"`
}

// BuildFacets converts URL matches into link facets, one per match and in the
// same order. URLs are used verbatim.
func BuildFacets(matches []URLMatch) []Facet {
	facets := make([]Facet, 0, len(matches))
	for _, m := range matches {
		facets = append(facets, Facet{
			Index:    m.Span,
			Features: []Feature{{Type: LinkFeatureType, URI: m.URL}},
		})
	}

	return facets
}
