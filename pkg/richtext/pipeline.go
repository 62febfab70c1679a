package richtext

import "time"

// Pipeline builds post records from raw message text.
type Pipeline struct {
	Normalizer Normalizer
	// IsolateURLs moves every URL onto its own line before normalization.
	IsolateURLs bool
}

// Post is the outcome of running a message through the Pipeline.
type Post struct {
	Record PostRecord
	// Truncated reports whether the text was shortened to fit the limit.
	Truncated bool
	// OriginalLength is the length of the text before normalization, in the
	// units counted by the Normalizer.
	OriginalLength int
}

// Build normalizes raw, scans the normalized text for URLs, turns them into
// link facets and assembles the record. Scanning always happens after
// normalization so facet offsets address the final text.
func (p Pipeline) Build(raw string, createdAt time.Time) Post {
	text := raw
	if p.IsolateURLs {
		text = IsolateURLs(text)
	}

	original := p.Normalizer.Length(text)
	text, truncated := p.Normalizer.Normalize(text)
	facets := BuildFacets(ScanURLs(text))

	return Post{
		Record:         AssemblePost(text, facets, createdAt),
		Truncated:      truncated,
		OriginalLength: original,
	}
}
