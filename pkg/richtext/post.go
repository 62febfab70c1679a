package richtext

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// PostCollection is the NSID of the post collection and record type.
	PostCollection = "app.bsky.feed.post"
	// CreatedAtLayout is the ISO-8601 UTC layout used for createdAt.
	CreatedAtLayout = "2006-01-02T15:04:05.000Z"
)

// ErrInvalidFacet is returned by PostRecord.Validate when a facet does not
// address a valid byte range of the text.
var ErrInvalidFacet = errors.New("facet span out of range")

// PostRecord is an app.bsky.feed.post record.
type PostRecord struct {
	Text      string
	Facets    []Facet
	CreatedAt time.Time
}

// AssemblePost packages text and facets with a creation timestamp. Neither
// text nor facets are modified.
func AssemblePost(text string, facets []Facet, createdAt time.Time) PostRecord {
	return PostRecord{
		Text:      text,
		Facets:    facets,
		CreatedAt: createdAt,
	}
}

// Validate checks that every facet addresses a byte range inside Text.
func (r PostRecord) Validate() error {
	for i, f := range r.Facets {
		if !f.Index.Valid(r.Text) {
			return fmt.Errorf("facet %d [%d,%d) of %d bytes: %w",
				i, f.Index.Start, f.Index.End, len(r.Text), ErrInvalidFacet)
		}
	}

	return nil
}

// MarshalJSON encodes the record with its lexicon $type. Facets are omitted
// when there are none.
func (r PostRecord) MarshalJSON() ([]byte, error) {
	type record struct {
		Type      string  `json:"$type"`
		Text      string  `json:"text"`
		Facets    []Facet `json:"facets,omitempty"`
		CreatedAt string  `json:"createdAt"`
	}

	return json.Marshal(record{ //nolint: wrapcheck
		Type:      PostCollection,
		Text:      r.Text,
		Facets:    r.Facets,
		CreatedAt: r.CreatedAt.UTC().Format(CreatedAtLayout),
	})
}
