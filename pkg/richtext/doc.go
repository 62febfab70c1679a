// Package richtext turns plain message text into an app.bsky.feed.post record.
//
// The pipeline is fixed: the text is normalized to the platform length limit
// first, then scanned for URLs in byte space, then each URL becomes a link
// facet addressing the UTF-8 bytes of the final text. Facet offsets are never
// computed against text that is later modified.
//
// Everything in this package is pure and safe for concurrent use.
package richtext
