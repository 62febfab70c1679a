package richtext_test

import (
	"bskybridge/pkg/richtext"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestPipeline_RoundTrip(t *testing.T) {
	text := "Check this out: https://example.com/path?q=1 and also https://foo.org"
	p := richtext.Pipeline{Normalizer: richtext.NewNormalizer()}

	post := p.Build(text, time.Now())
	require.False(t, post.Truncated)
	require.Equal(t, text, post.Record.Text)
	require.Len(t, post.Record.Facets, 2)

	raw := []byte(post.Record.Text)
	want := []string{"https://example.com/path?q=1", "https://foo.org"}
	for i, f := range post.Record.Facets {
		require.Equal(t, want[i], string(raw[f.Index.Start:f.Index.End]))
		require.Equal(t, want[i], f.Features[0].URI)
	}
}

func TestPipeline_FacetsComputedAfterTruncation(t *testing.T) {
	// the second URL starts beyond the limit and must not produce a facet
	text := "intro https://kept.example/a " + strings.Repeat("é", 300) + " https://dropped.example/b"
	p := richtext.Pipeline{Normalizer: richtext.NewNormalizer()}

	post := p.Build(text, time.Now())
	require.True(t, post.Truncated)
	require.Equal(t, utf8.RuneCountInString(text), post.OriginalLength)
	require.Equal(t, 300, utf8.RuneCountInString(post.Record.Text))
	require.NoError(t, post.Record.Validate())
	require.Len(t, post.Record.Facets, 1)
	require.Equal(t, "https://kept.example/a", post.Record.Facets[0].Features[0].URI)
}

func TestPipeline_IsolateURLsBeforeScanning(t *testing.T) {
	p := richtext.Pipeline{Normalizer: richtext.NewNormalizer(), IsolateURLs: true}
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	post := p.Build("Blog: https://blog.example/p1 enjoy", createdAt)
	require.Equal(t, "Blog:\nhttps://blog.example/p1\nenjoy", post.Record.Text)
	require.Equal(t, createdAt, post.Record.CreatedAt)
	require.Len(t, post.Record.Facets, 1)
	f := post.Record.Facets[0]
	require.Equal(t, "https://blog.example/p1", post.Record.Text[f.Index.Start:f.Index.End])
}
