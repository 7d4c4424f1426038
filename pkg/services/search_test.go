package services

import (
	"strings"
	"testing"
	"time"

	"astro-blog/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchIndex(t *testing.T) {
	posts := []models.Post{
		{
			ID: "hello",
			Data: models.PostData{
				Title:       "Hello",
				Description: "Tech",
				PubDate:     time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC),
				Tags:        []string{"go"},
				Categories:  []string{"Tech"},
			},
		},
		{ID: "bare", Data: models.PostData{Title: "Bare"}},
	}

	entries := BuildSearchIndex(posts)
	require.Len(t, entries, 2)

	assert.Equal(t, models.SearchEntry{
		ID: "hello",
		Data: models.SearchData{
			Title:       "Hello",
			Description: "Tech",
			PubDate:     "2020-01-01T10:00:00.000Z",
			Tags:        []string{"go"},
			Categories:  []string{"Tech"},
		},
	}, entries[0])

	assert.NotNil(t, entries[1].Data.Tags)
	assert.NotNil(t, entries[1].Data.Categories)
}

func TestFormatJSDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2020-01-01T01:02:03.450Z", FormatJSDate(time.Date(2020, 1, 1, 10, 2, 3, 450_000_000, tokyo)))
}

func TestBuildSitemap(t *testing.T) {
	posts := []models.Post{
		{ID: "hello", Data: models.PostData{PubDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}},
	}
	postURL := func(id string) string { return "https://example.com/blog/" + id + "/" }

	out, err := BuildSitemap("https://example.com", postURL, posts)
	require.NoError(t, err)

	xml := string(out)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, xml, "<loc>https://example.com/</loc>")
	assert.Equal(t, 2, strings.Count(xml, "<url>"))
	assert.Contains(t, xml, "<loc>https://example.com/blog/hello/</loc>")
	assert.Contains(t, xml, "<lastmod>2020-01-01T00:00:00Z</lastmod>")
}
