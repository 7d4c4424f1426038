package services

import (
	"bytes"
	"time"

	"astro-blog/pkg/models"

	"github.com/snabb/sitemap"
)

// jsDateLayout matches Date.prototype.toJSON.
const jsDateLayout = "2006-01-02T15:04:05.000Z"

func FormatJSDate(t time.Time) string {
	return t.UTC().Format(jsDateLayout)
}

// BuildSearchIndex maps posts to the entries the client-side search loads.
func BuildSearchIndex(posts []models.Post) []models.SearchEntry {
	entries := make([]models.SearchEntry, 0, len(posts))
	for _, post := range posts {
		tags := post.Data.Tags
		if tags == nil {
			tags = []string{}
		}
		categories := post.Data.Categories
		if categories == nil {
			categories = []string{}
		}
		entries = append(entries, models.SearchEntry{
			ID: post.ID,
			Data: models.SearchData{
				Title:       post.Data.Title,
				Description: post.Data.Description,
				PubDate:     FormatJSDate(post.Data.PubDate),
				Tags:        tags,
				Categories:  categories,
			},
		})
	}
	return entries
}

// BuildSitemap renders a sitemap with the site root followed by one entry
// per post.
func BuildSitemap(siteURL string, postURL func(id string) string, posts []models.Post) ([]byte, error) {
	sm := sitemap.New()
	sm.Add(&sitemap.URL{Loc: siteURL + "/"})
	for _, post := range posts {
		lastMod := post.Data.PubDate.UTC()
		sm.Add(&sitemap.URL{Loc: postURL(post.ID), LastMod: &lastMod})
	}

	var buf bytes.Buffer
	if _, err := sm.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
