package models

import "time"

// Post represents a blog post in the content collection.
type Post struct {
	ID      string   `json:"id"`
	Path    string   `json:"path"`
	Data    PostData `json:"data"`
	Format  string   `json:"format,omitempty"` // yaml, toml, json
	IsDirty bool     `json:"is_dirty"`
}

// PostData is the target-schema frontmatter of a post.
type PostData struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pubDate"`
	HeroImage   string    `json:"heroImage,omitempty"`
	Tags        []string  `json:"tags"`
	Categories  []string  `json:"categories"`
}

// SearchEntry is one element of the client-side search index.
type SearchEntry struct {
	ID   string     `json:"id"`
	Data SearchData `json:"data"`
}

type SearchData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PubDate     string   `json:"pubDate"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`
}
