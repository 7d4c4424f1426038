package services

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"astro-blog/pkg/logging"
	"astro-blog/pkg/models"
)

// PostStore caches the parsed blog collection. Entries expire after ttl;
// Invalidate drops them immediately.
type PostStore struct {
	dir string
	ttl time.Duration
	log logging.Logger
	now func() time.Time

	mu       sync.Mutex
	posts    []models.Post
	loaded   bool
	loadedAt time.Time
}

func NewPostStore(dir string, ttl time.Duration, log logging.Logger) *PostStore {
	if log == nil {
		log = logging.Nop()
	}
	return &PostStore{dir: dir, ttl: ttl, log: log, now: time.Now}
}

// Posts returns every post, newest first.
func (s *PostStore) Posts() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && (s.ttl <= 0 || s.now().Sub(s.loadedAt) < s.ttl) {
		return s.posts, nil
	}

	posts, err := s.load()
	if err != nil {
		return nil, err
	}
	s.posts = posts
	s.loaded = true
	s.loadedAt = s.now()
	return s.posts, nil
}

func (s *PostStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.posts = nil
}

func (s *PostStore) load() ([]models.Post, error) {
	posts := []models.Post{}
	dirtyFiles := gitDirtyFiles(s.dir)

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsContentFile(d.Name()) {
			return nil
		}
		relPath, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", relPath, err)
		}
		fm, _, format, err := ParseFrontMatter(content)
		if err != nil {
			s.log.Warn("skipping post", "path", relPath, "error", err)
			return nil
		}
		data, err := postDataFrom(fm)
		if err != nil {
			s.log.Warn("skipping post", "path", relPath, "error", err)
			return nil
		}

		posts = append(posts, models.Post{
			ID:      postID(relPath),
			Path:    relPath,
			Data:    data,
			Format:  format,
			IsDirty: dirtyFiles[relPath],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Data.PubDate.Equal(posts[j].Data.PubDate) {
			return posts[i].Data.PubDate.After(posts[j].Data.PubDate)
		}
		return posts[i].ID < posts[j].ID
	})
	s.log.Debug("loaded posts", "dir", s.dir, "count", len(posts))
	return posts, nil
}

// postID is the collection id: the relative path without its extension.
func postID(relPath string) string {
	return strings.TrimSuffix(relPath, filepath.Ext(relPath))
}

func postDataFrom(fm map[string]interface{}) (models.PostData, error) {
	title, _ := fm["title"].(string)
	if strings.TrimSpace(title) == "" {
		return models.PostData{}, fmt.Errorf("missing title")
	}
	pubDate, err := parseDate(fm["pubDate"])
	if err != nil {
		return models.PostData{}, err
	}
	description, _ := fm["description"].(string)
	heroImage, _ := fm["heroImage"].(string)

	return models.PostData{
		Title:       title,
		Description: description,
		PubDate:     pubDate,
		HeroImage:   heroImage,
		Tags:        stringList(fm["tags"]),
		Categories:  stringList(fm["categories"]),
	}, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

func parseDate(v interface{}) (time.Time, error) {
	var raw string
	switch d := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("missing pubDate")
	case time.Time:
		return d.UTC(), nil
	case string:
		raw = d
	case fmt.Stringer:
		raw = d.String()
	default:
		raw = fmt.Sprint(d)
	}

	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid pubDate %q", raw)
}

// stringList normalizes a decoded list field. Missing fields become an
// empty list, a lone string becomes a one element list.
func stringList(v interface{}) []string {
	switch list := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case []string:
		return append([]string{}, list...)
	case string:
		if list == "" {
			return []string{}
		}
		return []string{list}
	default:
		return []string{}
	}
}

// gitDirtyFiles maps paths relative to dir to true when git reports them as
// modified or untracked. Outside a work tree the map is empty.
func gitDirtyFiles(dir string) map[string]bool {
	dirty := make(map[string]bool)

	prefixCmd := exec.Command("git", "rev-parse", "--show-prefix")
	prefixCmd.Dir = dir
	prefixOut, err := prefixCmd.Output()
	if err != nil {
		return dirty
	}
	prefix := strings.TrimSpace(string(prefixOut))

	cmd := exec.Command("git", "status", "--porcelain", "--untracked-files=all", "--", ".")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return dirty
	}

	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 4 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		if _, renamed, ok := strings.Cut(path, " -> "); ok {
			path = renamed
		}
		path = strings.Trim(path, "\"")
		if rel, ok := strings.CutPrefix(path, prefix); ok {
			dirty[rel] = true
		}
	}
	return dirty
}
