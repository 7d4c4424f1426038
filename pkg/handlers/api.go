package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"astro-blog/pkg/config"
	"astro-blog/pkg/logging"
	"astro-blog/pkg/services"

	"github.com/gin-gonic/gin"
)

// API serves the blog collection and the admin converter.
type API struct {
	cfg   *config.Config
	posts *services.PostStore
	log   logging.Logger

	// userURL is the GitHub endpoint queried after login.
	userURL string

	convertMu sync.Mutex
}

func NewAPI(cfg *config.Config, posts *services.PostStore, log logging.Logger) *API {
	if log == nil {
		log = logging.Nop()
	}
	return &API{cfg: cfg, posts: posts, log: log, userURL: githubUserURL}
}

// SearchIndex serves the search index consumed by the client-side search.
func (a *API) SearchIndex(c *gin.Context) {
	posts, err := a.posts.Posts()
	if err != nil {
		a.log.Error("failed to load posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(services.BuildSearchIndex(posts)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode index"})
		return
	}
	c.Data(http.StatusOK, "application/json", bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

func (a *API) Sitemap(c *gin.Context) {
	posts, err := a.posts.Posts()
	if err != nil {
		a.log.Error("failed to load posts", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	body, err := services.BuildSitemap(a.cfg.SiteURL, a.cfg.PostURL, posts)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml", body)
}

func (a *API) ListPosts(c *gin.Context) {
	posts, err := a.posts.Posts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// HandleConvert runs the frontmatter converter over the content directory.
// Only one run may be in flight.
func (a *API) HandleConvert(c *gin.Context) {
	dryRun, _ := strconv.ParseBool(c.Query("dry_run"))

	if !a.convertMu.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "Conversion already running"})
		return
	}
	defer a.convertMu.Unlock()

	var out bytes.Buffer
	summary, err := services.NewConverter(a.cfg.ContentDir, dryRun, &out).Run()
	if err != nil {
		a.log.Error("conversion failed", "dir", a.cfg.ContentDir, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !dryRun {
		a.posts.Invalidate()
	}

	a.log.Info("conversion finished", "dir", a.cfg.ContentDir, "dry_run", dryRun,
		"files", len(summary.Reports), "failed", summary.Failed())
	c.JSON(http.StatusOK, gin.H{"status": "ok", "summary": summary, "log": out.String()})
}
