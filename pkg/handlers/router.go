package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the public routes, and the admin routes when GitHub login
// is configured.
func NewRouter(api *API) *gin.Engine {
	r := gin.Default()

	r.GET("/api/search.json", api.SearchIndex)
	r.GET("/sitemap.xml", api.Sitemap)

	if !api.cfg.AdminEnabled() {
		return r
	}

	// Session Setup
	store := cookie.NewStore([]byte(api.cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 86400, HttpOnly: true})
	admin := r.Group("/", sessions.Sessions(sessionCookie, store))

	// --- Auth Routes ---
	admin.GET("/login", api.GithubLogin)
	admin.GET("/auth/callback", api.AuthCallback)
	admin.GET("/logout", Logout)

	// --- Admin API (Authorized) ---
	authorized := admin.Group("/api", AuthRequired)
	{
		authorized.GET("/posts", api.ListPosts)
		authorized.POST("/convert", api.HandleConvert)
	}

	return r
}
