package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const (
	githubUserURL = "https://api.github.com/user"
	sessionLogin  = "login"
	sessionState  = "oauth_state"
	sessionCookie = "blogsession"
)

func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	if login, _ := session.Get(sessionLogin).(string); login == "" {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		}
		return
	}
	c.Next()
}

func (a *API) GithubLogin(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to start login")
		return
	}
	session := sessions.Default(c)
	session.Set(sessionState, state)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "Failed to start login")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, a.cfg.OAuth.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

func (a *API) AuthCallback(c *gin.Context) {
	session := sessions.Default(c)
	expected, _ := session.Get(sessionState).(string)
	session.Delete(sessionState)
	if expected == "" || c.Query("state") != expected {
		c.String(http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	token, err := a.cfg.OAuth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.String(http.StatusInternalServerError, "OAuth Exchange Failed")
		return
	}

	login, err := a.githubLogin(c, token)
	if err != nil {
		a.log.Warn("github user lookup failed", "error", err)
		c.String(http.StatusBadGateway, "GitHub user lookup failed")
		return
	}
	if !a.cfg.IsAdmin(login) {
		a.log.Warn("rejected admin login", "login", login)
		c.String(http.StatusForbidden, "Not an admin")
		return
	}

	session.Set(sessionLogin, login)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save session")
		return
	}
	a.log.Info("admin logged in", "login", login)
	c.Redirect(http.StatusFound, "/api/posts")
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/login")
}

func (a *API) githubLogin(c *gin.Context, token *oauth2.Token) (string, error) {
	client := a.cfg.OAuth.Client(c.Request.Context(), token)
	resp, err := client.Get(a.userURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var user struct {
		Login string `json:"login"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", err
	}
	return user.Login, nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
