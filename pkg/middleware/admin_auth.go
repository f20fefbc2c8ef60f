package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/infra/config"
)

const (
	AdminCookieName = "admin-auth"

	adminPrefix      = "/admin"
	adminLoginPath   = "/admin/login"
	adminAuthAPIPath = "/api/admin/auth"
)

type adminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminAuthMiddleware guards everything under /admin except the login page
// and the auth endpoint itself. Any missing, malformed or mismatched cookie
// degrades to a redirect; it never produces an error response.
//
// The cookie carries plaintext credentials for compatibility with the
// existing admin frontend. TODO: move to a signed session token once the
// frontend stops reading the cookie fields.
func AdminAuthMiddleware(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		guarded := path == adminPrefix || strings.HasPrefix(path, adminPrefix+"/")
		if !guarded || path == adminLoginPath || path == adminAuthAPIPath {
			c.Next()
			return
		}

		raw, err := c.Cookie(AdminCookieName)
		if err != nil {
			redirectToLogin(c)
			return
		}

		var creds adminCredentials
		if err := json.Unmarshal([]byte(raw), &creds); err != nil {
			redirectToLogin(c)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			redirectToLogin(c)
			return
		}

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, adminLoginPath)
	c.Abort()
}
