package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/infra/config"
)

func newGateRouter(cfg *config.AppConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminAuthMiddleware(cfg))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/api/provinces", ok)
	r.GET("/admin", ok)
	r.GET("/admin/login", ok)
	r.GET("/admin/dashboard", ok)
	r.GET("/admin/api/schools", ok)
	r.GET("/administracion", ok)
	r.POST("/api/admin/auth", ok)
	return r
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{AdminUsername: "operador", AdminPassword: "secreto123"}
}

func TestAdminGate(t *testing.T) {
	cases := []struct {
		name         string
		method       string
		path         string
		cookie       string
		wantStatus   int
		wantRedirect bool
	}{
		{name: "non-admin path passes without cookie", method: http.MethodGet, path: "/api/provinces", wantStatus: http.StatusOK},
		{name: "root passes without cookie", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "login page is exempt", method: http.MethodGet, path: "/admin/login", wantStatus: http.StatusOK},
		{name: "auth endpoint is exempt", method: http.MethodPost, path: "/api/admin/auth", wantStatus: http.StatusOK},
		{name: "guarded path without cookie redirects", method: http.MethodGet, path: "/admin/dashboard", wantStatus: http.StatusFound, wantRedirect: true},
		{name: "admin root without cookie redirects", method: http.MethodGet, path: "/admin", wantStatus: http.StatusFound, wantRedirect: true},
		{name: "prefix lookalike path is not guarded", method: http.MethodGet, path: "/administracion", wantStatus: http.StatusOK},
		{name: "guarded api path without cookie redirects", method: http.MethodGet, path: "/admin/api/schools", wantStatus: http.StatusFound, wantRedirect: true},
		{name: "malformed cookie redirects", method: http.MethodGet, path: "/admin/dashboard", cookie: "not-json", wantStatus: http.StatusFound, wantRedirect: true},
		{name: "wrong username redirects", method: http.MethodGet, path: "/admin/dashboard", cookie: `{"username":"otro","password":"secreto123"}`, wantStatus: http.StatusFound, wantRedirect: true},
		{name: "wrong password redirects", method: http.MethodGet, path: "/admin/dashboard", cookie: `{"username":"operador","password":"mal"}`, wantStatus: http.StatusFound, wantRedirect: true},
		{name: "valid cookie passes", method: http.MethodGet, path: "/admin/dashboard", cookie: `{"username":"operador","password":"secreto123"}`, wantStatus: http.StatusOK},
		{name: "non-admin path ignores bad cookie", method: http.MethodGet, path: "/api/provinces", cookie: "not-json", wantStatus: http.StatusOK},
	}

	r := newGateRouter(testConfig())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.cookie != "" {
				// Cookie values arrive URL-encoded, as browsers send them.
				req.Header.Set("Cookie", AdminCookieName+"="+url.QueryEscape(tc.cookie))
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if tc.wantRedirect {
				if loc := w.Header().Get("Location"); loc != "/admin/login" {
					t.Fatalf("redirect location = %q, want /admin/login", loc)
				}
			}
		})
	}
}

func TestAdminGateMissingCookieNeverErrors(t *testing.T) {
	r := newGateRouter(testConfig())

	// Garbage cookie headers must degrade to a redirect, never a 5xx.
	for _, raw := range []string{"admin-auth=", "admin-auth=%zz", "admin-auth=null"} {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.Header.Set("Cookie", raw)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("cookie %q: status = %d, want %d", raw, w.Code, http.StatusFound)
		}
	}
}
