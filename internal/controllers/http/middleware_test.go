package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticResolver struct {
	users map[string]*domain.User
}

func (r *staticResolver) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	return r.users[token], nil
}

func adminGatedRouter(resolver UserResolver, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identify(resolver))
	r.POST("/admin/orders/:id/confirm", RequireAdmin(), func(c *gin.Context) {
		*hits++
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	resolver := &staticResolver{users: map[string]*domain.User{
		"admin-token": {ID: 1, IsAdmin: true},
		"user-token":  {ID: 2},
	}}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantHits   int
	}{
		{name: "unauthenticated", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", authHeader: "Bearer bogus", wantStatus: http.StatusUnauthorized},
		{name: "non-admin user", authHeader: "Bearer user-token", wantStatus: http.StatusForbidden},
		{name: "admin", authHeader: "Bearer admin-token", wantStatus: http.StatusOK, wantHits: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := 0
			router := adminGatedRouter(resolver, &hits)

			req := httptest.NewRequest(http.MethodPost, "/admin/orders/1/confirm", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			// rejected callers must not reach the state-changing handler
			assert.Equal(t, tt.wantHits, hits)
		})
	}
}

func TestCartSessionMintsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CartSession())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, cartSessionID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, w.Body.String())
	cookies := w.Result().Cookies()
	found := false
	for _, ck := range cookies {
		if ck.Name == cartCookieName {
			found = true
			assert.Equal(t, w.Body.String(), ck.Value)
		}
	}
	assert.True(t, found, "cart_session cookie should be set on first touch")
}

func TestCartSessionKeepsExistingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CartSession())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, cartSessionID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cartCookieName, Value: "existing-session"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "existing-session", w.Body.String())
}
