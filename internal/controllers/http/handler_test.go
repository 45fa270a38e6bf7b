package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/infra/session"
	"storefront/internal/mocks"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	tests := []struct {
		name        string
		authHeader  string
		wantRevoked bool
	}{
		{name: "bearer token is revoked", authHeader: "Bearer tok-123", wantRevoked: true},
		// same length as a bearer header and the token appears at the same
		// offset, so byte slicing without a prefix check would revoke it
		{name: "basic credentials do not revoke", authHeader: "Basic Xtok-123", wantRevoked: false},
		{name: "missing header", authHeader: "", wantRevoked: false},
		{name: "bare prefix", authHeader: "Bearer ", wantRevoked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := session.NewMemoryTokenStore()
			assert.NoError(t, tokens.Put(ctx, "tok-123", 1))

			auth := services.NewAuthService(new(mocks.MockUserRepository), tokens)
			h := NewHandler(nil, nil, auth, nil, nil)

			r := gin.New()
			r.POST("/auth/logout", h.Logout)

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			_, ok, err := tokens.Lookup(ctx, "tok-123")
			assert.NoError(t, err)
			assert.Equal(t, !tt.wantRevoked, ok, "token liveness after logout")
		})
	}
}
