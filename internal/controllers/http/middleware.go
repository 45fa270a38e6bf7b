package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	userContextKey    = "currentUser"
	sessionContextKey = "cartSession"
	cartCookieName    = "cart_session"
	bearerPrefix      = "Bearer "
)

// UserResolver resolves a session token to the current user; unknown
// tokens resolve to (nil, nil).
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// Identify attaches the authenticated user to the request context when
// a valid bearer token is present. It never rejects; the Require*
// middlewares gate access.
func Identify(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}
		token := strings.TrimPrefix(header, bearerPrefix)
		user, err := resolver.CurrentUser(c.Request.Context(), token)
		if err == nil && user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the admin transitions: unauthenticated callers get
// 401, authenticated non-admins get 403, and in both cases no state
// change happens downstream.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CartSession guarantees a browsing-session id, minting a cookie on
// first touch.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cartCookieName)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(cartCookieName, sid, int((24 * time.Hour).Seconds()), "/", "", false, true)
		}
		c.Set(sessionContextKey, sid)
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

func cartSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
