package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"journal-ripples/internal/model"
	"journal-ripples/pkg/response"
)

type scopeKey struct{}

// Scope resolves the request owner from the gateway header and rejects
// anonymous requests.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Scope: missing %s on %s", UserIDHeader, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		ctx := SetScope(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SetScope returns a copy of ctx carrying sc.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the scope stored by Scope, or the zero Scope.
func GetScope(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey{}).(model.Scope)
	return sc
}
