package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// callerKey is the key used to store the authenticated caller in the request
// context.
const callerKey = contextKey("caller")

// GetCallerFromContext retrieves the authenticated caller from the Gin
// context. It returns the caller and a boolean indicating if it was found.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	caller, ok := c.Request.Context().Value(callerKey).(domain.Caller)
	return caller, ok
}

// withCaller stores the caller in a standard context.
func withCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}
