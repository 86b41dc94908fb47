// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the requesting user's ID.
	UserIDKey ContextKey = "user_id"

	// UserIDHeader carries the requesting user's ID on every API call.
	UserIDHeader = "X-User-ID"
)

// UserScope returns a Gin middleware handler that resolves the requesting
// user from the X-User-ID header. All data access downstream is scoped to
// this user; records owned by anyone else behave as if they do not exist.
func UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		headerValue := c.GetHeader(UserIDHeader)
		if headerValue == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "X-User-ID header is required",
				Code:  string(domainerror.ErrCodeMissingUserID),
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(headerValue)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "X-User-ID header must be a valid UUID",
				Code:  string(domainerror.ErrCodeInvalidUserID),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
