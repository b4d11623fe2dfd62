package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/application/identity"
	"github.com/warungpos/backend/internal/interfaces/http/dto"
)

// ActingUserHeader identifies which user performs a write operation
const ActingUserHeader = "X-Acting-User"

// ActingUser resolves the acting user header into the request context.
// A missing header passes through untouched so handlers that do not
// record an actor keep working; a malformed value is rejected here
// rather than surfacing later as a foreign key error.
func ActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ActingUserHeader)
		if raw == "" {
			c.Next()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrCodeBadRequest,
				"X-Acting-User must be a valid UUID",
			))
			return
		}

		ctx := identity.WithActor(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
