package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vbodnar/lifetrack-app/internal/dates"
)

// Header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a request id to every response, keeping
// the one the client sent when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// dateQuery reads the ?date= parameter, defaulting to today. The empty
// string return signals an already-aborted request.
func dateQuery(c *gin.Context) string {
	date := c.Query("date")
	if date == "" {
		return dates.Today()
	}
	if !dates.Valid(date) {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
		return ""
	}
	return date
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid id format.")
		return 0, false
	}
	return id, true
}
