package ui

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID carries the per-request correlation id
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// requestID reuses a well-formed incoming id or mints a new one
func requestID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if _, err := uuid.Parse(incoming); err == nil {
		return incoming
	}
	return uuid.NewString()
}

// RequestID is the gin middleware that tags every response with X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestID(c.GetHeader(HeaderRequestID))
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDHandler is the net/http variant used by the chi router
func RequestIDHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestID(r.Header.Get(HeaderRequestID))
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// RequestIDFrom returns the id stored by RequestIDHandler
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(RequestID())
	s.router.Use(Metrics())
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
}
