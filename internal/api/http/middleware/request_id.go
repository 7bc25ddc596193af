package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxLogLine caps the API log line, body included.
const maxLogLine = 80

// requestIDKey is the key used to store request ID in context
type requestIDKey struct{}

// RequestIDMiddleware ensures every request has a stable request ID.
// - Reads X-Request-Id header if present
// - Otherwise generates a new one
// - Stores it in both Gin context and standard context as "request_id"
// - Echoes it back in response header X-Request-Id
// - Logs /api requests with status, latency and the response body
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)

		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), rid))

		c.Writer.Header().Set("X-Request-Id", rid)

		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api") {
			c.Next()
			return
		}

		bw := &bodyLogWriter{ResponseWriter: c.Writer}
		c.Writer = bw

		start := time.Now()
		c.Next()

		line := fmt.Sprintf("%s %s %d in %dms", c.Request.Method, path, c.Writer.Status(), time.Since(start).Milliseconds())
		if bw.body.Len() > 0 {
			line += " :: " + strings.TrimSpace(bw.body.String())
		}
		log.Printf("[api] id=%s %s", rid, truncate(line, maxLogLine))
	}
}

// WithRequestID returns a copy of ctx carrying rid.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// GetRequestID extracts the request ID from a standard context
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

type bodyLogWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyLogWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxLogLine {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *bodyLogWriter) WriteString(s string) (int, error) {
	if w.body.Len() < maxLogLine {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}
