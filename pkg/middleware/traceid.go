package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autoescuelas/internal/infra/logger"
)

const TraceHeader = "X-Trace-ID"

// TraceIDMiddleware tags every request with a trace id, reusing the one an
// upstream proxy sent when present, and hangs a pre-tagged log entry on the
// context for the handlers.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set("trace_id", traceID)
		c.Set("log_entry", logger.Log.WithField("trace_id", traceID))
		c.Writer.Header().Set(TraceHeader, traceID)
		c.Next()
	}
}
