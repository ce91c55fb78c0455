package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TraceIDHeader exposes the trace id to clients
	TraceIDHeader = "X-Trace-ID"
	// TraceIDKey is the gin context key of the trace id
	TraceIDKey = "trace_id"
)

// Trace starts a server span per request
func Trace(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// TraceContext copies the active trace id into the gin context and the response
func TraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		spanCtx := trace.SpanContextFromContext(c.Request.Context())
		if spanCtx.IsValid() {
			traceID := spanCtx.TraceID().String()
			c.Set(TraceIDKey, traceID)
			c.Header(TraceIDHeader, traceID)
		}
		c.Next()
	}
}
