package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID keeps the caller supplied request id or assigns a new one, echoing it in the response
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or empty when the middleware is not installed
func GetRequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
