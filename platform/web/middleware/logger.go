// Package middleware holds the gin middlewares shared by the api routers.
package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxLoggedBody caps how much of a request body ends up in a log line
const maxLoggedBody = 4 << 10

// LoggerConfig configures Logger
type LoggerConfig struct {
	Log       *zap.SugaredLogger
	SkipPaths []string
}

// Logger writes one structured line per request, including the request body
func Logger(conf LoggerConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(conf.SkipPaths))
	for _, p := range conf.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if _, ok := skip[path]; ok {
			ctx.Next()
			return
		}

		start := time.Now()
		body := peekBody(ctx)

		ctx.Next()

		conf.Log.Infow("request",
			"method", ctx.Request.Method,
			"path", path,
			"status", ctx.Writer.Status(),
			"size", ctx.Writer.Size(),
			"latency", time.Since(start).String(),
			"requestID", GetRequestID(ctx),
			"body", body,
		)
	}
}

// peekBody reads at most maxLoggedBody bytes of the request body for the log line and puts them
// back in front of the unread rest, so handlers still see the whole body
func peekBody(ctx *gin.Context) string {
	body := ctx.Request.Body
	if body == nil || body == http.NoBody {
		return ""
	}
	head, err := io.ReadAll(io.LimitReader(body, maxLoggedBody+1))
	ctx.Request.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(head), body), Closer: body}
	if err != nil {
		return ""
	}
	if len(head) > maxLoggedBody {
		return string(head[:maxLoggedBody]) + "..."
	}
	return string(head)
}

// replayBody reads the peeked bytes then the original body, closing the original
type replayBody struct {
	io.Reader
	io.Closer
}
