package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/amazon-search-cache/internal/ports"
	"github.com/mkurbatov/amazon-search-cache/pkg/ctxmeta"
)

// Ручки, которые дёргают мониторинги; их в access-лог не пишем.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/health":  {},
}

// RequestLogger — access-лог: одна строка на запрос после его обработки.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if _, quiet := quietPaths[c.FullPath()]; quiet {
			return
		}

		// Для незарегистрированного маршрута FullPath пустой — берём сырой путь.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		traceID, _ := ctxmeta.TraceIDFromContext(ctx)
		spanID, _ := ctxmeta.SpanIDFromContext(ctx)

		log.Infof(ctx,
			"request id=%s trace=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			rid, traceID, spanID,
			c.Request.Method, path, c.Writer.Status(),
			c.ClientIP(), time.Since(start), c.Writer.Size(),
		)
	}
}
