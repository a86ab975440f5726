package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkurbatov/amazon-search-cache/pkg/ctxmeta"
)

// HeaderRequestID — заголовок сквозного идентификатора запроса.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware — сквозной request_id: доверяем клиентскому
// заголовку, иначе генерируем свой. Идентификатор уходит в контекст
// запроса (для логов) и обратно клиенту в заголовке ответа.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(
			ctxmeta.WithRequestID(c.Request.Context(), id),
		)

		c.Next()
	}
}
