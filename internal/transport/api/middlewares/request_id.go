package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-ID"
	RequestIDKey     = "requestID"
)

// RequestID берет идентификатор запроса из заголовка X-Request-ID или генерирует новый.
// Идентификатор доступен в контексте gin по ключу RequestIDKey и возвращается в заголовке ответа.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(HeaderXRequestID, requestID)
		c.Next()
	}
}
