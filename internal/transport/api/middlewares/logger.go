package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Приватные ошибки из c.Errors попадают только в лог.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": c.GetString(RequestIDKey),
		}
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			fields["user_id"] = userID
		}

		entry := l.WithFields(fields)
		switch {
		case len(c.Errors) > 0:
			entry.WithError(c.Errors.Last()).Warn("request completed with errors")
		case c.Writer.Status() >= 500: //nolint:mnd
			entry.Error("request failed")
		default:
			entry.Info("request completed")
		}
	}
}
