package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger emits one structured log line per request. The log level follows
// the response status: 5xx at error, 4xx at warn, everything else at info.
func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		fields := logrus.Fields{
			"timestamp":  param.TimeStamp.Format(time.RFC3339),
			"method":     param.Method,
			"path":       param.Path,
			"status":     param.StatusCode,
			"latency":    param.Latency,
			"client_ip":  param.ClientIP,
			"user_agent": param.Request.UserAgent(),
			"request_id": param.Keys["request_id"],
		}

		// Add user info if available
		if userID, exists := param.Keys["user_id"]; exists {
			fields["user_id"] = userID
		}

		switch {
		case param.StatusCode >= 500:
			logrus.WithFields(fields).Error("HTTP Request")
		case param.StatusCode >= 400:
			logrus.WithFields(fields).Warn("HTTP Request")
		default:
			logrus.WithFields(fields).Info("HTTP Request")
		}

		return ""
	})
}
