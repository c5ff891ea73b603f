package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	actorKey = "actor"
)

// RequestLogger puts a request-scoped entry on the request context and logs
// every finished request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
		})
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), entry))

		c.Next()

		entry.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("request completed")
	}
}

// RequireActor reads the caller identity set by the upstream authenticator.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email == "" {
			writeError(c, http.StatusUnauthorized,
				"UNAUTHENTICATED",
				"missing "+HeaderUserEmail+" header",
			)
			return
		}

		role := circulation.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
		switch role {
		case "":
			role = circulation.RoleUser
		case circulation.RoleAdmin, circulation.RoleUser:
		default:
			writeError(c, http.StatusBadRequest,
				"INVALID_ROLE",
				HeaderUserRole+" must be admin or user",
			)
			return
		}

		c.Set(actorKey, circulation.Actor{Email: email, Role: role})
		c.Next()
	}
}

func actorFrom(c *gin.Context) circulation.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(circulation.Actor); ok {
			return a
		}
	}
	return circulation.Actor{}
}
