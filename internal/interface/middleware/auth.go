package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-graphql-blog/internal/auth"
	"github.com/oksasatya/go-graphql-blog/pkg/helpers"
)

// AuthContext builds the per-request authentication context. A valid
// `Authorization: Bearer <token>` header attaches a Principal to the
// request context; a missing header or a failed verification leaves the
// request unauthenticated without aborting it. Enforcement belongs to the
// resolvers that need it.
func AuthContext(tokens *helpers.TokenManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			logger.WithError(err).Debug("token verification failed, continuing unauthenticated")
			c.Next()
			return
		}

		principal := &auth.Principal{UserID: claims.UserID, Username: claims.Username}
		c.Request = c.Request.WithContext(auth.NewContext(c.Request.Context(), principal))
		c.Next()
	}
}
