package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/alfredtoussaint-cpu/dealshaq/config"

	"github.com/labstack/echo/v4"
)

// HeaderInternalToken carries the shared secret on service-to-service calls.
const HeaderInternalToken = "X-Internal-Token"

// InternalAuthMiddleware gates the /internal surface behind a shared
// secret, so only the order pipeline can feed purchase events in.
type InternalAuthMiddleware struct {
	token string
}

// NewInternalAuthMiddleware is the constructor for InternalAuthMiddleware.
func NewInternalAuthMiddleware(cfg *config.Config) *InternalAuthMiddleware {
	return &InternalAuthMiddleware{token: cfg.SecretKey.Internal}
}

// RequireToken rejects requests whose X-Internal-Token header does not
// match the configured secret. An empty configured secret closes the
// surface entirely rather than leaving it open.
func (m *InternalAuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		presented := c.Request().Header.Get(HeaderInternalToken)
		if m.token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(m.token)) != 1 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid internal token"})
		}

		return next(c)
	}
}
