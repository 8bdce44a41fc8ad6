package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alfredtoussaint-cpu/dealshaq/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func internalConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Internal = secret

	return cfg
}

func runInternalAuth(t *testing.T, mw *InternalAuthMiddleware, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/purchase-events", nil)
	if token != "" {
		req.Header.Set(HeaderInternalToken, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw.RequireToken(func(echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, reached
}

func TestRequireToken_ValidToken(t *testing.T) {
	mw := NewInternalAuthMiddleware(internalConfig("pipeline-secret"))

	rec, reached := runInternalAuth(t, mw, "pipeline-secret")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestRequireToken_MissingToken(t *testing.T) {
	mw := NewInternalAuthMiddleware(internalConfig("pipeline-secret"))

	rec, reached := runInternalAuth(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestRequireToken_WrongToken(t *testing.T) {
	mw := NewInternalAuthMiddleware(internalConfig("pipeline-secret"))

	rec, reached := runInternalAuth(t, mw, "guessed-secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestRequireToken_UnconfiguredSecretClosesSurface(t *testing.T) {
	mw := NewInternalAuthMiddleware(internalConfig(""))

	rec, reached := runInternalAuth(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
