package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	mockservice "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/consumer/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw(func(echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, reached
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{
			UserID: userID,
			Roles:  []string{entity.RoleConsumer.String()},
			Type:   "access",
		}, nil)

	mw := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/consumer/profile", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate(func(c echo.Context) error {
		gotID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)
		assert.True(t, HasRole(c, entity.RoleConsumer))
		assert.False(t, HasRole(c, entity.RoleAdmin))

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	rec, reached := runMiddleware(t, mw.Authenticate, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	rec, reached := runMiddleware(t, mw.Authenticate, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, errors.New("token is expired"))

	mw := NewAuthMiddleware(tokenSvc)

	rec, reached := runMiddleware(t, mw.Authenticate, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestRequireRole(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	tests := []struct {
		name     string
		roles    any
		required entity.Role
		wantCode int
		wantPass bool
	}{
		{"matching role", []string{"retailer"}, entity.RoleRetailer, http.StatusOK, true},
		{"missing role", []string{"consumer"}, entity.RoleAdmin, http.StatusForbidden, false},
		{"no role info", nil, entity.RoleConsumer, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.roles != nil {
				c.Set(ContextKeyRoles, tt.roles)
			}

			reached := false
			handler := mw.RequireRole(tt.required)(func(echo.Context) error {
				reached = true

				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantPass, reached)
		})
	}
}
