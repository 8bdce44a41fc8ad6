package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/validator"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	mockusecase "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/usecase"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_RegisterConsumer(t *testing.T) {
	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, slog.New(slog.DiscardHandler))

	consumer := &entity.Consumer{
		ID:    uuid.New(),
		Email: "jane@example.com",
		Name:  "Jane",
	}
	mockUC.EXPECT().
		RegisterConsumer(mock.Anything, &usecase.RegisterConsumerInput{
			Name:     "Jane",
			Email:    "jane@example.com",
			Password: "hunter2hunter2",
		}).
		Return(&usecase.RegisterConsumerOutput{Consumer: consumer}, nil)

	body := `{"name":"Jane","email":"jane@example.com","password":"hunter2hunter2"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register/consumer", body)

	require.NoError(t, handler.RegisterConsumer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
}

func TestUserHandler_RegisterConsumer_InvalidBody(t *testing.T) {
	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, slog.New(slog.DiscardHandler))

	// Missing email fails validation before the usecase is touched.
	body := `{"name":"Jane","password":"hunter2hunter2"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register/consumer", body)

	err := handler.RegisterConsumer(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Login(t *testing.T) {
	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, slog.New(slog.DiscardHandler))

	mockUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Email:    "jane@example.com",
			Password: "hunter2hunter2",
		}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Role:         entity.RoleConsumer,
		}, nil)

	body := `{"email":"jane@example.com","password":"hunter2hunter2"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access")
}
