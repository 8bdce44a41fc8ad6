package handler

import (
	"net/http"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/classify"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CategoryHandler serves the fixed item taxonomy.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories returns the fixed category taxonomy used by the
// classifier.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, classify.Categories, "")
}
