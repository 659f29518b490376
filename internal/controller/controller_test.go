package controller_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/controller"
	"github.com/lshigami/examprep/internal/service"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&service.InsufficientPoolError{Faculty: "Law", Required: 100, Actual: 42}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", service.ErrNotFound), http.StatusNotFound},
		{service.ErrAlreadyBookmarked, http.StatusConflict},
		{service.ErrInvalidSetSize, http.StatusBadRequest},
		{service.ErrMissingUser, http.StatusBadRequest},
		{fmt.Errorf("%w: bad", service.ErrInvalidImport), http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := controller.StatusFor(tc.err); got != tc.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(controller.Identity())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, controller.UserID(c)+"|"+controller.Faculty(c))
	})
	r.GET("/admin", controller.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestIdentity_HeadersThenQuery(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami?user_id=query-user&faculty=Law", nil)
	req.Header.Set(controller.HeaderUserID, "header-user")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "header-user|Law" {
		t.Errorf("expected header to win and query fallback for faculty, got %q", w.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(controller.HeaderRole, controller.RoleAdmin)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
