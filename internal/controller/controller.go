// Package controller holds the HTTP plumbing shared by the admin and user controllers:
// caller identity, the admin guard and the error to status mapping.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	HeaderUserID  = "X-User-ID"
	HeaderFaculty = "X-User-Faculty"
	HeaderRole    = "X-User-Role"

	RoleAdmin = "admin"

	ctxUserID  = "userID"
	ctxFaculty = "faculty"
	ctxRole    = "role"
)

// Identity reads the caller set by the upstream auth proxy. Query parameters are a fallback for
// clients that cannot set headers.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUserID, firstNonEmpty(c.GetHeader(HeaderUserID), c.Query("user_id")))
		c.Set(ctxFaculty, firstNonEmpty(c.GetHeader(HeaderFaculty), c.Query("faculty")))
		c.Set(ctxRole, c.GetHeader(HeaderRole))
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != RoleAdmin {
			log.Warn().Str("userID", c.GetString(ctxUserID)).Str("path", c.FullPath()).Msg("Admin route called without admin role")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string  { return c.GetString(ctxUserID) }
func Faculty(c *gin.Context) string { return c.GetString(ctxFaculty) }

// RespondError writes the status that matches err. message is what the client sees for server errors.
func RespondError(c *gin.Context, err error, message string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg(message)
		c.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
		return
	}
	log.Warn().Err(err).Str("path", c.FullPath()).Int("status", status).Msg(message)
	c.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

func StatusFor(err error) int {
	var poolErr *service.InsufficientPoolError
	switch {
	case errors.As(err, &poolErr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyBookmarked):
		return http.StatusConflict
	case errors.Is(err, service.ErrMissingUser),
		errors.Is(err, service.ErrMissingFaculty),
		errors.Is(err, service.ErrInvalidSetSize),
		errors.Is(err, service.ErrEmptySubmission),
		errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrInvalidImport):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// BindError answers a request whose body or query failed gin binding.
func BindError(c *gin.Context, err error, handler string) {
	log.Warn().Err(err).Msg(handler + ": Failed to bind request")
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
