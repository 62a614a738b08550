package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/planora/planora-api/internal/application"
	"github.com/planora/planora-api/pkg/response"
)

// writeServiceError maps the application error taxonomy onto HTTP
// statuses. Unexpected errors become 500 with the cause text attached,
// so persistence failures surface as diagnostics instead of crashes.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "email already in use", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrEventNotFound):
		response.Error[any](c, http.StatusNotFound, "event not found", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("unexpected service error")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", err.Error())
	}
}
