package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bozor/api/middleware"
	"bozor/internal/dto"
	"bozor/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, dto.MessageResponse{Message: err.Error()})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrAlreadyVerified):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrInvalidToken):
		return writeError(c, http.StatusUnauthorized, err)
	case errors.Is(err, service.ErrNotVerified),
		errors.Is(err, service.ErrNotOwner):
		return writeError(c, http.StatusForbidden, err)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRegionNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		return writeError(c, http.StatusNotFound, err)
	case errors.Is(err, service.ErrEmailAlreadyRegistered),
		errors.Is(err, service.ErrPhoneAlreadyRegistered):
		return writeError(c, http.StatusConflict, err)
	}
	// Unexpected failures are logged with full context and never leak
	// driver details to the client.
	logrus.WithError(err).WithField("uri", c.Request().RequestURI).Error("internal error")
	return c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
}

func actorFromContext(c echo.Context) (service.Actor, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return service.Actor{}, false
	}
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{ID: userID, Role: role}, true
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func parsePageLimit(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func parseUintQuery(c echo.Context, name string) uint {
	value, _ := strconv.ParseUint(strings.TrimSpace(c.QueryParam(name)), 10, 32)
	return uint(value)
}
