package handler

import (
	"net/http"

	"bozor/internal/dto"
	"bozor/internal/entity"
	"bozor/internal/repository"
	"bozor/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewUserHandler(svc *service.AuthService, validate *validator.Validate) *UserHandler {
	return &UserHandler{Service: svc, Validate: validate}
}

func (h *UserHandler) List(c echo.Context) error {
	page, limit := parsePageLimit(c)
	params := repository.ListUsersParams{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
		Role:   entity.UserRole(c.QueryParam("role")),
		Sort:   c.QueryParam("sort"),
		Order:  c.QueryParam("order"),
	}
	users, total, err := h.Service.ListUsers(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return c.JSON(http.StatusOK, dto.UsersPageResponse{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Data:       dto.UserResponsesFromEntities(users),
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	user, err := h.Service.GetUser(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateUserRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	input := service.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		RegionID: req.RegionID,
		Image:    req.Image,
		Year:     req.Year,
	}
	user, err := h.Service.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.DeleteUser(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
}
