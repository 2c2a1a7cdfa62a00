package handler

import (
	"errors"
	"net/http"

	"bozor/internal/dto"
	"bozor/internal/repository"
	"bozor/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	Service  *service.CommentService
	Validate *validator.Validate
}

func NewCommentHandler(svc *service.CommentService, validate *validator.Validate) *CommentHandler {
	return &CommentHandler{Service: svc, Validate: validate}
}

func (h *CommentHandler) List(c echo.Context) error {
	page, limit := parsePageLimit(c)
	params := repository.ListCommentsParams{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}
	comments, err := h.Service.List(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommentResponsesFromEntities(comments))
}

func (h *CommentHandler) MyComments(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	page, limit := parsePageLimit(c)
	params := repository.ListCommentsParams{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
		UserID: actor.ID,
	}
	comments, err := h.Service.List(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommentResponsesFromEntities(comments))
}

func (h *CommentHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	comment, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommentResponseFromEntity(comment))
}

func (h *CommentHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CommentCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	input := service.CommentInput{
		ProductID: req.ProductID,
		Star:      req.Star,
		Message:   req.Message,
	}
	comment, err := h.Service.Create(c.Request().Context(), actor, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CommentResponseFromEntity(comment))
}

func (h *CommentHandler) Update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.CommentUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	input := service.CommentUpdateInput{Star: req.Star, Message: req.Message}
	comment, err := h.Service.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommentResponseFromEntity(comment))
}

func (h *CommentHandler) Delete(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Delete(c.Request().Context(), actor, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "comment deleted"})
}
