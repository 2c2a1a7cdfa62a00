package handler

import (
	"errors"
	"net/http"

	"bozor/internal/dto"
	"bozor/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Service  *service.OrderService
	Validate *validator.Validate
}

func NewOrderHandler(svc *service.OrderService, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{Service: svc, Validate: validate}
}

func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	order, err := h.Service.Create(c.Request().Context(), actor.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.OrderResponseFromEntity(order))
}

func (h *OrderHandler) AddItem(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.OrderItemCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	input := service.OrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Count:     req.Count,
	}
	item, err := h.Service.AddItem(c.Request().Context(), actor, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.OrderItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Count:     item.Count,
	})
}

func (h *OrderHandler) MyOrders(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	page, limit := parsePageLimit(c)
	orders, err := h.Service.MyOrders(c.Request().Context(), actor.ID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OrderResponsesFromEntities(orders))
}

func (h *OrderHandler) List(c echo.Context) error {
	page, limit := parsePageLimit(c)
	orders, err := h.Service.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OrderResponsesFromEntities(orders))
}
