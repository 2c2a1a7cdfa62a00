package handler

import (
	"errors"
	"net/http"

	"bozor/internal/dto"
	"bozor/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	Service  *service.CatalogService
	Validate *validator.Validate
}

func NewCatalogHandler(svc *service.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{Service: svc, Validate: validate}
}

func (h *CatalogHandler) ListRegions(c echo.Context) error {
	page, limit := parsePageLimit(c)
	regions, err := h.Service.ListRegions(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.RegionResponsesFromEntities(regions))
}

func (h *CatalogHandler) GetRegion(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	region, err := h.Service.GetRegion(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.RegionResponseFromEntity(region))
}

func (h *CatalogHandler) CreateRegion(c echo.Context) error {
	name, err := h.decodeName(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	region, err := h.Service.CreateRegion(c.Request().Context(), name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.RegionResponseFromEntity(region))
}

func (h *CatalogHandler) UpdateRegion(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	name, err := h.decodeName(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	region, err := h.Service.UpdateRegion(c.Request().Context(), id, name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.RegionResponseFromEntity(region))
}

func (h *CatalogHandler) DeleteRegion(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.DeleteRegion(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "region deleted"})
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	page, limit := parsePageLimit(c)
	categories, err := h.Service.ListCategories(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CategoryResponsesFromEntities(categories))
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	category, err := h.Service.GetCategory(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CategoryResponseFromEntity(category))
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	name, err := h.decodeName(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	category, err := h.Service.CreateCategory(c.Request().Context(), name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CategoryResponseFromEntity(category))
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	name, err := h.decodeName(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	category, err := h.Service.UpdateCategory(c.Request().Context(), id, name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CategoryResponseFromEntity(category))
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.DeleteCategory(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "category deleted"})
}

func (h *CatalogHandler) decodeName(c echo.Context) (string, error) {
	var req dto.NameRequest
	if err := decodeJSON(c, &req); err != nil {
		return "", err
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return "", err
		}
	}
	if req.Name == "" {
		return "", errors.New("name is required")
	}
	return req.Name, nil
}
