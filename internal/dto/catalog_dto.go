package dto

import (
	"time"

	"bozor/internal/entity"
)

type NameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type RegionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func RegionResponseFromEntity(region *entity.Region) RegionResponse {
	return RegionResponse{ID: region.ID, Name: region.Name}
}

func RegionResponsesFromEntities(regions []entity.Region) []RegionResponse {
	responses := make([]RegionResponse, 0, len(regions))
	for i := range regions {
		responses = append(responses, RegionResponseFromEntity(&regions[i]))
	}
	return responses
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func CategoryResponseFromEntity(category *entity.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func CategoryResponsesFromEntities(categories []entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, CategoryResponseFromEntity(&categories[i]))
	}
	return responses
}

type ProductCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Price       float64 `json:"price" validate:"required,min=0"`
	CategoryID  uint    `json:"categoryId" validate:"required"`
	Image       *string `json:"image" validate:"omitempty,url"`
	Description string  `json:"description" validate:"omitempty"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	CategoryID  *uint    `json:"categoryId" validate:"omitempty"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	Description *string  `json:"description" validate:"omitempty"`
}

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	AuthorID    uint      `json:"authorId"`
	CategoryID  uint      `json:"categoryId"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ProductResponseFromEntity(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Image:       product.Image,
		AuthorID:    product.AuthorID,
		CategoryID:  product.CategoryID,
		Category:    product.Category.Name,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func ProductResponsesFromEntities(products []entity.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ProductResponseFromEntity(&products[i]))
	}
	return responses
}
