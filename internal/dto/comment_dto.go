package dto

import (
	"time"

	"bozor/internal/entity"
)

type CommentCreateRequest struct {
	ProductID uint   `json:"productId" validate:"required"`
	Star      int    `json:"star" validate:"min=0,max=5"`
	Message   string `json:"message" validate:"required,min=2,max=255"`
}

type CommentUpdateRequest struct {
	Star    *int    `json:"star" validate:"omitempty,min=0,max=5"`
	Message *string `json:"message" validate:"omitempty,min=2,max=255"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	ProductID uint      `json:"productId"`
	Product   string    `json:"product,omitempty"`
	Star      int       `json:"star"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func CommentResponseFromEntity(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		ProductID: comment.ProductID,
		Product:   comment.Product.Name,
		Star:      comment.Star,
		Message:   comment.Message,
		CreatedAt: comment.CreatedAt,
	}
}

func CommentResponsesFromEntities(comments []entity.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, CommentResponseFromEntity(&comments[i]))
	}
	return responses
}
