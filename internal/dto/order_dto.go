package dto

import (
	"time"

	"bozor/internal/entity"
)

type OrderItemCreateRequest struct {
	OrderID   uint `json:"orderId" validate:"required"`
	ProductID uint `json:"productId" validate:"required"`
	Count     int  `json:"count" validate:"required,min=1"`
}

type OrderItemResponse struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"productId"`
	Product   string  `json:"product,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Count     int     `json:"count"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	UserID    uint                `json:"userId"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
}

func OrderResponseFromEntity(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Product:   item.Product.Name,
			Price:     item.Product.Price,
			Count:     item.Count,
		})
	}
	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

func OrderResponsesFromEntities(orders []entity.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, OrderResponseFromEntity(&orders[i]))
	}
	return responses
}
