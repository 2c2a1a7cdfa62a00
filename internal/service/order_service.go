package service

import (
	"context"

	"bozor/internal/entity"
	"bozor/internal/repository"
)

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

func (s *OrderService) Create(ctx context.Context, userID uint) (*entity.Order, error) {
	order := &entity.Order{UserID: userID}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

type OrderItemInput struct {
	OrderID   uint
	ProductID uint
	Count     int
}

func (s *OrderService) AddItem(ctx context.Context, actor Actor, input OrderItemInput) (*entity.OrderItem, error) {
	if input.Count < 1 {
		return nil, ErrInvalidInput
	}

	order, err := s.orders.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != actor.ID {
		return nil, ErrNotOwner
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	item := &entity.OrderItem{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Count:     input.Count,
	}
	if err := s.orders.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID uint, page, limit int) ([]entity.Order, error) {
	return s.orders.ListByUser(ctx, userID, page, limit)
}

func (s *OrderService) List(ctx context.Context, page, limit int) ([]entity.Order, error) {
	return s.orders.List(ctx, page, limit)
}
