package service

import (
	"context"
	"testing"

	"bozor/internal/entity"
)

type memOrderRepo struct {
	nextOrderID uint
	nextItemID  uint
	orders      map[uint]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uint]*entity.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.nextOrderID++
	order.ID = r.nextOrderID
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uint) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (r *memOrderRepo) CreateItem(_ context.Context, item *entity.OrderItem) error {
	r.nextItemID++
	item.ID = r.nextItemID
	if order, ok := r.orders[item.OrderID]; ok {
		order.Items = append(order.Items, *item)
	}
	return nil
}

func (r *memOrderRepo) ListByUser(_ context.Context, userID uint, _, _ int) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) List(_ context.Context, _, _ int) ([]entity.Order, error) {
	orders := make([]entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func newOrderFixture(t *testing.T) (*OrderService, uint) {
	t.Helper()
	products := newMemProductRepo()
	product := &entity.Product{Name: "Plov rice", Price: 12.5, AuthorID: 1, CategoryID: 1}
	if err := products.Create(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return NewOrderService(newMemOrderRepo(), products), product.ID
}

func TestOrderAddItem(t *testing.T) {
	svc, productID := newOrderFixture(t)
	ctx := context.Background()
	buyer := Actor{ID: 5, Role: entity.UserRoleUser}

	order, err := svc.Create(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	item, err := svc.AddItem(ctx, buyer, OrderItemInput{OrderID: order.ID, ProductID: productID, Count: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if item.Count != 2 || item.ProductID != productID {
		t.Errorf("item = %+v", item)
	}
}

func TestOrderAddItemValidation(t *testing.T) {
	svc, productID := newOrderFixture(t)
	ctx := context.Background()
	buyer := Actor{ID: 5, Role: entity.UserRoleUser}
	order, err := svc.Create(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := svc.AddItem(ctx, buyer, OrderItemInput{OrderID: order.ID, ProductID: productID, Count: 0}); err != ErrInvalidInput {
		t.Errorf("zero count: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AddItem(ctx, buyer, OrderItemInput{OrderID: 999, ProductID: productID, Count: 1}); err != ErrOrderNotFound {
		t.Errorf("unknown order: got %v, want ErrOrderNotFound", err)
	}
	if _, err := svc.AddItem(ctx, buyer, OrderItemInput{OrderID: order.ID, ProductID: 999, Count: 1}); err != ErrProductNotFound {
		t.Errorf("unknown product: got %v, want ErrProductNotFound", err)
	}

	stranger := Actor{ID: 6, Role: entity.UserRoleUser}
	if _, err := svc.AddItem(ctx, stranger, OrderItemInput{OrderID: order.ID, ProductID: productID, Count: 1}); err != ErrNotOwner {
		t.Errorf("foreign order: got %v, want ErrNotOwner", err)
	}
}

func TestMyOrders(t *testing.T) {
	svc, productID := newOrderFixture(t)
	ctx := context.Background()
	buyer := Actor{ID: 5, Role: entity.UserRoleUser}

	order, err := svc.Create(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := svc.AddItem(ctx, buyer, OrderItemInput{OrderID: order.ID, ProductID: productID, Count: 1}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := svc.Create(ctx, 77); err != nil {
		t.Fatalf("create other order: %v", err)
	}

	mine, err := svc.MyOrders(ctx, buyer.ID, 1, 10)
	if err != nil {
		t.Fatalf("my orders: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != buyer.ID {
		t.Errorf("my orders = %+v, want only the buyer's order", mine)
	}

	all, err := svc.List(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("list returned %d orders, want 2", len(all))
	}
}
