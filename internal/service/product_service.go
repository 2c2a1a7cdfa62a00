package service

import (
	"context"
	"strings"

	"bozor/internal/entity"
	"bozor/internal/repository"
)

type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

type ProductInput struct {
	Name        string
	Price       float64
	Description string
	Image       *string
	CategoryID  uint
}

func (s *ProductService) Create(ctx context.Context, actor Actor, input ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price < 0 {
		return nil, ErrInvalidInput
	}
	category, err := s.categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		AuthorID:    actor.ID,
		CategoryID:  input.CategoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

type ProductUpdateInput struct {
	Name        *string
	Price       *float64
	Description *string
	Image       *string
	CategoryID  *uint
}

func (s *ProductService) Update(ctx context.Context, actor Actor, id uint, input ProductUpdateInput) (*entity.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(actor, product); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		product.Name = name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, ErrInvalidInput
		}
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.CategoryID != nil {
		category, err := s.categories.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = *input.CategoryID
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor Actor, id uint) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(actor, product); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, params repository.ListProductsParams) ([]entity.Product, error) {
	return s.products.List(ctx, params)
}

// A SHOP actor may only mutate its own products; admins may mutate any.
func (s *ProductService) checkOwnership(actor Actor, product *entity.Product) error {
	if actor.Role == entity.UserRoleShop && product.AuthorID != actor.ID {
		return ErrNotOwner
	}
	return nil
}
