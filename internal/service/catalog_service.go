package service

import (
	"context"
	"strings"

	"bozor/internal/entity"
	"bozor/internal/repository"
)

type CatalogService struct {
	regions    repository.RegionRepository
	categories repository.CategoryRepository
}

func NewCatalogService(regions repository.RegionRepository, categories repository.CategoryRepository) *CatalogService {
	return &CatalogService{regions: regions, categories: categories}
}

func (s *CatalogService) CreateRegion(ctx context.Context, name string) (*entity.Region, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	region := &entity.Region{Name: name}
	if err := s.regions.Create(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *CatalogService) GetRegion(ctx context.Context, id uint) (*entity.Region, error) {
	region, err := s.regions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, ErrRegionNotFound
	}
	return region, nil
}

func (s *CatalogService) UpdateRegion(ctx context.Context, id uint, name string) (*entity.Region, error) {
	region, err := s.GetRegion(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	region.Name = name
	if err := s.regions.Update(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *CatalogService) DeleteRegion(ctx context.Context, id uint) error {
	if _, err := s.GetRegion(ctx, id); err != nil {
		return err
	}
	return s.regions.Delete(ctx, id)
}

func (s *CatalogService) ListRegions(ctx context.Context, search string, page, limit int) ([]entity.Region, error) {
	return s.regions.List(ctx, search, page, limit)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	category := &entity.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, name string) (*entity.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context, search string, page, limit int) ([]entity.Category, error) {
	return s.categories.List(ctx, search, page, limit)
}
