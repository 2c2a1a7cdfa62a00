package repository

import (
	"context"
	"errors"

	"bozor/internal/entity"

	"gorm.io/gorm"
)

type RegionRepository interface {
	Create(ctx context.Context, region *entity.Region) error
	FindByID(ctx context.Context, id uint) (*entity.Region, error)
	Update(ctx context.Context, region *entity.Region) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, search string, page, limit int) ([]entity.Region, error)
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) Create(ctx context.Context, region *entity.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *regionRepository) FindByID(ctx context.Context, id uint) (*entity.Region, error) {
	var region entity.Region
	err := r.db.WithContext(ctx).First(&region, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *regionRepository) Update(ctx context.Context, region *entity.Region) error {
	return r.db.WithContext(ctx).Save(region).Error
}

func (r *regionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Region{}, id).Error
}

func (r *regionRepository) List(ctx context.Context, search string, page, limit int) ([]entity.Region, error) {
	query := r.db.WithContext(ctx).Model(&entity.Region{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	var regions []entity.Region
	err := query.
		Order("id ASC").
		Limit(pageLimit(limit)).
		Offset(pageOffset(page, limit)).
		Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}
