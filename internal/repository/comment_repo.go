package repository

import (
	"context"
	"errors"

	"bozor/internal/entity"

	"gorm.io/gorm"
)

type ListCommentsParams struct {
	Page   int
	Limit  int
	Search string
	UserID uint
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params ListCommentsParams) ([]entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.db.WithContext(ctx).Preload("Product").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Comment{}, id).Error
}

func (r *commentRepository) List(ctx context.Context, params ListCommentsParams) ([]entity.Comment, error) {
	query := r.db.WithContext(ctx).Model(&entity.Comment{})
	if params.UserID != 0 {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Search != "" {
		query = query.Where("message ILIKE ?", "%"+params.Search+"%")
	}
	var comments []entity.Comment
	err := query.
		Preload("Product").
		Order("created_at DESC").
		Limit(pageLimit(params.Limit)).
		Offset(pageOffset(params.Page, params.Limit)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
