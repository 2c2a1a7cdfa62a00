package service

import (
	"context"
	"strings"

	"bozor/internal/entity"
	"bozor/internal/repository"
)

type CommentService struct {
	comments repository.CommentRepository
	products repository.ProductRepository
}

func NewCommentService(comments repository.CommentRepository, products repository.ProductRepository) *CommentService {
	return &CommentService{comments: comments, products: products}
}

type CommentInput struct {
	ProductID uint
	Star      int
	Message   string
}

func (s *CommentService) Create(ctx context.Context, actor Actor, input CommentInput) (*entity.Comment, error) {
	if input.Star < 0 || input.Star > 5 {
		return nil, ErrInvalidInput
	}
	message := strings.TrimSpace(input.Message)
	if len(message) < 2 || len(message) > 255 {
		return nil, ErrInvalidInput
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	comment := &entity.Comment{
		UserID:    actor.ID,
		ProductID: input.ProductID,
		Star:      input.Star,
		Message:   message,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id uint) (*entity.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

type CommentUpdateInput struct {
	Star    *int
	Message *string
}

func (s *CommentService) Update(ctx context.Context, actor Actor, id uint, input CommentUpdateInput) (*entity.Comment, error) {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actor.ID {
		return nil, ErrNotOwner
	}

	if input.Star != nil {
		if *input.Star < 0 || *input.Star > 5 {
			return nil, ErrInvalidInput
		}
		comment.Star = *input.Star
	}
	if input.Message != nil {
		message := strings.TrimSpace(*input.Message)
		if len(message) < 2 || len(message) > 255 {
			return nil, ErrInvalidInput
		}
		comment.Message = message
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, actor Actor, id uint) error {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != actor.ID {
		return ErrNotOwner
	}
	return s.comments.Delete(ctx, id)
}

func (s *CommentService) List(ctx context.Context, params repository.ListCommentsParams) ([]entity.Comment, error) {
	return s.comments.List(ctx, params)
}
