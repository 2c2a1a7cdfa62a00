package service

import (
	"context"
	"strings"
	"testing"

	"bozor/internal/entity"
	"bozor/internal/repository"
)

type memCommentRepo struct {
	nextID   uint
	comments map[uint]*entity.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[uint]*entity.Comment)}
}

func (r *memCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id uint) (*entity.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	clone := *comment
	return &clone, nil
}

func (r *memCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *memCommentRepo) Delete(_ context.Context, id uint) error {
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) List(_ context.Context, params repository.ListCommentsParams) ([]entity.Comment, error) {
	comments := make([]entity.Comment, 0, len(r.comments))
	for _, comment := range r.comments {
		if params.UserID != 0 && comment.UserID != params.UserID {
			continue
		}
		if params.Search != "" && !strings.Contains(comment.Message, params.Search) {
			continue
		}
		comments = append(comments, *comment)
	}
	return comments, nil
}

func newCommentFixture(t *testing.T) (*CommentService, uint) {
	t.Helper()
	products := newMemProductRepo()
	product := &entity.Product{Name: "Plov rice", Price: 12.5, AuthorID: 1, CategoryID: 1}
	if err := products.Create(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return NewCommentService(newMemCommentRepo(), products), product.ID
}

func TestCommentCreate(t *testing.T) {
	svc, productID := newCommentFixture(t)
	ctx := context.Background()
	author := Actor{ID: 5, Role: entity.UserRoleUser}

	comment, err := svc.Create(ctx, author, CommentInput{ProductID: productID, Star: 4, Message: "  tasty rice  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if comment.Message != "tasty rice" {
		t.Errorf("message = %q, want trimmed", comment.Message)
	}
	if comment.UserID != author.ID {
		t.Errorf("userID = %d, want %d", comment.UserID, author.ID)
	}

	if _, err := svc.Create(ctx, author, CommentInput{ProductID: productID, Star: 6, Message: "ok"}); err != ErrInvalidInput {
		t.Errorf("star out of range: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(ctx, author, CommentInput{ProductID: productID, Star: 4, Message: "x"}); err != ErrInvalidInput {
		t.Errorf("too-short message: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(ctx, author, CommentInput{ProductID: 999, Star: 4, Message: "hello"}); err != ErrProductNotFound {
		t.Errorf("unknown product: got %v, want ErrProductNotFound", err)
	}
}

func TestCommentAuthorOnlyMutation(t *testing.T) {
	svc, productID := newCommentFixture(t)
	ctx := context.Background()
	author := Actor{ID: 5, Role: entity.UserRoleUser}
	stranger := Actor{ID: 6, Role: entity.UserRoleUser}

	comment, err := svc.Create(ctx, author, CommentInput{ProductID: productID, Star: 4, Message: "tasty rice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	star := 5
	if _, err := svc.Update(ctx, stranger, comment.ID, CommentUpdateInput{Star: &star}); err != ErrNotOwner {
		t.Errorf("stranger update: got %v, want ErrNotOwner", err)
	}
	if err := svc.Delete(ctx, stranger, comment.ID); err != ErrNotOwner {
		t.Errorf("stranger delete: got %v, want ErrNotOwner", err)
	}

	updated, err := svc.Update(ctx, author, comment.ID, CommentUpdateInput{Star: &star})
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Star != 5 {
		t.Errorf("star = %d, want 5", updated.Star)
	}
	if err := svc.Delete(ctx, author, comment.ID); err != nil {
		t.Errorf("author delete: %v", err)
	}
	if _, err := svc.Get(ctx, comment.ID); err != ErrCommentNotFound {
		t.Errorf("after delete: got %v, want ErrCommentNotFound", err)
	}
}

func TestCommentListFilters(t *testing.T) {
	svc, productID := newCommentFixture(t)
	ctx := context.Background()
	alice := Actor{ID: 5, Role: entity.UserRoleUser}
	bob := Actor{ID: 6, Role: entity.UserRoleUser}

	if _, err := svc.Create(ctx, alice, CommentInput{ProductID: productID, Star: 4, Message: "great rice"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, bob, CommentInput{ProductID: productID, Star: 2, Message: "too salty"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.List(ctx, repository.ListCommentsParams{UserID: alice.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != alice.ID {
		t.Errorf("filtered list = %+v, want only alice's comment", mine)
	}
}
