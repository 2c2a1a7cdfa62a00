package service

import (
	"context"
	"testing"
)

func TestCatalogRegionCRUD(t *testing.T) {
	svc := NewCatalogService(newMemRegionRepo(), newMemCategoryRepo())
	ctx := context.Background()

	region, err := svc.CreateRegion(ctx, "  Tashkent  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if region.Name != "Tashkent" {
		t.Errorf("name = %q, want trimmed", region.Name)
	}

	if _, err := svc.CreateRegion(ctx, "   "); err != ErrInvalidInput {
		t.Errorf("blank name: got %v, want ErrInvalidInput", err)
	}

	updated, err := svc.UpdateRegion(ctx, region.ID, "Samarkand")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Samarkand" {
		t.Errorf("name = %q after update", updated.Name)
	}

	if _, err := svc.GetRegion(ctx, 999); err != ErrRegionNotFound {
		t.Errorf("missing region: got %v, want ErrRegionNotFound", err)
	}
	if err := svc.DeleteRegion(ctx, region.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetRegion(ctx, region.ID); err != ErrRegionNotFound {
		t.Errorf("after delete: got %v, want ErrRegionNotFound", err)
	}
}

func TestCatalogCategoryCRUD(t *testing.T) {
	svc := NewCatalogService(newMemRegionRepo(), newMemCategoryRepo())
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Grains")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateCategory(ctx, category.ID, " "); err != ErrInvalidInput {
		t.Errorf("blank update: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.GetCategory(ctx, 999); err != ErrCategoryNotFound {
		t.Errorf("missing category: got %v, want ErrCategoryNotFound", err)
	}
	if err := svc.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
