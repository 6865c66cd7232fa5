package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lumicfg/internal/repository"
)

func TestListCategoriesIncludesProductCount(t *testing.T) {
	db := newServiceDB(t)
	seedConfigurableDownlight(t, db)
	catalog := NewCatalogService(repository.NewCategoryRepository(db), repository.NewProductRepository(db), 60)

	items, err := catalog.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 category, got %d", len(items))
	}
	if items[0].Slug != "downlights" || items[0].ProductCount != 1 {
		t.Fatalf("unexpected category item: %+v", items[0])
	}
}

func TestListProductsUnknownCategoryFails(t *testing.T) {
	db := newServiceDB(t)
	seedConfigurableDownlight(t, db)
	catalog := NewCatalogService(repository.NewCategoryRepository(db), repository.NewProductRepository(db), 60)

	_, _, err := catalog.ListProducts(context.Background(), repository.ProductListFilter{CategorySlug: "pendants"})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected category not found, got %v", err)
	}
}

func TestGetProductDetailRejectsInactive(t *testing.T) {
	db := newServiceDB(t)
	seeded := seedConfigurableDownlight(t, db)
	catalog := NewCatalogService(repository.NewCategoryRepository(db), repository.NewProductRepository(db), 60)

	if err := db.Model(&seeded.product).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}
	if _, err := catalog.GetProductDetail(context.Background(), seeded.product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found for inactive product, got %v", err)
	}
}

func TestLoadSnapshotBuildsNormalizedCatalog(t *testing.T) {
	db := newServiceDB(t)
	seeded := seedConfigurableDownlight(t, db)
	catalog := NewCatalogService(repository.NewCategoryRepository(db), repository.NewProductRepository(db), 60)

	snap, err := catalog.LoadSnapshot(context.Background(), seeded.product.ID)
	if err != nil {
		t.Fatalf("load snapshot failed: %v", err)
	}
	if snap.Product.BasePartCode != "DL100" {
		t.Fatalf("unexpected base part code: %s", snap.Product.BasePartCode)
	}
	if len(snap.Variants) != 2 || snap.Variants[0].PartCodeSuffix != "-A" {
		t.Fatalf("variants not normalized: %+v", snap.Variants)
	}
	category := snap.CategoryByName("beam_angle")
	if category == nil || len(category.Options) != 2 {
		t.Fatalf("config category missing from snapshot")
	}
	if feature := snap.FeatureByName("housing_colour"); feature == nil || feature.CodeLetter != "H" {
		t.Fatalf("feature missing from snapshot")
	}
}
