package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lumicfg/internal/cache"
	"github.com/lumicfg/internal/configurator"
	"github.com/lumicfg/internal/constants"
	"github.com/lumicfg/internal/models"
	"github.com/lumicfg/internal/repository"
)

// CatalogService 目录业务服务：分类浏览、产品列表与配置目录加载
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cacheTTL     time.Duration
}

// NewCatalogService 创建目录服务
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, cacheTTLSeconds int) *CatalogService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cacheTTL:     ttl,
	}
}

// CategoryItem 分类列表条目（附带上架产品数）
type CategoryItem struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// ListCategories 分类列表，读穿透缓存
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryItem, error) {
	var cached []CategoryItem
	if hit, err := cache.GetJSON(ctx, constants.CacheKeyCategoryList, &cached); err == nil && hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]CategoryItem, 0, len(categories))
	for _, category := range categories {
		count, err := s.categoryRepo.CountProducts(category.ID, true)
		if err != nil {
			return nil, err
		}
		items = append(items, CategoryItem{Category: category, ProductCount: count})
	}

	_ = cache.SetJSON(ctx, constants.CacheKeyCategoryList, items, s.cacheTTL)
	return items, nil
}

// ListProducts 产品列表，按分类 slug 过滤
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductListFilter) ([]models.Product, int64, error) {
	if filter.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(filter.CategorySlug)
		if err != nil {
			return nil, 0, err
		}
		if category == nil {
			return nil, 0, ErrCategoryNotFound
		}
	}
	filter.OnlyActive = true
	filter.WithCategory = true
	return s.productRepo.List(filter)
}

// GetProductDetail 产品配置目录详情，读穿透缓存
func (s *CatalogService) GetProductDetail(ctx context.Context, id uint) (*models.Product, error) {
	cacheKey := productDetailCacheKey(id)
	var cached models.Product
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	product, err := s.productRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}

	_ = cache.SetJSON(ctx, cacheKey, product, s.cacheTTL)
	return product, nil
}

// LoadSnapshot 加载推导引擎使用的目录快照
func (s *CatalogService) LoadSnapshot(ctx context.Context, productID uint) (*configurator.Snapshot, error) {
	product, err := s.GetProductDetail(ctx, productID)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(product), nil
}

// WarmCache 预热产品目录缓存；productID 为 0 时预热全部上架产品
func (s *CatalogService) WarmCache(ctx context.Context, productID uint) (int, error) {
	if productID > 0 {
		if _, err := s.GetProductDetail(ctx, productID); err != nil {
			return 0, err
		}
		return 1, nil
	}

	if _, err := s.ListCategories(ctx); err != nil {
		return 0, err
	}
	ids, err := s.productRepo.ListActiveIDs()
	if err != nil {
		return 0, err
	}
	warmed := 0
	for _, id := range ids {
		if _, err := s.GetProductDetail(ctx, id); err != nil {
			continue
		}
		warmed++
	}
	return warmed, nil
}

// InvalidateProduct 清除产品目录缓存
func (s *CatalogService) InvalidateProduct(ctx context.Context, id uint) {
	_ = cache.Del(ctx, productDetailCacheKey(id))
	_ = cache.Del(ctx, constants.CacheKeyCategoryList)
}

func productDetailCacheKey(id uint) string {
	return fmt.Sprintf("%s:%d", constants.CacheKeyProductDetail, id)
}
