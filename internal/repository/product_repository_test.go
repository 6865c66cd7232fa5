package repository

import (
	"fmt"
	"testing"

	"github.com/lumicfg/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 每个测试独立的内存库，避免共享缓存下唯一索引冲突
func newCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ConfigurationCategory{},
		&models.ConfigurationOption{},
		&models.ConfigurableFeature{},
		&models.Accessory{},
		&models.ProductFeature{},
		&models.VisualAsset{},
		&models.UserConfiguration{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedDownlight(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()

	category := models.Category{Slug: "downlights", Name: "Downlights", SortOrder: 10}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID:   category.ID,
		Name:         "Orbit Downlight",
		BasePartCode: "DL100",
		IsActive:     true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	variants := []models.ProductVariant{
		{ProductID: product.ID, VariantName: "3000lm", PartCodeSuffix: "-B", BasePrice: models.MustMoneyFromString("72.50"), DisplayOrder: 2},
		{ProductID: product.ID, VariantName: "2000lm", PartCodeSuffix: "-A", BasePrice: models.MustMoneyFromString("50.00"), DisplayOrder: 1},
	}
	if err := db.Create(&variants).Error; err != nil {
		t.Fatalf("create variants failed: %v", err)
	}
	configCategory := models.ConfigurationCategory{
		ProductID:        product.ID,
		CategoryName:     "beam_angle",
		CategoryLabel:    "Beam Angle",
		PartCodePosition: 1,
		DisplayOrder:     1,
	}
	if err := db.Create(&configCategory).Error; err != nil {
		t.Fatalf("create config category failed: %v", err)
	}
	options := []models.ConfigurationOption{
		{CategoryID: configCategory.ID, OptionValue: "wide", OptionLabel: "Wide 60°", PartCodeSuffix: "-W", DisplayOrder: 2},
		{CategoryID: configCategory.ID, OptionValue: "narrow", OptionLabel: "Narrow 24°", PartCodeSuffix: "-N", PriceModifier: models.MustMoneyFromString("5.00"), IsDefault: true, DisplayOrder: 1},
	}
	if err := db.Create(&options).Error; err != nil {
		t.Fatalf("create options failed: %v", err)
	}
	accessory := models.Accessory{ProductID: product.ID, Name: "Honeycomb Louvre", PartCode: "HC-01", Price: models.MustMoneyFromString("10.00")}
	if err := db.Create(&accessory).Error; err != nil {
		t.Fatalf("create accessory failed: %v", err)
	}
	return &product
}

func TestProductRepositoryGetDetailPreloadsOrdered(t *testing.T) {
	db := newCatalogDB(t)
	seeded := seedDownlight(t, db)
	repo := NewProductRepository(db)

	product, err := repo.GetDetail(seeded.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if product == nil {
		t.Fatalf("expected product, got nil")
	}
	if len(product.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(product.Variants))
	}
	if product.Variants[0].PartCodeSuffix != "-A" {
		t.Fatalf("variants not ordered by display order: %s", product.Variants[0].PartCodeSuffix)
	}
	if len(product.ConfigCategories) != 1 || len(product.ConfigCategories[0].Options) != 2 {
		t.Fatalf("config categories not preloaded: %+v", product.ConfigCategories)
	}
	if product.ConfigCategories[0].Options[0].OptionValue != "narrow" {
		t.Fatalf("options not ordered by display order: %s", product.ConfigCategories[0].Options[0].OptionValue)
	}
	if len(product.Accessories) != 1 {
		t.Fatalf("accessories not preloaded: %d", len(product.Accessories))
	}
}

func TestProductRepositoryGetDetailMissingReturnsNil(t *testing.T) {
	db := newCatalogDB(t)
	repo := NewProductRepository(db)

	product, err := repo.GetDetail(9999)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for missing product, got %+v", product)
	}
}

func TestProductRepositoryListFiltersByCategorySlug(t *testing.T) {
	db := newCatalogDB(t)
	seedDownlight(t, db)

	other := models.Category{Slug: "track-lights", Name: "Track Lights"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	inactive := models.Product{CategoryID: other.ID, Name: "Vector Track", BasePartCode: "TR200", IsActive: false}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	repo := NewProductRepository(db)
	products, total, err := repo.List(ProductListFilter{CategorySlug: "downlights", OnlyActive: true, WithCategory: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected single product, got total=%d len=%d", total, len(products))
	}
	if products[0].BasePartCode != "DL100" {
		t.Fatalf("unexpected product: %s", products[0].BasePartCode)
	}
	if products[0].Category.Slug != "downlights" {
		t.Fatalf("category not preloaded: %+v", products[0].Category)
	}
	if len(products[0].Variants) != 2 {
		t.Fatalf("variants not preloaded for list: %d", len(products[0].Variants))
	}

	none, total, err := repo.List(ProductListFilter{CategorySlug: "track-lights", OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(none) != 0 {
		t.Fatalf("inactive product leaked into active list")
	}
}

func TestUserConfigurationRepositoryRoundTrip(t *testing.T) {
	db := newCatalogDB(t)
	product := seedDownlight(t, db)
	repo := NewUserConfigurationRepository(db)

	configuration := models.UserConfiguration{
		ProductID: product.ID,
		VariantID: 1,
		SelectedOptionsJSON: models.JSON{
			"beam_angle": float64(1),
		},
		SelectedAccessories: models.StringArray{"1"},
		ConfigurationName:   "Lobby run",
		FinalPartCode:       "DL100-A-N",
		FinalPrice:          models.MustMoneyFromString("65.00"),
	}
	if err := repo.Create(&configuration); err != nil {
		t.Fatalf("create configuration failed: %v", err)
	}
	if configuration.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	loaded, err := repo.GetByID(configuration.ID)
	if err != nil {
		t.Fatalf("get configuration failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected configuration, got nil")
	}
	if loaded.FinalPartCode != "DL100-A-N" {
		t.Fatalf("unexpected part code: %s", loaded.FinalPartCode)
	}
	if !loaded.FinalPrice.Equal(decimal.RequireFromString("65.00")) {
		t.Fatalf("unexpected price: %s", loaded.FinalPrice)
	}
	if loaded.Product == nil || loaded.Product.Name != "Orbit Downlight" {
		t.Fatalf("product not preloaded")
	}

	loaded.DatasheetURL = "/datasheets/1.pdf"
	if err := repo.Update(loaded); err != nil {
		t.Fatalf("update configuration failed: %v", err)
	}
	items, total, err := repo.List(UserConfigurationListFilter{ProductID: product.ID})
	if err != nil {
		t.Fatalf("list configurations failed: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected single configuration, got total=%d len=%d", total, len(items))
	}
	if items[0].DatasheetURL != "/datasheets/1.pdf" {
		t.Fatalf("datasheet url not persisted: %s", items[0].DatasheetURL)
	}
}
