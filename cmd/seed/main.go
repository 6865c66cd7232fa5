package main

import (
	"github.com/lumicfg/internal/config"
	"github.com/lumicfg/internal/constants"
	"github.com/lumicfg/internal/logger"
	"github.com/lumicfg/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(models.DBOptions{
		Driver:                 cfg.Database.Driver,
		DSN:                    cfg.Database.DSN,
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			Slug:        "downlights",
			Name:        "Downlights",
			Description: "Recessed ceiling downlights for residential and commercial spaces",
			SortOrder:   30,
		},
		{
			Slug:        "track-lights",
			Name:        "Track Lights",
			Description: "Adjustable track-mounted spotlights",
			SortOrder:   20,
		},
		{
			Slug:        "linear",
			Name:        "Linear Profiles",
			Description: "Suspended and surface-mounted linear luminaires",
			SortOrder:   10,
		},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Fatalf("Failed to create category %s: %v", cat.Slug, err)
			}
			stdLog.Printf("Created category: %s", cat.Slug)
			categoryIDs[cat.Slug] = cat.ID
			continue
		}
		stdLog.Printf("Category already exists: %s", cat.Slug)
		categoryIDs[cat.Slug] = existing.ID
	}

	seedAriaDownlight(categoryIDs["downlights"])
	seedOrbitTrackLight(categoryIDs["track-lights"])

	stdLog.Printf("Seed finished")
}

// seedAriaDownlight 嵌入式筒灯示例产品（含完整配置轴/特性/配件）
func seedAriaDownlight(categoryID uint) {
	stdLog := logger.StdLogger()
	if categoryID == 0 {
		stdLog.Printf("Skip Aria downlight: category missing")
		return
	}

	var existing models.Product
	if err := models.DB.Where("base_part_code = ?", "DL100").First(&existing).Error; err == nil {
		stdLog.Printf("Product already exists: DL100")
		return
	}

	product := models.Product{
		CategoryID:        categoryID,
		Name:              "Aria Recessed Downlight",
		BasePartCode:      "DL100",
		Description:       "Compact recessed downlight with interchangeable reflectors and tool-free installation.",
		ProductImageURL:   "https://assets.lumicfg.example/products/dl100.png",
		DimensionImageURL: "https://assets.lumicfg.example/dimensions/dl100.png",
		IsActive:          true,
		SortOrder:         100,
	}
	if err := models.DB.Create(&product).Error; err != nil {
		stdLog.Fatalf("Failed to create product DL100: %v", err)
	}

	variants := []models.ProductVariant{
		{
			ProductID:      product.ID,
			VariantName:    "15W 3000K",
			PartCodeSuffix: "-A",
			SystemOutput:   "1250lm",
			SystemPower:    "15W",
			Efficiency:     "83lm/W",
			BasePrice:      models.MustMoneyFromString("50.00"),
			DisplayOrder:   1,
		},
		{
			ProductID:      product.ID,
			VariantName:    "25W 3000K",
			PartCodeSuffix: "-B",
			SystemOutput:   "2100lm",
			SystemPower:    "25W",
			Efficiency:     "84lm/W",
			BasePrice:      models.MustMoneyFromString("72.50"),
			DisplayOrder:   2,
		},
	}
	mustCreateAll(&variants)

	beam := models.ConfigurationCategory{
		ProductID:        product.ID,
		SectionName:      "optics",
		SectionLabel:     "Optics",
		CategoryName:     "beam_angle",
		CategoryLabel:    "Beam Angle",
		PartCodePosition: 1,
		IsRequired:       true,
		DisplayOrder:     1,
	}
	mustCreate(&beam)
	beamOptions := []models.ConfigurationOption{
		{
			CategoryID:     beam.ID,
			OptionValue:    "narrow",
			OptionLabel:    "Narrow 24°",
			PartCodeSuffix: "-N",
			PriceModifier:  models.MustMoneyFromString("5.00"),
			IsDefault:      true,
			DisplayOrder:   1,
		},
		{
			CategoryID:     beam.ID,
			OptionValue:    "wide",
			OptionLabel:    "Wide 60°",
			PartCodeSuffix: "-W",
			PriceModifier:  models.MustMoneyFromString("0.00"),
			DisplayOrder:   2,
		},
	}
	mustCreateAll(&beamOptions)

	mounting := models.ConfigurationCategory{
		ProductID:     product.ID,
		SectionName:   "installation",
		SectionLabel:  "Installation",
		CategoryName:  "mounting",
		CategoryLabel: "Mounting",
		DisplayOrder:  2,
	}
	mustCreate(&mounting)
	mountingOptions := []models.ConfigurationOption{
		{
			CategoryID:    mounting.ID,
			OptionValue:   "spring_clip",
			OptionLabel:   "Spring Clip",
			PriceModifier: models.MustMoneyFromString("0.00"),
			IsDefault:     true,
			DisplayOrder:  1,
		},
		{
			CategoryID:    mounting.ID,
			OptionValue:   "trim_ring",
			OptionLabel:   "Trim Ring",
			PriceModifier: models.MustMoneyFromString("2.25"),
			DisplayOrder:  2,
		},
	}
	mustCreateAll(&mountingOptions)

	features := []models.ConfigurableFeature{
		{
			ProductID:    product.ID,
			FeatureName:  "housing_colour",
			FeatureLabel: "Housing Colour",
			CodeLetter:   "H",
			Configurable: true,
			DefaultValue: "BLACK",
			Values:       models.StringArray{"BLACK", "WHITE", constants.FeatureValueCustom},
			DisplayOrder: 1,
		},
		{
			ProductID:    product.ID,
			FeatureName:  "driver",
			FeatureLabel: "Driver",
			Configurable: false,
			DefaultValue: "INTEGRAL",
			DisplayOrder: 2,
		},
	}
	mustCreateAll(&features)

	accessories := []models.Accessory{
		{
			ProductID:         product.ID,
			Name:              "Honeycomb Louvre",
			PartCode:          "ACC-HL40",
			Description:       "Anti-glare honeycomb louvre, clips into the reflector",
			Price:             models.MustMoneyFromString("10.00"),
			AccessoryCategory: "Optics",
		},
		{
			ProductID:         product.ID,
			Name:              "Plaster Frame",
			PartCode:          "ACC-PF90",
			Description:       "Trimless plaster-in frame for 90mm cut-out",
			Price:             models.MustMoneyFromString("3.10"),
			AccessoryCategory: "Installation",
		},
	}
	mustCreateAll(&accessories)

	specs := []models.ProductFeature{
		{
			ProductID:    product.ID,
			FeatureType:  constants.ProductFeatureTypeSpec,
			FeatureLabel: "CRI",
			FeatureValue: ">90",
			DisplayOrder: 1,
		},
		{
			ProductID:    product.ID,
			FeatureType:  constants.ProductFeatureTypeSpec,
			FeatureLabel: "IP Rating",
			FeatureValue: "IP44",
			DisplayOrder: 2,
		},
		{
			ProductID:    product.ID,
			FeatureType:  constants.ProductFeatureTypeHighlight,
			FeatureLabel: "Warranty",
			FeatureValue: "5 years",
			DisplayOrder: 3,
		},
	}
	mustCreateAll(&specs)

	assets := []models.VisualAsset{
		{
			ProductID:    product.ID,
			AssetType:    constants.AssetTypeCertification,
			FileURL:      "https://assets.lumicfg.example/certs/dl100-ce.pdf",
			FileName:     "dl100-ce.pdf",
			DisplayOrder: 1,
		},
		{
			ProductID:    product.ID,
			AssetType:    constants.AssetTypeDimensionImage,
			FileURL:      "https://assets.lumicfg.example/dimensions/dl100-section.png",
			FileName:     "dl100-section.png",
			DisplayOrder: 2,
		},
	}
	mustCreateAll(&assets)

	stdLog.Printf("Created product: DL100")
}

// seedOrbitTrackLight 轨道射灯示例产品（多编码位配置轴）
func seedOrbitTrackLight(categoryID uint) {
	stdLog := logger.StdLogger()
	if categoryID == 0 {
		stdLog.Printf("Skip Orbit track light: category missing")
		return
	}

	var existing models.Product
	if err := models.DB.Where("base_part_code = ?", "TR200").First(&existing).Error; err == nil {
		stdLog.Printf("Product already exists: TR200")
		return
	}

	product := models.Product{
		CategoryID:      categoryID,
		Name:            "Orbit Track Spotlight",
		BasePartCode:    "TR200",
		Description:     "Three-circuit track spotlight with 355° rotation.",
		ProductImageURL: "https://assets.lumicfg.example/products/tr200.png",
		IsActive:        true,
		SortOrder:       90,
	}
	if err := models.DB.Create(&product).Error; err != nil {
		stdLog.Fatalf("Failed to create product TR200: %v", err)
	}

	variants := []models.ProductVariant{
		{
			ProductID:      product.ID,
			VariantName:    "20W 3000K",
			PartCodeSuffix: "-S",
			SystemOutput:   "1800lm",
			SystemPower:    "20W",
			Efficiency:     "90lm/W",
			BasePrice:      models.MustMoneyFromString("68.00"),
			DisplayOrder:   1,
		},
	}
	mustCreateAll(&variants)

	beam := models.ConfigurationCategory{
		ProductID:        product.ID,
		SectionName:      "optics",
		SectionLabel:     "Optics",
		CategoryName:     "beam_angle",
		CategoryLabel:    "Beam Angle",
		PartCodePosition: 1,
		IsRequired:       true,
		DisplayOrder:     2,
	}
	mustCreate(&beam)
	mustCreateAll(&[]models.ConfigurationOption{
		{
			CategoryID:     beam.ID,
			OptionValue:    "narrow",
			OptionLabel:    "Narrow 15°",
			PartCodeSuffix: "-N",
			PriceModifier:  models.MustMoneyFromString("0.00"),
			IsDefault:      true,
			DisplayOrder:   1,
		},
	})

	cct := models.ConfigurationCategory{
		ProductID:        product.ID,
		SectionName:      "optics",
		SectionLabel:     "Optics",
		CategoryName:     "colour_temperature",
		CategoryLabel:    "Colour Temperature",
		PartCodePosition: 2,
		IsRequired:       true,
		DisplayOrder:     1,
	}
	mustCreate(&cct)
	mustCreateAll(&[]models.ConfigurationOption{
		{
			CategoryID:     cct.ID,
			OptionValue:    "3000k",
			OptionLabel:    "3000K",
			PartCodeSuffix: "-30",
			PriceModifier:  models.MustMoneyFromString("0.00"),
			IsDefault:      true,
			DisplayOrder:   1,
		},
		{
			CategoryID:     cct.ID,
			OptionValue:    "4000k",
			OptionLabel:    "4000K",
			PartCodeSuffix: "-40",
			PriceModifier:  models.MustMoneyFromString("0.00"),
			DisplayOrder:   2,
		},
	})

	stdLog.Printf("Created product: TR200")
}

func mustCreate(value interface{}) {
	if err := models.DB.Create(value).Error; err != nil {
		logger.StdLogger().Fatalf("Failed to seed record: %v", err)
	}
}

func mustCreateAll(values interface{}) {
	if err := models.DB.Create(values).Error; err != nil {
		logger.StdLogger().Fatalf("Failed to seed records: %v", err)
	}
}
