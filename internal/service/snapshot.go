package service

import (
	"github.com/lumicfg/internal/configurator"
	"github.com/lumicfg/internal/models"
)

// BuildSnapshot 把数据库产品目录投影为推导引擎的只读快照。
// 引擎不感知 gorm 模型，所有金额在这里降为 decimal。
func BuildSnapshot(product *models.Product) *configurator.Snapshot {
	if product == nil {
		return nil
	}
	snap := &configurator.Snapshot{
		Product: configurator.Product{
			ID:                product.ID,
			Name:              product.Name,
			BasePartCode:      product.BasePartCode,
			Description:       product.Description,
			ProductImageURL:   product.ProductImageURL,
			DimensionImageURL: product.DimensionImageURL,
		},
	}

	for _, variant := range product.Variants {
		snap.Variants = append(snap.Variants, configurator.Variant{
			ID:             variant.ID,
			Name:           variant.VariantName,
			PartCodeSuffix: variant.PartCodeSuffix,
			SystemOutput:   variant.SystemOutput,
			SystemPower:    variant.SystemPower,
			Efficiency:     variant.Efficiency,
			BasePrice:      variant.BasePrice.Decimal,
			DisplayOrder:   variant.DisplayOrder,
		})
	}

	for _, category := range product.ConfigCategories {
		mapped := configurator.Category{
			Name:             category.CategoryName,
			Label:            category.CategoryLabel,
			SectionName:      category.SectionName,
			SectionLabel:     category.SectionLabel,
			PartCodePosition: category.PartCodePosition,
			IsRequired:       category.IsRequired,
			DisplayOrder:     category.DisplayOrder,
		}
		for _, option := range category.Options {
			mapped.Options = append(mapped.Options, configurator.Option{
				ID:             option.ID,
				Value:          option.OptionValue,
				Label:          option.OptionLabel,
				PartCodeSuffix: option.PartCodeSuffix,
				PriceModifier:  option.PriceModifier.Decimal,
				IsDefault:      option.IsDefault,
				DisplayOrder:   option.DisplayOrder,
				ImageURL:       option.OptionImageURL,
			})
		}
		snap.Categories = append(snap.Categories, mapped)
	}

	for _, feature := range product.ConfigurableFeatures {
		snap.Features = append(snap.Features, configurator.Feature{
			Name:         feature.FeatureName,
			Label:        feature.FeatureLabel,
			CodeLetter:   feature.CodeLetter,
			Configurable: feature.Configurable,
			DefaultValue: feature.DefaultValue,
			Values:       feature.Values,
			DisplayOrder: feature.DisplayOrder,
		})
	}

	for _, accessory := range product.Accessories {
		snap.Accessories = append(snap.Accessories, configurator.Accessory{
			ID:          accessory.ID,
			Name:        accessory.Name,
			PartCode:    accessory.PartCode,
			Description: accessory.Description,
			Price:       accessory.Price.Decimal,
			ImageURL:    accessory.ImageURL,
		})
	}

	for _, feature := range product.Features {
		snap.Specs = append(snap.Specs, configurator.SpecRow{
			Type:    feature.FeatureType,
			Label:   feature.FeatureLabel,
			Value:   feature.FeatureValue,
			IconURL: feature.FeatureIconURL,
		})
	}

	for _, asset := range product.VisualAssets {
		snap.Assets.All = append(snap.Assets.All, configurator.Asset{
			Type:         asset.AssetType,
			Category:     asset.AssetCategory,
			FileURL:      asset.FileURL,
			FileName:     asset.FileName,
			DisplayOrder: asset.DisplayOrder,
		})
	}

	snap.Normalize()
	return snap
}
