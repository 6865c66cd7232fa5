package constants

import "github.com/lumicfg/internal/configurator"

// 视觉资源类型常量，取值以推导核心为准
const (
	AssetTypeCertification  = configurator.AssetTypeCertification
	AssetTypeProductImage   = configurator.AssetTypeProductImage
	AssetTypeDimensionImage = configurator.AssetTypeDimensionImage
)

// 特性取值哨兵常量，取值以推导核心为准
const (
	FeatureValueCustom        = configurator.ValueCustom
	FeatureValueNotApplicable = configurator.ValueNotApplicable
)

// 产品特性展示类型常量
const (
	ProductFeatureTypeSpec      = "spec"
	ProductFeatureTypeHighlight = "highlight"
)

// 队列常量
const (
	QueueDefault           = "default"
	QueueCritical          = "critical"
	TaskDatasheetPrerender = "datasheet:prerender"
	TaskCatalogCacheWarm   = "catalog:cache_warm"
)

// 缓存键常量
const (
	CacheKeyCategoryList  = "catalog:categories"
	CacheKeyProductDetail = "catalog:product" // 拼接 ":<id>"
)

// 站点语言常量
const (
	LocaleZhCN = "zh-CN"
	LocaleZhTW = "zh-TW"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleZhCN, LocaleZhTW, LocaleEnUS}
