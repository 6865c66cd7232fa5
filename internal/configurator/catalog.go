// Package configurator 实现产品配置的纯推导核心：
// 目录快照（只读）、选择状态（可变）与价格/型号推导引擎。
// 包内不依赖数据库与传输层，所有输出都是两个输入的确定性函数。
package configurator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// 特性取值哨兵常量
const (
	// ValueCustom 表示用户选择了自由文本输入
	ValueCustom = "CUSTOM"
	// ValueNotApplicable 表示该特性对当前配置不适用，不参与型号编码
	ValueNotApplicable = "N/A"
)

// 视觉资源类型常量
const (
	AssetTypeCertification  = "certification"
	AssetTypeProductImage   = "product_image"
	AssetTypeDimensionImage = "dimension_image"
)

// Product 产品标识信息
type Product struct {
	ID                uint
	Name              string
	BasePartCode      string
	Description       string
	ProductImageURL   string
	DimensionImageURL string
}

// Variant 功率档位
type Variant struct {
	ID             uint
	Name           string
	PartCodeSuffix string
	SystemOutput   string
	SystemPower    string
	Efficiency     string
	BasePrice      decimal.Decimal
	DisplayOrder   int
}

// Option 配置轴下的单个选项
type Option struct {
	ID             uint
	Value          string
	Label          string
	PartCodeSuffix string
	PriceModifier  decimal.Decimal
	IsDefault      bool
	DisplayOrder   int
	ImageURL       string
}

// Category 配置轴（如光束角、色温）
type Category struct {
	Name             string
	Label            string
	SectionName      string
	SectionLabel     string
	PartCodePosition int // 0 表示不参与型号编码
	IsRequired       bool
	DisplayOrder     int
	Options          []Option
}

// Feature 可配置特性（封闭枚举 + CUSTOM 自由文本，或固定值）
type Feature struct {
	Name         string
	Label        string
	CodeLetter   string // 型号编码前缀字母，目录数据显式指定
	Configurable bool
	DefaultValue string
	Values       []string
	DisplayOrder int
}

// Accessory 配件
type Accessory struct {
	ID          uint
	Name        string
	PartCode    string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}

// SpecRow 规格展示行（仅信息展示）
type SpecRow struct {
	Type    string
	Label   string
	Value   string
	IconURL string
}

// Asset 单个视觉资源
type Asset struct {
	Type         string
	Category     string
	FileURL      string
	FileName     string
	DisplayOrder int
}

// AssetGroups 视觉资源分组，加载时一次性归一化
type AssetGroups struct {
	Certifications  []Asset
	ProductImages   []Asset
	DimensionImages []Asset
	All             []Asset
}

// Snapshot 一次配置会话使用的只读目录快照
type Snapshot struct {
	Product     Product
	Variants    []Variant
	Categories  []Category
	Features    []Feature
	Accessories []Accessory
	Specs       []SpecRow
	Assets      AssetGroups
}

// Normalize 对快照做一次性排序与资源分组，加载后调用一次。
// 档位与选项按展示顺序排序，资源可能只带 All 列表时按类型回填分组。
func (s *Snapshot) Normalize() {
	if s == nil {
		return
	}
	sort.SliceStable(s.Variants, func(i, j int) bool {
		return s.Variants[i].DisplayOrder < s.Variants[j].DisplayOrder
	})
	sort.SliceStable(s.Categories, func(i, j int) bool {
		return s.Categories[i].DisplayOrder < s.Categories[j].DisplayOrder
	})
	for i := range s.Categories {
		options := s.Categories[i].Options
		sort.SliceStable(options, func(a, b int) bool {
			return options[a].DisplayOrder < options[b].DisplayOrder
		})
	}
	sort.SliceStable(s.Features, func(i, j int) bool {
		return s.Features[i].DisplayOrder < s.Features[j].DisplayOrder
	})
	s.Assets = GroupAssets(s.Assets)
}

// GroupAssets 归一化视觉资源分组。
// 上游可能只提供 All，或只提供部分分组；缺失的分组从 All 按类型过滤补齐，
// 避免每个使用点各自做回退判断。
func GroupAssets(groups AssetGroups) AssetGroups {
	all := groups.All
	if len(all) == 0 {
		all = append(all, groups.Certifications...)
		all = append(all, groups.ProductImages...)
		all = append(all, groups.DimensionImages...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DisplayOrder < all[j].DisplayOrder
	})

	result := AssetGroups{All: all}
	result.Certifications = groups.Certifications
	if len(result.Certifications) == 0 {
		result.Certifications = filterAssets(all, AssetTypeCertification)
	}
	result.ProductImages = groups.ProductImages
	if len(result.ProductImages) == 0 {
		result.ProductImages = filterAssets(all, AssetTypeProductImage)
	}
	result.DimensionImages = groups.DimensionImages
	if len(result.DimensionImages) == 0 {
		result.DimensionImages = filterAssets(all, AssetTypeDimensionImage)
	}
	return result
}

func filterAssets(all []Asset, assetType string) []Asset {
	filtered := make([]Asset, 0)
	for _, asset := range all {
		if asset.Type == assetType {
			filtered = append(filtered, asset)
		}
	}
	return filtered
}

// VariantByID 按 ID 查找档位
func (s *Snapshot) VariantByID(id uint) *Variant {
	if s == nil || id == 0 {
		return nil
	}
	for i := range s.Variants {
		if s.Variants[i].ID == id {
			return &s.Variants[i]
		}
	}
	return nil
}

// CategoryByName 按配置轴标识查找配置轴
func (s *Snapshot) CategoryByName(name string) *Category {
	if s == nil {
		return nil
	}
	for i := range s.Categories {
		if s.Categories[i].Name == name {
			return &s.Categories[i]
		}
	}
	return nil
}

// OptionByID 按 ID 查找配置轴下的选项
func (c *Category) OptionByID(id uint) *Option {
	if c == nil || id == 0 {
		return nil
	}
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i]
		}
	}
	return nil
}

// AccessoryByID 按 ID 查找配件
func (s *Snapshot) AccessoryByID(id uint) *Accessory {
	if s == nil || id == 0 {
		return nil
	}
	for i := range s.Accessories {
		if s.Accessories[i].ID == id {
			return &s.Accessories[i]
		}
	}
	return nil
}

// FeatureByName 按特性标识查找可配置特性
func (s *Snapshot) FeatureByName(name string) *Feature {
	if s == nil {
		return nil
	}
	for i := range s.Features {
		if s.Features[i].Name == name {
			return &s.Features[i]
		}
	}
	return nil
}

// HasValue 判断给定值是否属于特性的枚举集合（CUSTOM 哨兵单独处理）
func (f *Feature) HasValue(value string) bool {
	if f == nil {
		return false
	}
	for _, v := range f.Values {
		if v == value {
			return true
		}
	}
	return false
}
