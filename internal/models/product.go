package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 产品表（一个可配置的灯具产品）
type Product struct {
	ID                uint           `gorm:"primarykey" json:"id"`                            // 主键
	CategoryID        uint           `gorm:"not null;index" json:"category_id"`               // 分类ID
	Name              string         `gorm:"type:varchar(200);not null" json:"name"`          // 产品名称
	BasePartCode      string         `gorm:"type:varchar(64);not null" json:"base_part_code"` // 基础型号编码片段
	Description       string         `gorm:"type:text" json:"description"`                    // 产品描述
	ProductImageURL   string         `gorm:"type:varchar(500)" json:"product_image_url"`      // 产品图
	DimensionImageURL string         `gorm:"type:varchar(500)" json:"dimension_image_url"`    // 尺寸图
	IsActive          bool           `gorm:"default:true;index" json:"is_active"`             // 是否上架
	SortOrder         int            `gorm:"default:0;index" json:"sort_order"`               // 排序权重
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt         time.Time      `json:"updated_at"`                                      // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间

	// 关联
	Category             Category                `gorm:"foreignKey:CategoryID" json:"category,omitempty"`              // 分类信息
	Variants             []ProductVariant        `gorm:"foreignKey:ProductID" json:"variants,omitempty"`               // 功率档位列表
	ConfigCategories     []ConfigurationCategory `gorm:"foreignKey:ProductID" json:"configuration_categories,omitempty"` // 配置轴列表
	ConfigurableFeatures []ConfigurableFeature   `gorm:"foreignKey:ProductID" json:"configurable_features,omitempty"`  // 可配置特性列表
	Accessories          []Accessory             `gorm:"foreignKey:ProductID" json:"accessories,omitempty"`            // 配件列表
	Features             []ProductFeature        `gorm:"foreignKey:ProductID" json:"features,omitempty"`               // 规格展示行
	VisualAssets         []VisualAsset           `gorm:"foreignKey:ProductID" json:"visual_assets,omitempty"`          // 视觉资源
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
