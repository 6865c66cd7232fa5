package models

import (
	"time"

	"gorm.io/gorm"
)

// Accessory 配件表（独立计价，不参与型号编码）
type Accessory struct {
	ID                uint           `gorm:"primarykey" json:"id"`                               // 主键
	ProductID         uint           `gorm:"not null;index" json:"product_id"`                   // 产品ID
	Name              string         `gorm:"type:varchar(200);not null" json:"name"`             // 配件名称
	PartCode          string         `gorm:"type:varchar(64)" json:"part_code"`                  // 配件自身型号（仅展示）
	Description       string         `gorm:"type:text" json:"description"`                       // 配件描述
	Price             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 配件价格
	AccessoryCategory string         `gorm:"type:varchar(100)" json:"accessory_category"`        // 配件分组
	ImageURL          string         `gorm:"type:varchar(500)" json:"image_url"`                 // 配件图片
	CreatedAt         time.Time      `json:"created_at"`                                         // 创建时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (Accessory) TableName() string {
	return "accessories"
}

// ProductFeature 产品规格展示行（仅信息展示，无定价与编码作用）
type ProductFeature struct {
	ID             uint           `gorm:"primarykey" json:"id"`                            // 主键
	ProductID      uint           `gorm:"not null;index" json:"product_id"`                // 产品ID
	FeatureType    string         `gorm:"type:varchar(100)" json:"feature_type"`           // 规格分组
	FeatureLabel   string         `gorm:"type:varchar(200);not null" json:"feature_label"` // 规格名
	FeatureValue   string         `gorm:"type:varchar(500)" json:"feature_value"`          // 规格值
	FeatureIconURL string         `gorm:"type:varchar(500)" json:"feature_icon_url"`       // 图标
	DisplayOrder   int            `gorm:"default:0;index" json:"display_order"`            // 展示顺序
	CreatedAt      time.Time      `json:"created_at"`                                      // 创建时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (ProductFeature) TableName() string {
	return "product_features"
}
