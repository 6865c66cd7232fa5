package models

import (
	"time"

	"gorm.io/gorm"
)

// VisualAsset 视觉资源表（认证标志、产品图、尺寸图等）
type VisualAsset struct {
	ID            uint           `gorm:"primarykey" json:"id"`                      // 主键
	ProductID     uint           `gorm:"not null;index" json:"product_id"`          // 产品ID
	AssetType     string         `gorm:"type:varchar(50);index" json:"asset_type"`  // 资源类型（certification/product_image/dimension_image）
	AssetCategory string         `gorm:"type:varchar(100)" json:"asset_category"`   // 资源分组
	FileURL       string         `gorm:"type:varchar(500);not null" json:"file_url"` // 文件地址
	FileName      string         `gorm:"type:varchar(200)" json:"file_name"`        // 文件名
	DisplayOrder  int            `gorm:"default:0;index" json:"display_order"`      // 展示顺序
	CreatedAt     time.Time      `json:"created_at"`                                // 创建时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
}

// TableName 指定表名
func (VisualAsset) TableName() string {
	return "visual_assets"
}
