package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductVariant 产品功率档位表（同一产品下的可选档位）
type ProductVariant struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                      // 主键
	ProductID      uint           `gorm:"not null;index" json:"product_id"`                          // 产品ID
	VariantName    string         `gorm:"type:varchar(200);not null" json:"variant_name"`            // 档位名称（如 15W 3000K）
	PartCodeSuffix string         `gorm:"type:varchar(64)" json:"part_code_suffix"`                  // 型号编码后缀片段
	SystemOutput   string         `gorm:"type:varchar(64)" json:"system_output"`                     // 光通量（仅展示）
	SystemPower    string         `gorm:"type:varchar(64)" json:"system_power"`                      // 系统功率（仅展示）
	Efficiency     string         `gorm:"type:varchar(64)" json:"efficiency"`                        // 光效（仅展示）
	Specifications string         `gorm:"type:text" json:"specifications"`                           // 附加规格说明
	BasePrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"base_price"`   // 档位基础价格
	DisplayOrder   int            `gorm:"default:0;index" json:"display_order"`                      // 展示顺序
	CreatedAt      time.Time      `json:"created_at"`                                                // 创建时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联产品
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}
