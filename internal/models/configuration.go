package models

import (
	"time"

	"gorm.io/gorm"
)

// ConfigurationCategory 配置轴表（如光束角、色温、防眩等级）
type ConfigurationCategory struct {
	ID               uint           `gorm:"primarykey" json:"id"`                             // 主键
	ProductID        uint           `gorm:"not null;index" json:"product_id"`                 // 产品ID
	SectionName      string         `gorm:"type:varchar(100)" json:"section_name"`            // 所属分区标识
	SectionLabel     string         `gorm:"type:varchar(200)" json:"section_label"`           // 所属分区展示名
	CategoryName     string         `gorm:"type:varchar(100);not null" json:"category_name"`  // 配置轴标识（选择映射的 key）
	CategoryLabel    string         `gorm:"type:varchar(200);not null" json:"category_label"` // 配置轴展示名
	PartCodePosition int            `gorm:"default:0;index" json:"part_code_position"`        // 型号编码插入位置（0 表示不参与编码）
	IsRequired       bool           `gorm:"default:false" json:"is_required"`                 // 是否必选
	DisplayOrder     int            `gorm:"default:0;index" json:"display_order"`             // 展示顺序
	CreatedAt        time.Time      `json:"created_at"`                                       // 创建时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间

	Options []ConfigurationOption `gorm:"foreignKey:CategoryID" json:"options,omitempty"` // 选项列表
}

// TableName 指定表名
func (ConfigurationCategory) TableName() string {
	return "configuration_categories"
}

// ConfigurationOption 配置选项表（配置轴下的单个可选值）
type ConfigurationOption struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	CategoryID     uint           `gorm:"not null;index" json:"category_id"`                           // 配置轴ID
	OptionValue    string         `gorm:"type:varchar(100);not null" json:"option_value"`              // 选项值标识
	OptionLabel    string         `gorm:"type:varchar(200);not null" json:"option_label"`              // 选项展示名
	PartCodeSuffix string         `gorm:"type:varchar(64)" json:"part_code_suffix"`                    // 型号编码后缀片段（可为空）
	PriceModifier  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_modifier"` // 价格增减量（有符号）
	IsDefault      bool           `gorm:"default:false" json:"is_default"`                             // 是否默认选中
	DisplayOrder   int            `gorm:"default:0;index" json:"display_order"`                        // 展示顺序
	OptionImageURL string         `gorm:"type:varchar(500)" json:"option_image_url"`                   // 选项示意图
	CreatedAt      time.Time      `json:"created_at"`                                                  // 创建时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (ConfigurationOption) TableName() string {
	return "configuration_options"
}
