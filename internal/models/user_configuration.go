package models

import (
	"time"

	"gorm.io/gorm"
)

// UserConfiguration 已保存配置表（服务端重新推导后落库）
type UserConfiguration struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                                     // 主键
	ProductID           uint           `gorm:"not null;index" json:"product_id"`                         // 产品ID
	VariantID           uint           `gorm:"not null" json:"variant_id"`                               // 档位ID
	SelectedOptionsJSON JSON           `gorm:"type:json" json:"selected_options"`                        // 配置轴名 -> 选项ID
	SelectedAccessories StringArray    `gorm:"type:json" json:"selected_accessories"`                    // 配件ID列表
	FeatureValuesJSON   JSON           `gorm:"type:json" json:"feature_values"`                          // 特性名 -> 已选值
	CustomTextsJSON     JSON           `gorm:"type:json" json:"custom_texts"`                            // 特性名 -> CUSTOM 自由文本
	ConfigurationName   string         `gorm:"type:varchar(200)" json:"configuration_name"`              // 配置名称
	Notes               string         `gorm:"type:text" json:"notes"`                                   // 备注
	FinalPartCode       string         `gorm:"type:varchar(200);index" json:"final_part_code"`           // 服务端推导的最终型号
	FinalPrice          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"final_price"` // 服务端推导的最终价格
	DatasheetURL        string         `gorm:"type:varchar(500)" json:"datasheet_url"`                   // 预渲染规格书地址（异步生成后回填）
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt           time.Time      `json:"updated_at"`                                               // 更新时间
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联产品
}

// TableName 指定表名
func (UserConfiguration) TableName() string {
	return "user_configurations"
}
