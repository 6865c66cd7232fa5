package models

import (
	"time"

	"gorm.io/gorm"
)

// ConfigurableFeature 可配置特性表（如外壳颜色、反光杯颜色、表面处理）
// 与 ConfigurationCategory 的区别：取值是小型封闭枚举加 CUSTOM 自由文本，
// 不参与定价；configurable=false 时取固定值且不可编辑。
type ConfigurableFeature struct {
	ID           uint           `gorm:"primarykey" json:"id"`                            // 主键
	ProductID    uint           `gorm:"not null;index" json:"product_id"`                // 产品ID
	FeatureName  string         `gorm:"type:varchar(100);not null" json:"feature_name"`  // 特性标识（选择映射的 key）
	FeatureLabel string         `gorm:"type:varchar(200);not null" json:"feature_label"` // 特性展示名
	CodeLetter   string         `gorm:"type:varchar(1)" json:"code_letter"`              // 型号编码前缀字母（目录数据显式指定，避免首字母冲突）
	Configurable bool           `gorm:"default:true" json:"configurable"`                // 是否允许用户编辑
	DefaultValue string         `gorm:"type:varchar(200)" json:"default_value"`          // 默认值（configurable=false 时为固定值）
	Values       StringArray    `gorm:"type:json" json:"values"`                         // 可选枚举值列表
	DisplayOrder int            `gorm:"default:0;index" json:"display_order"`            // 展示顺序
	CreatedAt    time.Time      `json:"created_at"`                                      // 创建时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (ConfigurableFeature) TableName() string {
	return "configurable_features"
}
