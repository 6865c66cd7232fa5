package repository

import (
	"errors"

	"github.com/lumicfg/internal/models"

	"gorm.io/gorm"
)

// UserConfigurationRepository 已保存配置数据访问接口
type UserConfigurationRepository interface {
	Create(configuration *models.UserConfiguration) error
	Update(configuration *models.UserConfiguration) error
	GetByID(id uint) (*models.UserConfiguration, error)
	List(filter UserConfigurationListFilter) ([]models.UserConfiguration, int64, error)
}

// GormUserConfigurationRepository GORM 实现
type GormUserConfigurationRepository struct {
	db *gorm.DB
}

// NewUserConfigurationRepository 创建已保存配置仓库
func NewUserConfigurationRepository(db *gorm.DB) *GormUserConfigurationRepository {
	return &GormUserConfigurationRepository{db: db}
}

// Create 保存配置
func (r *GormUserConfigurationRepository) Create(configuration *models.UserConfiguration) error {
	return r.db.Create(configuration).Error
}

// Update 更新配置（数据表地址回填等）
func (r *GormUserConfigurationRepository) Update(configuration *models.UserConfiguration) error {
	return r.db.Save(configuration).Error
}

// GetByID 根据 ID 获取配置
func (r *GormUserConfigurationRepository) GetByID(id uint) (*models.UserConfiguration, error) {
	var configuration models.UserConfiguration
	if err := r.db.Preload("Product").First(&configuration, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &configuration, nil
}

// List 已保存配置列表
func (r *GormUserConfigurationRepository) List(filter UserConfigurationListFilter) ([]models.UserConfiguration, int64, error) {
	var configurations []models.UserConfiguration

	query := r.db.Model(&models.UserConfiguration{})
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Product").Order("created_at DESC, id DESC").Find(&configurations).Error; err != nil {
		return nil, 0, err
	}

	return configurations, total, nil
}
