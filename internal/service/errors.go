package service

import "errors"

// 业务层哨兵错误，由 handler 层映射为响应码与文案
var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrConfigurationNotFound = errors.New("configuration not found")
	ErrRendererNotConfigured = errors.New("datasheet renderer not configured")
	ErrRendererUnavailable   = errors.New("datasheet renderer unavailable")
)
