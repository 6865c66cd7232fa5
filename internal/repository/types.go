package repository

// ProductListFilter 查询产品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	CategorySlug string
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// UserConfigurationListFilter 查询已保存配置列表的过滤条件
type UserConfigurationListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
}
