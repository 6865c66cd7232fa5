package provider

import (
	"github.com/lumicfg/internal/cache"
	"github.com/lumicfg/internal/config"
	"github.com/lumicfg/internal/logger"
	"github.com/lumicfg/internal/models"
	"github.com/lumicfg/internal/queue"
	"github.com/lumicfg/internal/renderer"
	"github.com/lumicfg/internal/repository"
	"github.com/lumicfg/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CategoryRepo          repository.CategoryRepository
	ProductRepo           repository.ProductRepository
	UserConfigurationRepo repository.UserConfigurationRepository

	// Services
	CatalogService       *service.CatalogService
	ConfigurationService *service.ConfigurationService
	DatasheetService     *service.DatasheetService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.UserConfigurationRepo = repository.NewUserConfigurationRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.ProductRepo, c.Config.Catalog.CacheTTLSeconds)
	c.ConfigurationService = service.NewConfigurationService(c.CatalogService, c.UserConfigurationRepo, c.QueueClient)

	// 渲染服务未配置时数据表接口返回明确错误，其余功能不受影响
	var rendererClient *renderer.Client
	if c.Config.Renderer.BaseURL != "" {
		client, err := renderer.NewClient(renderer.Config{
			BaseURL:   c.Config.Renderer.BaseURL,
			AuthToken: c.Config.Renderer.AuthToken,
			TimeoutMS: c.Config.Renderer.TimeoutMS,
		})
		if err != nil {
			logger.Warnw("provider_init_renderer_failed", "error", err)
		} else {
			rendererClient = client
		}
	}
	c.DatasheetService = service.NewDatasheetService(
		c.CatalogService,
		c.UserConfigurationRepo,
		rendererClient,
		c.Config.Datasheet.Dir,
		c.Config.Datasheet.PublicURL,
	)
}
