package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumicfg/internal/logger"
	"github.com/lumicfg/internal/provider"
	"github.com/lumicfg/internal/queue"
	"github.com/lumicfg/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskDatasheetPrerender, c.handleDatasheetPrerender)
	mux.HandleFunc(queue.TaskCatalogCacheWarm, c.handleCatalogCacheWarm)
}

func (c *Consumer) handleDatasheetPrerender(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_datasheet_prerender_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.DatasheetPrerenderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_datasheet_prerender_unmarshal_failed", "error", err)
		return err
	}
	if payload.ConfigurationID == 0 {
		logger.Debugw("worker_datasheet_prerender_skip_invalid_payload", "configuration_id", payload.ConfigurationID)
		return nil
	}
	if c.DatasheetService == nil || !c.DatasheetService.Enabled() {
		logger.Debugw("worker_datasheet_prerender_skip_renderer_disabled", "configuration_id", payload.ConfigurationID)
		return nil
	}
	url, err := c.DatasheetService.PrerenderSaved(ctx, payload.ConfigurationID)
	if err != nil {
		// 配置已删除时无需重试
		if errors.Is(err, service.ErrConfigurationNotFound) {
			logger.Debugw("worker_datasheet_prerender_skip_configuration_missing", "configuration_id", payload.ConfigurationID)
			return nil
		}
		logger.Warnw("worker_datasheet_prerender_failed", "configuration_id", payload.ConfigurationID, "error", err)
		return err
	}
	logger.Infow("worker_datasheet_prerender_done", "configuration_id", payload.ConfigurationID, "url", url)
	return nil
}

func (c *Consumer) handleCatalogCacheWarm(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_catalog_cache_warm_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CatalogCacheWarmPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_catalog_cache_warm_unmarshal_failed", "error", err)
		return err
	}
	if c.CatalogService == nil {
		logger.Debugw("worker_catalog_cache_warm_skip_service_nil")
		return nil
	}
	warmed, err := c.CatalogService.WarmCache(ctx, payload.ProductID)
	if err != nil {
		logger.Warnw("worker_catalog_cache_warm_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	logger.Infow("worker_catalog_cache_warm_done", "product_id", payload.ProductID, "warmed", warmed)
	return nil
}
