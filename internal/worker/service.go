package worker

import (
	"context"
	"errors"
	"time"

	"github.com/lumicfg/internal/config"
	"github.com/lumicfg/internal/logger"
	"github.com/lumicfg/internal/queue"

	"github.com/hibiken/asynq"
)

const catalogWarmIntervalDefault = 10 * time.Minute

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.CatalogService != nil {
		go s.runCatalogWarmLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runCatalogWarmLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CatalogService == nil {
		return
	}
	interval := catalogWarmIntervalDefault
	if s.consumer.Config != nil && s.consumer.Config.Catalog.WarmIntervalSecond > 0 {
		interval = time.Duration(s.consumer.Config.Catalog.WarmIntervalSecond) * time.Second
	}
	runOnce := func() {
		warmed, err := s.consumer.CatalogService.WarmCache(ctx, 0)
		if err != nil {
			logger.Warnw("worker_catalog_warm_loop_failed", "error", err)
			return
		}
		logger.Debugw("worker_catalog_warm_loop_done", "warmed", warmed)
	}
	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
