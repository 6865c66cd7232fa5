package queue

import (
	"encoding/json"

	"github.com/lumicfg/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskDatasheetPrerender 数据表预渲染任务
	TaskDatasheetPrerender = constants.TaskDatasheetPrerender
	// TaskCatalogCacheWarm 目录缓存预热任务
	TaskCatalogCacheWarm = constants.TaskCatalogCacheWarm
)

// DatasheetPrerenderPayload 数据表预渲染任务载荷
type DatasheetPrerenderPayload struct {
	ConfigurationID uint `json:"configuration_id"`
}

// CatalogCacheWarmPayload 目录缓存预热任务载荷
type CatalogCacheWarmPayload struct {
	ProductID uint `json:"product_id"` // 0 表示全量预热
}

// NewDatasheetPrerenderTask 创建数据表预渲染任务
func NewDatasheetPrerenderTask(payload DatasheetPrerenderPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDatasheetPrerender, body), nil
}

// NewCatalogCacheWarmTask 创建目录缓存预热任务
func NewCatalogCacheWarmTask(payload CatalogCacheWarmPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCatalogCacheWarm, body), nil
}
