package service

import (
	"context"
	"strconv"

	"github.com/lumicfg/internal/configurator"
	"github.com/lumicfg/internal/logger"
	"github.com/lumicfg/internal/models"
	"github.com/lumicfg/internal/queue"
	"github.com/lumicfg/internal/repository"
)

// ConfigurationService 配置业务服务：报价推导与配置保存
type ConfigurationService struct {
	catalog     *CatalogService
	configRepo  repository.UserConfigurationRepository
	queueClient *queue.Client
}

// NewConfigurationService 创建配置服务
func NewConfigurationService(catalog *CatalogService, configRepo repository.UserConfigurationRepository, queueClient *queue.Client) *ConfigurationService {
	return &ConfigurationService{
		catalog:     catalog,
		configRepo:  configRepo,
		queueClient: queueClient,
	}
}

// SelectionInput 客户端提交的完整选择状态
type SelectionInput struct {
	ProductID           uint              `json:"product_id" binding:"required"`
	VariantID           uint              `json:"variant_id"`
	SelectedOptions     map[string]uint   `json:"selected_options"`
	SelectedAccessories []uint            `json:"selected_accessories"`
	FeatureValues       map[string]string `json:"feature_values"`
	CustomTexts         map[string]string `json:"custom_texts"`
}

// SummaryItem 报价摘要条目（价格以 2 位小数字符串呈现）
type SummaryItem struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
	Price string `json:"price,omitempty"`
	Fixed bool   `json:"fixed,omitempty"`
}

// QuoteResult 报价结果
type QuoteResult struct {
	ProductID  uint          `json:"product_id"`
	TotalPrice string        `json:"total_price"`
	PartCode   string        `json:"part_code"`
	Summary    []SummaryItem `json:"summary"`
}

// Quote 服务端重新推导报价。
// 提交的选择逐项走选择状态变更器校验，非法引用与非法取值直接拒绝。
func (s *ConfigurationService) Quote(ctx context.Context, input SelectionInput) (*QuoteResult, error) {
	snap, err := s.catalog.LoadSnapshot(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	selection, err := applySelection(snap, input)
	if err != nil {
		return nil, err
	}

	result, err := configurator.Derive(snap, selection)
	if err != nil {
		return nil, err
	}
	return buildQuoteResult(input.ProductID, result), nil
}

// SaveInput 保存配置输入
type SaveInput struct {
	SelectionInput
	ConfigurationName string `json:"configuration_name"`
	Notes             string `json:"notes"`
}

// Save 保存配置：服务端重新推导后落库，并推送数据表预渲染任务。
// 不信任客户端提交的价格与型号。
func (s *ConfigurationService) Save(ctx context.Context, input SaveInput) (*models.UserConfiguration, error) {
	snap, err := s.catalog.LoadSnapshot(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	selection, err := applySelection(snap, input.SelectionInput)
	if err != nil {
		return nil, err
	}

	result, err := configurator.Derive(snap, selection)
	if err != nil {
		return nil, err
	}

	configuration := models.UserConfiguration{
		ProductID:           input.ProductID,
		VariantID:           selection.VariantID,
		SelectedOptionsJSON: optionsToJSON(selection.Options),
		SelectedAccessories: accessoriesToArray(selection.Accessories),
		FeatureValuesJSON:   stringMapToJSON(selection.FeatureValues),
		CustomTextsJSON:     stringMapToJSON(selection.CustomTexts),
		ConfigurationName:   input.ConfigurationName,
		Notes:               input.Notes,
		FinalPartCode:       result.PartCode,
		FinalPrice:          models.NewMoneyFromDecimal(result.TotalPrice),
	}
	if err := s.configRepo.Create(&configuration); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueDatasheetPrerender(queue.DatasheetPrerenderPayload{ConfigurationID: configuration.ID}); err != nil {
		// 预渲染失败不阻塞保存，数据表可以按需同步生成
		logger.Warnw("datasheet_prerender_enqueue_failed",
			"configuration_id", configuration.ID,
			"error", err,
		)
	}
	return &configuration, nil
}

// Get 获取已保存配置
func (s *ConfigurationService) Get(ctx context.Context, id uint) (*models.UserConfiguration, error) {
	configuration, err := s.configRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if configuration == nil {
		return nil, ErrConfigurationNotFound
	}
	return configuration, nil
}

// List 已保存配置列表
func (s *ConfigurationService) List(ctx context.Context, filter repository.UserConfigurationListFilter) ([]models.UserConfiguration, int64, error) {
	return s.configRepo.List(filter)
}

// RestoreSelection 把落库的选择状态还原为引擎选择结构
func RestoreSelection(configuration *models.UserConfiguration) *configurator.Selection {
	selection := configurator.NewSelection()
	if configuration == nil {
		return selection
	}
	selection.VariantID = configuration.VariantID
	for name, raw := range configuration.SelectedOptionsJSON {
		if id, ok := jsonNumberToUint(raw); ok {
			selection.Options[name] = id
		}
	}
	for _, raw := range configuration.SelectedAccessories {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			selection.Accessories[uint(id)] = true
		}
	}
	for name, raw := range configuration.FeatureValuesJSON {
		if value, ok := raw.(string); ok {
			selection.FeatureValues[name] = value
		}
	}
	for name, raw := range configuration.CustomTextsJSON {
		if value, ok := raw.(string); ok {
			selection.CustomTexts[name] = value
		}
	}
	return selection
}

// applySelection 把客户端提交的选择逐项通过选择状态变更器应用到默认状态上。
// 未知档位/选项/配件与枚举外的特性取值都会返回对应哨兵错误，
// 与交互式会话共用同一套校验，绝不把非法输入带进推导引擎。
func applySelection(snap *configurator.Snapshot, input SelectionInput) (*configurator.Selection, error) {
	selection := configurator.NewSelection()
	selection.Initialize(snap)
	if input.VariantID != 0 {
		if err := selection.SelectVariant(snap, input.VariantID); err != nil {
			return nil, err
		}
	}
	for name, id := range input.SelectedOptions {
		if err := selection.SelectOption(snap, name, id); err != nil {
			return nil, err
		}
	}
	for _, id := range input.SelectedAccessories {
		if selection.Accessories[id] {
			continue
		}
		if err := selection.ToggleAccessory(snap, id); err != nil {
			return nil, err
		}
	}
	for name, value := range input.FeatureValues {
		if err := selection.SetFeatureValue(snap, name, value); err != nil {
			return nil, err
		}
	}
	for name, text := range input.CustomTexts {
		if err := selection.SetCustomFeatureText(snap, name, text); err != nil {
			return nil, err
		}
	}
	return selection, nil
}

func buildQuoteResult(productID uint, result *configurator.Result) *QuoteResult {
	quote := &QuoteResult{
		ProductID:  productID,
		TotalPrice: result.TotalPrice.Round(2).StringFixed(2),
		PartCode:   result.PartCode,
		Summary:    make([]SummaryItem, 0, len(result.Summary)),
	}
	for _, item := range result.Summary {
		mapped := SummaryItem{
			Kind:  item.Kind,
			Label: item.Label,
			Value: item.Value,
			Fixed: item.Fixed,
		}
		if item.Price != nil {
			mapped.Price = item.Price.Round(2).StringFixed(2)
		}
		quote.Summary = append(quote.Summary, mapped)
	}
	return quote
}

func optionsToJSON(options map[string]uint) models.JSON {
	out := make(models.JSON, len(options))
	for name, id := range options {
		out[name] = id
	}
	return out
}

func accessoriesToArray(accessories map[uint]bool) models.StringArray {
	out := make(models.StringArray, 0, len(accessories))
	for id, selected := range accessories {
		if selected {
			out = append(out, strconv.FormatUint(uint64(id), 10))
		}
	}
	return out
}

func stringMapToJSON(values map[string]string) models.JSON {
	out := make(models.JSON, len(values))
	for name, value := range values {
		out[name] = value
	}
	return out
}

func jsonNumberToUint(raw interface{}) (uint, bool) {
	switch v := raw.(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case uint:
		return v, true
	case string:
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(id), true
		}
	}
	return 0, false
}
