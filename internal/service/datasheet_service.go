package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lumicfg/internal/configurator"
	"github.com/lumicfg/internal/logger"
	"github.com/lumicfg/internal/renderer"
	"github.com/lumicfg/internal/repository"
)

// DatasheetService 数据表业务服务：代理外部渲染服务生成 PDF 规格书
type DatasheetService struct {
	catalog    *CatalogService
	configRepo repository.UserConfigurationRepository
	renderer   *renderer.Client
	outputDir  string
	publicURL  string
}

// NewDatasheetService 创建数据表服务；rendererClient 为 nil 表示未配置渲染服务
func NewDatasheetService(catalog *CatalogService, configRepo repository.UserConfigurationRepository, rendererClient *renderer.Client, outputDir, publicURL string) *DatasheetService {
	if strings.TrimSpace(outputDir) == "" {
		outputDir = "./datasheets"
	}
	if strings.TrimSpace(publicURL) == "" {
		publicURL = "/datasheets"
	}
	return &DatasheetService{
		catalog:    catalog,
		configRepo: configRepo,
		renderer:   rendererClient,
		outputDir:  outputDir,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
}

// Enabled 判断渲染服务是否配置
func (s *DatasheetService) Enabled() bool {
	return s != nil && s.renderer != nil
}

// Generate 按当前选择同步生成数据表 PDF
func (s *DatasheetService) Generate(ctx context.Context, input SelectionInput) ([]byte, error) {
	if !s.Enabled() {
		return nil, ErrRendererNotConfigured
	}
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

	pdf, err := s.renderer.Render(ctx, BuildDatasheetPayload(snap, selection, result))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}
	return pdf, nil
}

// PrerenderSaved 为已保存配置生成数据表文件并回填访问地址。
// 由队列消费者调用；返回对外访问 URL。
func (s *DatasheetService) PrerenderSaved(ctx context.Context, configurationID uint) (string, error) {
	if !s.Enabled() {
		return "", ErrRendererNotConfigured
	}
	configuration, err := s.configRepo.GetByID(configurationID)
	if err != nil {
		return "", err
	}
	if configuration == nil {
		return "", ErrConfigurationNotFound
	}

	snap, err := s.catalog.LoadSnapshot(ctx, configuration.ProductID)
	if err != nil {
		return "", err
	}
	selection := RestoreSelection(configuration)
	selection.Initialize(snap)
	result, err := configurator.Derive(snap, selection)
	if err != nil {
		return "", err
	}

	pdf, err := s.renderer.Render(ctx, BuildDatasheetPayload(snap, selection, result))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d.pdf", configuration.ID)
	if err := os.WriteFile(filepath.Join(s.outputDir, filename), pdf, 0o644); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s", s.publicURL, filename)
	configuration.DatasheetURL = url
	if err := s.configRepo.Update(configuration); err != nil {
		return "", err
	}
	logger.Infow("datasheet_prerendered",
		"configuration_id", configuration.ID,
		"part_code", result.PartCode,
		"url", url,
	)
	return url, nil
}

// BuildDatasheetPayload 把推导结果组装为渲染载荷：
// 产品头信息、完整档位列表、带编码后缀与示意图的已解析选项、
// 按摘要分组的特性/配件明细与规格展示行。
func BuildDatasheetPayload(snap *configurator.Snapshot, sel *configurator.Selection, result *configurator.Result) renderer.Payload {
	payload := renderer.Payload{
		ProductName:    snap.Product.Name,
		PartCode:       result.PartCode,
		TotalPrice:     result.TotalPrice.Round(2).StringFixed(2),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		ProductImage:   snap.Product.ProductImageURL,
		DimensionImage: snap.Product.DimensionImageURL,
	}
	if len(snap.Assets.ProductImages) > 0 && payload.ProductImage == "" {
		payload.ProductImage = snap.Assets.ProductImages[0].FileURL
	}
	if len(snap.Assets.DimensionImages) > 0 && payload.DimensionImage == "" {
		payload.DimensionImage = snap.Assets.DimensionImages[0].FileURL
	}

	for i := range snap.Variants {
		variant := &snap.Variants[i]
		payload.Variants = append(payload.Variants, renderer.PayloadVariant{
			Name:           variant.Name,
			PartCodeSuffix: variant.PartCodeSuffix,
			SystemOutput:   variant.SystemOutput,
			SystemPower:    variant.SystemPower,
			Efficiency:     variant.Efficiency,
			BasePrice:      variant.BasePrice.Round(2).StringFixed(2),
			Selected:       variant.ID == sel.VariantID,
		})
	}

	sections := map[string]*renderer.PayloadSection{}
	order := []string{}
	appendRow := func(title string, row renderer.PayloadRow) {
		section, ok := sections[title]
		if !ok {
			section = &renderer.PayloadSection{Title: title}
			sections[title] = section
			order = append(order, title)
		}
		section.Rows = append(section.Rows, row)
	}

	// 选项行直接从快照解析，摘要不携带编码后缀与示意图
	if variant := snap.VariantByID(sel.VariantID); variant != nil {
		appendRow("Configuration", renderer.PayloadRow{
			Label:          variant.Name,
			Value:          variant.PartCodeSuffix,
			Price:          variant.BasePrice.Round(2).StringFixed(2),
			PartCodeSuffix: variant.PartCodeSuffix,
		})
	}
	for i := range snap.Categories {
		category := &snap.Categories[i]
		optionID, chosen := sel.Options[category.Name]
		if !chosen {
			continue
		}
		option := category.OptionByID(optionID)
		if option == nil {
			continue
		}
		appendRow("Configuration", renderer.PayloadRow{
			Label:          category.Label,
			Value:          option.Label,
			Price:          option.PriceModifier.Round(2).StringFixed(2),
			PartCodeSuffix: option.PartCodeSuffix,
			ImageURL:       option.ImageURL,
		})
	}

	for _, item := range result.Summary {
		row := renderer.PayloadRow{Label: item.Label, Value: item.Value}
		if item.Price != nil {
			row.Price = item.Price.Round(2).StringFixed(2)
		}
		switch item.Kind {
		case configurator.SummaryKindFeature:
			appendRow("Finishes", row)
		case configurator.SummaryKindAccessory:
			appendRow("Accessories", row)
		}
	}
	for _, title := range order {
		payload.Sections = append(payload.Sections, *sections[title])
	}

	for _, cert := range snap.Assets.Certifications {
		payload.Certifications = append(payload.Certifications, renderer.PayloadAsset{
			Name: cert.FileName,
			URL:  cert.FileURL,
		})
	}

	for _, spec := range snap.Specs {
		payload.Specifications = append(payload.Specifications, map[string]interface{}{
			"type":  spec.Type,
			"label": spec.Label,
			"value": spec.Value,
		})
	}
	return payload
}
