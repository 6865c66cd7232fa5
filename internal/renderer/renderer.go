// Package renderer 封装外部数据表渲染服务的调用。
// 渲染服务接收配置的完整快照，返回 PDF 字节流。
package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrConfigInvalid   = errors.New("renderer config invalid")
	ErrRequestFailed   = errors.New("renderer request failed")
	ErrResponseInvalid = errors.New("renderer response invalid")
)

// Config 渲染服务配置
type Config struct {
	BaseURL   string // 服务地址，如 https://render.example.com
	AuthToken string // API Token，可为空
	TimeoutMS int    // 请求超时（毫秒）
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.AuthToken = strings.TrimSpace(c.AuthToken)
	if c.TimeoutMS <= 0 {
		c.TimeoutMS = 10000
	}
}

// ValidateConfig 校验配置
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return fmt.Errorf("%w: base_url is required", ErrConfigInvalid)
	}
	return nil
}

// Payload 渲染请求载荷：配置的完整快照（产品、档位、选项、配件、特性）
type Payload struct {
	ProductName    string                   `json:"product_name"`
	PartCode       string                   `json:"part_code"`
	TotalPrice     string                   `json:"total_price"`
	GeneratedAt    string                   `json:"generated_at"`
	ProductImage   string                   `json:"product_image,omitempty"`
	DimensionImage string                   `json:"dimension_image,omitempty"`
	Variants       []PayloadVariant         `json:"variants"`
	Sections       []PayloadSection         `json:"sections"`
	Specifications []map[string]interface{} `json:"specifications,omitempty"`
	Certifications []PayloadAsset           `json:"certifications,omitempty"`
}

// PayloadAsset 渲染载荷中的认证/资源条目
type PayloadAsset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PayloadVariant 渲染载荷中的档位行，携带全部档位供模板绘制对照表
type PayloadVariant struct {
	Name           string `json:"name"`
	PartCodeSuffix string `json:"part_code_suffix"`
	SystemOutput   string `json:"system_output,omitempty"`
	SystemPower    string `json:"system_power,omitempty"`
	Efficiency     string `json:"efficiency,omitempty"`
	BasePrice      string `json:"base_price"`
	Selected       bool   `json:"selected"`
}

// PayloadSection 渲染载荷中的分组条目
type PayloadSection struct {
	Title string       `json:"title"`
	Rows  []PayloadRow `json:"rows"`
}

// PayloadRow 渲染载荷中的单行
type PayloadRow struct {
	Label          string `json:"label"`
	Value          string `json:"value"`
	Price          string `json:"price,omitempty"`
	PartCodeSuffix string `json:"part_code_suffix,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

// Client 渲染服务客户端
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient 创建渲染客户端
func NewClient(cfg Config) (*Client, error) {
	cfg.normalize()
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
	}, nil
}

// Render 提交渲染请求并返回 PDF 字节流
func (c *Client) Render(ctx context.Context, payload Payload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	endpoint := c.cfg.BaseURL + "/api/v1/render/datasheet"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")
	if c.cfg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrResponseInvalid)
	}
	return pdf, nil
}
