// Package i18n 提供接口错误消息的多语言文案。
// 文案按 key 组织，缺失的 key 回退到英文，再回退到 key 本身。
package i18n

import (
	"fmt"
	"strings"

	"github.com/lumicfg/internal/constants"

	"github.com/gin-gonic/gin"
)

var messages = map[string]map[string]string{
	constants.LocaleZhCN: {
		"error.bad_request":             "请求参数错误",
		"error.not_found":               "资源不存在",
		"error.internal":                "服务器内部错误",
		"error.category_not_found":      "产品分类不存在",
		"error.product_not_found":       "产品不存在",
		"error.configuration_not_found": "配置记录不存在",
		"error.variant_invalid":         "功率档位无效",
		"error.option_invalid":          "配置选项无效",
		"error.accessory_invalid":       "配件无效",
		"error.feature_invalid":         "特性无效",
		"error.feature_value_invalid":   "特性取值无效",
		"error.custom_text_invalid":     "自定义文本无效",
		"error.selection_incomplete":    "配置不完整，无法生成报价",
		"error.datasheet_unavailable":   "数据表服务暂时不可用",
		"error.rate_limited":            "请求过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable":  "限流服务暂时不可用",
	},
	constants.LocaleZhTW: {
		"error.bad_request":             "請求參數錯誤",
		"error.not_found":               "資源不存在",
		"error.internal":                "伺服器內部錯誤",
		"error.category_not_found":      "產品分類不存在",
		"error.product_not_found":       "產品不存在",
		"error.configuration_not_found": "配置記錄不存在",
		"error.variant_invalid":         "功率檔位無效",
		"error.option_invalid":          "配置選項無效",
		"error.accessory_invalid":       "配件無效",
		"error.feature_invalid":         "特性無效",
		"error.feature_value_invalid":   "特性取值無效",
		"error.custom_text_invalid":     "自訂文字無效",
		"error.selection_incomplete":    "配置不完整，無法產生報價",
		"error.datasheet_unavailable":   "資料表服務暫時不可用",
		"error.rate_limited":            "請求過於頻繁，請 %d 秒後再試",
		"error.rate_limit_unavailable":  "限流服務暫時不可用",
	},
	constants.LocaleEnUS: {
		"error.bad_request":             "Invalid request parameters",
		"error.not_found":               "Resource not found",
		"error.internal":                "Internal server error",
		"error.category_not_found":      "Product category not found",
		"error.product_not_found":       "Product not found",
		"error.configuration_not_found": "Configuration not found",
		"error.variant_invalid":         "Invalid variant",
		"error.option_invalid":          "Invalid configuration option",
		"error.accessory_invalid":       "Invalid accessory",
		"error.feature_invalid":         "Invalid feature",
		"error.feature_value_invalid":   "Invalid feature value",
		"error.custom_text_invalid":     "Invalid custom text",
		"error.selection_incomplete":    "Selection is incomplete, cannot derive a quote",
		"error.datasheet_unavailable":   "Datasheet service is temporarily unavailable",
		"error.rate_limited":            "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable":  "Rate limiter is temporarily unavailable",
	},
}

// ResolveLocale 解析请求语言：query 参数 locale 优先，其次 Accept-Language。
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleZhCN
	}
	if locale := normalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := normalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return constants.LocaleZhCN
}

func normalizeLocale(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	lower := strings.ToLower(tag)
	for _, locale := range constants.SupportedLocales {
		if lower == strings.ToLower(locale) {
			return locale
		}
	}
	switch {
	case strings.HasPrefix(lower, "zh-tw"), strings.HasPrefix(lower, "zh-hant"), strings.HasPrefix(lower, "zh-hk"):
		return constants.LocaleZhTW
	case strings.HasPrefix(lower, "zh"):
		return constants.LocaleZhCN
	case strings.HasPrefix(lower, "en"):
		return constants.LocaleEnUS
	}
	return ""
}

// T 返回指定语言的文案，缺失时回退英文再回退 key
func T(locale, key string) string {
	if msgs, ok := messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.LocaleEnUS][key]; ok {
		return msg
	}
	return key
}

// Sprintf 返回带格式化参数的文案
func Sprintf(locale, key string, args ...interface{}) string {
	if len(args) == 0 {
		return T(locale, key)
	}
	return fmt.Sprintf(T(locale, key), args...)
}
