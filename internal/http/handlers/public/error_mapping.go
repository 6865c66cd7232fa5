package public

import (
	"errors"

	"github.com/lumicfg/internal/configurator"
	"github.com/lumicfg/internal/http/response"
	"github.com/lumicfg/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var selectionErrorRules = []mappedHandlerError{
	{target: configurator.ErrIncompleteSelection, code: response.CodeBadRequest, key: "error.selection_incomplete"},
	{target: configurator.ErrVariantUnknown, code: response.CodeBadRequest, key: "error.variant_invalid"},
	{target: configurator.ErrCategoryUnknown, code: response.CodeBadRequest, key: "error.option_invalid"},
	{target: configurator.ErrOptionUnknown, code: response.CodeBadRequest, key: "error.option_invalid"},
	{target: configurator.ErrAccessoryUnknown, code: response.CodeBadRequest, key: "error.accessory_invalid"},
	{target: configurator.ErrFeatureUnknown, code: response.CodeBadRequest, key: "error.feature_invalid"},
	{target: configurator.ErrFeatureFixed, code: response.CodeBadRequest, key: "error.feature_invalid"},
	{target: configurator.ErrFeatureValueInvalid, code: response.CodeBadRequest, key: "error.feature_value_invalid"},
	{target: configurator.ErrFeatureNotCustom, code: response.CodeBadRequest, key: "error.custom_text_invalid"},
}

var configurationErrorRules = []mappedHandlerError{
	{target: service.ErrConfigurationNotFound, code: response.CodeNotFound, key: "error.configuration_not_found"},
}

var datasheetErrorRules = []mappedHandlerError{
	{target: service.ErrRendererNotConfigured, code: response.CodeInternal, key: "error.datasheet_unavailable"},
	{target: service.ErrRendererUnavailable, code: response.CodeInternal, key: "error.datasheet_unavailable"},
}
