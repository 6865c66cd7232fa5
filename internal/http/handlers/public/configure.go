package public

import (
	"strconv"

	handlershared "github.com/lumicfg/internal/http/handlers/shared"
	"github.com/lumicfg/internal/http/response"
	"github.com/lumicfg/internal/repository"
	"github.com/lumicfg/internal/service"

	"github.com/gin-gonic/gin"
)

var quoteErrorRules = concatMappedHandlerErrors(catalogErrorRules, selectionErrorRules)

// Quote 服务端报价：提交完整选择状态，返回总价、型号编码与摘要
func (h *Handler) Quote(c *gin.Context) {
	var input service.SelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	quote, err := h.ConfigurationService.Quote(c.Request.Context(), input)
	if err != nil {
		respondWithMappedError(c, err, quoteErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, quote)
}

// SaveConfiguration 保存配置（服务端重新推导后落库）
func (h *Handler) SaveConfiguration(c *gin.Context) {
	var input service.SaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	saved, err := h.ConfigurationService.Save(c.Request.Context(), input)
	if err != nil {
		respondWithMappedError(c, err, quoteErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, saved)
}

// ListConfigurations 已保存配置列表
func (h *Handler) ListConfigurations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)

	items, total, err := h.ConfigurationService.List(c.Request.Context(), repository.UserConfigurationListFilter{
		Page:      page,
		PageSize:  pageSize,
		ProductID: uint(productID),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, items, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetConfiguration 已保存配置详情
func (h *Handler) GetConfiguration(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	configuration, err := h.ConfigurationService.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondWithMappedError(c, err, configurationErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, configuration)
}
