package public

import (
	"strconv"

	handlershared "github.com/lumicfg/internal/http/handlers/shared"
	"github.com/lumicfg/internal/http/response"
	"github.com/lumicfg/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCategories 产品分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	items, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, items)
}

// ListProducts 产品列表，支持按分类 slug 过滤与关键字搜索
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	slug := c.Param("slug")
	if slug == "" {
		slug = c.Query("category")
	}
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategorySlug: slug,
		Search:       c.Query("search"),
	}
	products, total, err := h.CatalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProduct 产品配置目录详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	product, err := h.CatalogService.GetProductDetail(c.Request.Context(), uint(id))
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}
