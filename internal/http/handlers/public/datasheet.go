package public

import (
	"net/http"

	"github.com/lumicfg/internal/http/response"
	"github.com/lumicfg/internal/service"

	"github.com/gin-gonic/gin"
)

var datasheetGenerateErrorRules = concatMappedHandlerErrors(catalogErrorRules, selectionErrorRules, datasheetErrorRules)

// GenerateDatasheet 按当前选择同步生成数据表 PDF
func (h *Handler) GenerateDatasheet(c *gin.Context) {
	var input service.SelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	pdf, err := h.DatasheetService.Generate(c.Request.Context(), input)
	if err != nil {
		respondWithMappedError(c, err, datasheetGenerateErrorRules, response.CodeInternal, "error.internal")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="datasheet.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
