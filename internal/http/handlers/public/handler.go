package public

import (
	handlershared "github.com/lumicfg/internal/http/handlers/shared"
	"github.com/lumicfg/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 前台/公开接口处理器入口
// 说明：目录浏览、配置报价与数据表接口都挂在这里，无需登录。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}
