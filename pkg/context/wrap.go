package context

import (
	"errors"
	"net/http"

	"Worklog/pkg/log"
	"Worklog/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerFunc func(*gin.Context) error

// Wrap 把返回 error 的 handler 转成 gin.HandlerFunc，BizError 按其 Code 输出
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("unhandled handler error",
				zap.String("path", c.FullPath()), zap.Error(err))
			response.Fail(c, http.StatusInternalServerError, "Internal server error.")
		}
	}
}
