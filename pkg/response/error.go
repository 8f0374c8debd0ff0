package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError 业务错误，Code 即 HTTP 状态码
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
	})
}

// Recovery 兜底 panic，返回统一的 500 结构
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		Abort(c, http.StatusInternalServerError, "Internal server error.")
	})
}
