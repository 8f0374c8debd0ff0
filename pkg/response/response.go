package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应体
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"message"`
}

// Success 直接返回数据本身
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{
		Code: code,
		Msg:  msg,
	})
}
