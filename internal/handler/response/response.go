package response

import (
	"net/http"

	"hdkey-core/pkg/errno"
	"hdkey-core/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应体，业务错误通过 code 区分，HTTP 状态码始终为 200
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"msg"`
	Data    interface{} `json:"data"`
}

func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, Response{
		Code:    errno.OK.Code,
		Message: errno.OK.Message,
		Data:    data,
	})
}

// Error 把 err 解码为 errno 响应。
// 密钥构造失败的 msg 是底层库的原始错误文本。
func Error(c *gin.Context, err error) {
	code, msg := errno.Decode(err)

	fields := []zap.Field{
		logger.Errno(code),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	}
	if id := c.Param("id"); id != "" {
		fields = append(fields, logger.Handle(id))
	}
	if code == errno.InternalServerError.Code {
		logger.Error(msg, append(fields, zap.Error(err))...)
	} else {
		logger.Warn(msg, fields...)
	}

	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: msg,
		Data:    gin.H{},
	})
}
