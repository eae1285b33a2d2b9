package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zt15864126114/mksxk/internal/error/code"
)

// Response 定义统一的响应格式
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.Success,
		Message: code.GetMessage(code.Success),
		Data:    data,
	})
}

// SuccessWithMessage 成功响应（自定义消息）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.Success,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: code.GetMessage(errorCode),
	})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
	})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrBadRequest)
	}
	FailWithMessage(c, code.ErrBadRequest, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrNotFound)
	}
	FailWithMessage(c, code.ErrNotFound, message)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrUnauthorized)
	}
	FailWithMessage(c, code.ErrUnauthorized, message)
}

// ServerError 服务器错误响应，内部细节只记录日志不下发
func ServerError(c *gin.Context) {
	Fail(c, code.ErrInternal)
}
