package code

import "net/http"

// 默认提示信息
var messages = map[int]string{
	Success:            "success",
	ErrBadRequest:      "请求参数错误",
	ErrUnauthorized:    "未授权，请先登录",
	ErrForbidden:       "禁止访问",
	ErrNotFound:        "资源不存在",
	ErrTooManyRequests: "请求过于频繁，请稍后重试",
	ErrInternal:        "服务器内部错误",
}

// GetMessage 获取业务码对应的默认提示信息
func GetMessage(c int) string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return messages[ErrInternal]
}

// GetStatus 获取业务码对应的HTTP状态码
func GetStatus(c int) int {
	switch c {
	case Success:
		return http.StatusOK
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
