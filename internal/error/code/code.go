package code

// 业务码与HTTP状态码保持一致，前端以响应体中的 code 字段为准.
const (
	// Success - 200: 成功.
	Success = 200
	// ErrBadRequest - 400: 请求参数错误.
	ErrBadRequest = 400
	// ErrUnauthorized - 401: 未授权.
	ErrUnauthorized = 401
	// ErrForbidden - 403: 禁止访问.
	ErrForbidden = 403
	// ErrNotFound - 404: 资源不存在.
	ErrNotFound = 404
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests = 429
	// ErrInternal - 500: 服务器内部错误.
	ErrInternal = 500
)
