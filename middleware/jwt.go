package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/internal/error/code"
	"github.com/zt15864126114/mksxk/internal/error/response"
	"github.com/zt15864126114/mksxk/services"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token，兼容不带 Bearer 前缀的旧客户端
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin 验证管理员令牌，校验通过后将管理员身份写入上下文
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "未授权，请先登录")
			c.Abort()
			return
		}

		claims, err := jwtService.ParseToken(extractToken(authHeader))
		if err != nil {
			if err == services.ErrTokenExpired {
				response.Unauthorized(c, "登录已过期，请重新登录")
			} else {
				response.FailWithMessage(c, code.ErrUnauthorized, "无效的token")
			}
			c.Abort()
			return
		}

		c.Set("adminID", claims.ID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
