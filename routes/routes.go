package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/controllers"
	"github.com/zt15864126114/mksxk/middleware"
	"github.com/zt15864126114/mksxk/services/container"
)

// 允许跨域的前端来源：前台 3000，后台 3001
var allowedOrigins = map[string]bool{
	"http://localhost:3000": true,
	"http://localhost:3001": true,
}

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowedOrigins[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 上传文件静态服务
	r.Static("/uploads", cfg.UploadDir)

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化认证中间件
	middleware.InitAuthMiddleware(cfg)

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	// 健康检查
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 管理员登录
	api.POST("/admin/login", controllers.HandleAdminFunc(container, "login"))

	// 产品公开接口
	api.GET("/products", controllers.HandleProductFunc(container, "getProducts"))
	api.GET("/products/:id", controllers.HandleProductFunc(container, "getProduct"))

	// 新闻公开接口
	api.GET("/news", controllers.HandleNewsFunc(container, "getNews"))
	api.GET("/news/:id", controllers.HandleNewsFunc(container, "getNewsItem"))

	// 访客留言提交，按IP限流
	api.POST("/messages",
		middleware.RateLimitByIP(middleware.DefaultRateLimiterConfig),
		controllers.HandleMessageFunc(container, "createMessage"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 管理员路由
	auth.POST("/admin/change-password", controllers.HandleAdminFunc(container, "changePassword"))

	// 产品管理路由
	auth.POST("/products", controllers.HandleProductFunc(container, "createProduct"))
	auth.PUT("/products/:id", controllers.HandleProductFunc(container, "updateProduct"))
	auth.DELETE("/products/:id", controllers.HandleProductFunc(container, "deleteProduct"))

	// 新闻管理路由
	auth.POST("/news", controllers.HandleNewsFunc(container, "createNews"))
	auth.PUT("/news/:id", controllers.HandleNewsFunc(container, "updateNews"))
	auth.DELETE("/news/:id", controllers.HandleNewsFunc(container, "deleteNews"))

	// 留言管理路由，更新同时挂载 PUT 和 PATCH 以兼容两种客户端
	auth.GET("/messages", controllers.HandleMessageFunc(container, "getMessages"))
	auth.GET("/messages/:id", controllers.HandleMessageFunc(container, "getMessage"))
	auth.PUT("/messages/:id", controllers.HandleMessageFunc(container, "updateMessage"))
	auth.PATCH("/messages/:id", controllers.HandleMessageFunc(container, "updateMessage"))
	auth.DELETE("/messages/:id", controllers.HandleMessageFunc(container, "deleteMessage"))

	// 图片上传路由
	auth.POST("/upload", controllers.HandleUploadFunc(container, "uploadImage"))
	auth.DELETE("/upload/:filename", controllers.HandleUploadFunc(container, "deleteImage"))
}
