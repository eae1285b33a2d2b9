package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/services"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService services.InterfaceJWTService

	// 业务服务
	adminService   services.InterfaceAdminService
	productService services.InterfaceProductService
	newsService    services.InterfaceNewsService
	messageService services.InterfaceMessageService
	uploadService  services.InterfaceUploadService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}
	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.db, c.config, c.jwtService)
	c.productService = services.NewProductService(c.db, c.config)
	c.newsService = services.NewNewsService(c.db, c.config)
	c.messageService = services.NewMessageService(c.db, c.config)
	c.uploadService = services.NewUploadService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "admin":
		return c.adminService
	case "product":
		return c.productService
	case "news":
		return c.newsService
	case "message":
		return c.messageService
	case "upload":
		return c.uploadService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
