package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
	"github.com/zt15864126114/mksxk/routes"
	"github.com/zt15864126114/mksxk/utils"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，环境变量可能已通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	db, err := initDB(cfg)
	if err != nil {
		config.Error("无法连接数据库: %v", err)
		os.Exit(1)
	}

	// 自动迁移，只添加新列和新表
	if err := autoMigrate(db); err != nil {
		config.Error("自动迁移失败: %v", err)
		os.Exit(1)
	}

	// 确保系统中有管理员账户
	ensureAdminExists(db, cfg)

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// initDB 初始化数据库连接
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	config.Info("数据库连接成功")
	return db, nil
}

// autoMigrate 自动迁移所有模型
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.News{},
		&models.Message{},
	)
}

// ensureAdminExists 确保系统中至少有一个管理员账户
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		hashedPassword, err := utils.HashPassword(cfg.DefaultAdminPassword)
		if err != nil {
			config.Error("无法为默认管理员哈希密码: %v", err)
			return
		}

		admin := models.Admin{
			Username: "admin",
			Password: hashedPassword,
			RealName: "系统管理员",
			Status:   models.AdminStatusActive,
		}

		if err := db.Create(&admin).Error; err != nil {
			config.Error("无法创建默认管理员: %v", err)
			return
		}

		config.Info("已创建默认管理员账户 (用户名: admin)")
	}
}
