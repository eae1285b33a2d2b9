package config

import (
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort string

	// JWT Authentication
	JWTSecretKey    string
	JWTExpiresHours int // 令牌有效期（小时）

	// Admin
	DefaultAdminPassword string

	// Upload
	UploadDir string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	return &Config{
		// Database config
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "maxxinke"),
		DBPort:     getEnv("DB_PORT", "3306"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "3002"),

		// JWT config
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", "mksxk-secret-key-change-in-production"),
		JWTExpiresHours: getEnvAsInt("JWT_EXPIRES_HOURS", 24),

		// Admin config
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),

		// Upload config
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
