package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/zt15864126114/mksxk/config"
)

var (
	// ErrTokenExpired 令牌已过期
	ErrTokenExpired = errors.New("令牌已过期")
	// ErrTokenInvalid 令牌无效（签名错误或格式错误）
	ErrTokenInvalid = errors.New("无效的令牌")
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(adminID uint, username string) (string, error)
	ParseToken(tokenString string) (*AdminClaims, error)
}

// AdminClaims 定义JWT令牌的声明结构
type AdminClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	expires   time.Duration
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	hours := cfg.JWTExpiresHours
	if hours == 0 {
		hours = 24
	}
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "mksxk",
		expires:   time.Duration(hours) * time.Hour,
	}
}

// GenerateToken 生成JWT令牌，无服务端会话，过期后需重新登录
func (s *JWTService) GenerateToken(adminID uint, username string) (string, error) {
	now := time.Now()

	claims := &AdminClaims{
		ID:       adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expires)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseToken 验证JWT令牌并提取声明
func (s *JWTService) ParseToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
