package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
	"github.com/zt15864126114/mksxk/utils"
)

var (
	// ErrInvalidCredentials 用户名不存在或密码错误统一返回该错误，不向外区分
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrAdminDisabled 账号被禁用
	ErrAdminDisabled = errors.New("账号已被禁用")
	// ErrAdminNotFound 管理员不存在
	ErrAdminNotFound = errors.New("用户不存在")
	// ErrWrongOldPassword 旧密码校验失败
	ErrWrongOldPassword = errors.New("旧密码错误")
)

// InterfaceAdminService 定义管理员服务接口
type InterfaceAdminService interface {
	Login(username, password string) (string, *models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	ChangePassword(id uint, oldPassword, newPassword string) error
}

// AdminService 提供管理员相关的服务
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
	jwt    InterfaceJWTService
}

// NewAdminService 创建一个新的管理员服务
func NewAdminService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
		jwt:    jwtService,
	}
}

// Login 校验用户名密码，成功后签发令牌
func (s *AdminService) Login(username, password string) (string, *models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return "", nil, ErrInvalidCredentials
	}

	if admin.Status != models.AdminStatusActive {
		return "", nil, ErrAdminDisabled
	}

	token, err := s.jwt.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// GetAdminByID 根据ID获取管理员
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// ChangePassword 修改密码，先校验旧密码再写入新哈希
func (s *AdminService) ChangePassword(id uint, oldPassword, newPassword string) error {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(oldPassword, admin.Password) {
		return ErrWrongOldPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(admin).Update("password", hashed).Error
}
