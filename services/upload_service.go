package services

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
	"github.com/zt15864126114/mksxk/utils"
)

// MaxUploadSize 上传文件大小上限
const MaxUploadSize = 5 << 20 // 5 MiB

var (
	// ErrUnsupportedFileType 不支持的文件类型
	ErrUnsupportedFileType = errors.New("只允许上传图片文件")
	// ErrFileTooLarge 文件超出大小限制
	ErrFileTooLarge = errors.New("文件大小不能超过5MB")
)

// 允许的图片类型及兜底扩展名
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// InterfaceUploadService 定义上传服务接口
type InterfaceUploadService interface {
	SaveImage(file *multipart.FileHeader) (string, error)
	DeleteImage(filename string) error
}

// UploadService 提供图片上传相关的服务
type UploadService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUploadService 创建一个新的上传服务
func NewUploadService(db *gorm.DB, cfg *config.Config) InterfaceUploadService {
	return &UploadService{
		DB:     db,
		Config: cfg,
	}
}

// SaveImage 保存上传的图片并返回相对URL。
// 仅接受 jpeg/png/gif，大小不超过 5MiB。
func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	fallbackExt, ok := allowedImageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedFileType
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = fallbackExt
	}

	if err := os.MkdirAll(s.Config.UploadDir, 0755); err != nil {
		return "", err
	}

	name := utils.UploadFileName(ext)
	dst, err := os.Create(filepath.Join(s.Config.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// DeleteImage 删除已上传的图片。文件不存在不算失败（幂等删除）。
// 随后尽力清理 image 字段恰好等于该URL的产品记录，
// 逗号拼接的多图字段不会被自动清理，需调用方自行重存。
// 数据库清理失败不影响删除结果。
func (s *UploadService) DeleteImage(filename string) error {
	name := filepath.Base(strings.TrimPrefix(strings.TrimPrefix(filename, "/"), "uploads/"))
	if name == "" || name == "." {
		return nil
	}

	path := filepath.Join(s.Config.UploadDir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	imageURL := "/uploads/" + name
	tx := s.DB.Begin()
	if tx.Error != nil {
		config.Warning("清理图片引用失败，跳过: %v", tx.Error)
		return nil
	}
	if err := tx.Model(&models.Product{}).Where("image = ?", imageURL).Update("image", "").Error; err != nil {
		tx.Rollback()
		config.Warning("清理图片引用失败，已回滚: %v", err)
		return nil
	}
	if err := tx.Commit().Error; err != nil {
		config.Warning("清理图片引用提交失败: %v", err)
	}
	return nil
}
