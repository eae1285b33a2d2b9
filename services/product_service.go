package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
)

// ErrProductNotFound 产品不存在
var ErrProductNotFound = errors.New("产品不存在")

// ProductListQuery 产品列表查询条件
type ProductListQuery struct {
	Page     int
	PageSize int
	Category string // 分类等值过滤
	Keyword  string // 名称/描述模糊匹配
	IsAdmin  bool   // 管理端可见全部状态
}

// InterfaceProductService 定义产品服务接口
type InterfaceProductService interface {
	ListProducts(q ProductListQuery) ([]models.Product, int64, error)
	GetProductByID(id uint, isAdmin bool) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(id uint) error
}

// ProductService 提供产品相关的服务
type ProductService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewProductService 创建一个新的产品服务
func NewProductService(db *gorm.DB, cfg *config.Config) InterfaceProductService {
	return &ProductService{
		DB:     db,
		Config: cfg,
	}
}

// ListProducts 分页获取产品列表，按 sort 降序、id 降序排列。
// total 与 list 使用同一组过滤条件，翻页不影响 total。
func (s *ProductService) ListProducts(q ProductListQuery) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := s.DB.Model(&models.Product{})
	if !q.IsAdmin {
		query = query.Where("status = ?", models.ProductStatusActive)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Keyword != "" {
		keyword := "%" + q.Keyword + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	if err := query.Order("sort DESC, id DESC").Limit(q.PageSize).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetProductByID 根据ID获取产品，非管理端仅可见上架产品
func (s *ProductService) GetProductByID(id uint, isAdmin bool) (*models.Product, error) {
	var product models.Product
	query := s.DB.Where("id = ?", id)
	if !isAdmin {
		query = query.Where("status = ?", models.ProductStatusActive)
	}
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct 创建新产品
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Status == 0 {
		product.Status = models.ProductStatusActive
	}
	return s.DB.Create(product).Error
}

// UpdateProduct 局部更新产品，只重写传入的字段。
// 字段集为空时不发出SQL，直接返回当前记录。
func (s *ProductService) UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error) {
	product, err := s.GetProductByID(id, true)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return product, nil
	}

	if err := s.DB.Model(product).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProductByID(id, true)
}

// DeleteProduct 删除产品，管理端为物理删除
func (s *ProductService) DeleteProduct(id uint) error {
	if _, err := s.GetProductByID(id, true); err != nil {
		return err
	}
	return s.DB.Delete(&models.Product{}, id).Error
}
