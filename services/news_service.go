package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
)

// ErrNewsNotFound 新闻不存在
var ErrNewsNotFound = errors.New("新闻不存在")

// NewsListQuery 新闻列表查询条件
type NewsListQuery struct {
	Page     int
	PageSize int
	Type     string // 类型等值过滤
	Keyword  string // 标题/内容模糊匹配
	IsAdmin  bool   // 管理端可见全部状态
}

// InterfaceNewsService 定义新闻服务接口
type InterfaceNewsService interface {
	ListNews(q NewsListQuery) ([]models.News, int64, error)
	GetNewsByID(id uint, isAdmin bool) (*models.News, error)
	CreateNews(news *models.News) error
	UpdateNews(id uint, updates map[string]interface{}) (*models.News, error)
	DeleteNews(id uint) error
}

// NewsService 提供新闻相关的服务
type NewsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNewsService 创建一个新的新闻服务
func NewNewsService(db *gorm.DB, cfg *config.Config) InterfaceNewsService {
	return &NewsService{
		DB:     db,
		Config: cfg,
	}
}

// ListNews 分页获取新闻列表，按创建时间降序排列
func (s *NewsService) ListNews(q NewsListQuery) ([]models.News, int64, error) {
	var news []models.News
	var total int64

	query := s.DB.Model(&models.News{})
	if !q.IsAdmin {
		query = query.Where("status = ?", models.NewsStatusPublished)
	}
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	if q.Keyword != "" {
		keyword := "%" + q.Keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	if err := query.Order("create_time DESC").Limit(q.PageSize).Offset(offset).Find(&news).Error; err != nil {
		return nil, 0, err
	}

	return news, total, nil
}

// GetNewsByID 根据ID获取新闻，非管理端仅可见已发布新闻
func (s *NewsService) GetNewsByID(id uint, isAdmin bool) (*models.News, error) {
	var news models.News
	query := s.DB.Where("id = ?", id)
	if !isAdmin {
		query = query.Where("status = ?", models.NewsStatusPublished)
	}
	if err := query.First(&news).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

// CreateNews 创建新闻
func (s *NewsService) CreateNews(news *models.News) error {
	if news.Status == 0 {
		news.Status = models.NewsStatusPublished
	}
	return s.DB.Create(news).Error
}

// UpdateNews 局部更新新闻，只重写传入的字段，字段集为空时不发出SQL
func (s *NewsService) UpdateNews(id uint, updates map[string]interface{}) (*models.News, error) {
	news, err := s.GetNewsByID(id, true)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return news, nil
	}

	if err := s.DB.Model(news).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetNewsByID(id, true)
}

// DeleteNews 删除新闻。为逻辑删除：status 置 0，记录保留，
// 公开列表和详情不再可见。与产品的物理删除是刻意保留的差异。
func (s *NewsService) DeleteNews(id uint) error {
	news, err := s.GetNewsByID(id, true)
	if err != nil {
		return err
	}
	return s.DB.Model(news).Update("status", models.NewsStatusHidden).Error
}
