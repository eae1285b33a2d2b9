package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
)

// ErrMessageNotFound 留言不存在
var ErrMessageNotFound = errors.New("留言不存在")

// MessageListQuery 留言列表查询条件
type MessageListQuery struct {
	Page     int
	PageSize int
	Status   string // 状态等值过滤，空串表示不过滤
	Keyword  string // 姓名/电话/内容模糊匹配
}

// InterfaceMessageService 定义留言服务接口
type InterfaceMessageService interface {
	ListMessages(q MessageListQuery) ([]models.Message, int64, error)
	GetMessageByID(id uint) (*models.Message, error)
	CreateMessage(message *models.Message) error
	UpdateMessage(id uint, updates map[string]interface{}) (*models.Message, error)
	DeleteMessage(id uint) error
}

// MessageService 提供留言相关的服务
type MessageService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMessageService 创建一个新的留言服务
func NewMessageService(db *gorm.DB, cfg *config.Config) InterfaceMessageService {
	return &MessageService{
		DB:     db,
		Config: cfg,
	}
}

// ListMessages 分页获取留言列表，按创建时间降序排列，无可见性限制
func (s *MessageService) ListMessages(q MessageListQuery) ([]models.Message, int64, error) {
	var messages []models.Message
	var total int64

	query := s.DB.Model(&models.Message{})
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Keyword != "" {
		keyword := "%" + q.Keyword + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR content LIKE ?", keyword, keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	if err := query.Order("create_time DESC").Limit(q.PageSize).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// GetMessageByID 根据ID获取留言
func (s *MessageService) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := s.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// CreateMessage 创建留言，由访客匿名提交，初始状态为待处理
func (s *MessageService) CreateMessage(message *models.Message) error {
	message.Status = models.MessageStatusPending
	return s.DB.Create(message).Error
}

// UpdateMessage 局部更新留言（状态、回复），字段集为空时不发出SQL
func (s *MessageService) UpdateMessage(id uint, updates map[string]interface{}) (*models.Message, error) {
	message, err := s.GetMessageByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return message, nil
	}

	if err := s.DB.Model(message).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetMessageByID(id)
}

// DeleteMessage 物理删除留言
func (s *MessageService) DeleteMessage(id uint) error {
	message, err := s.GetMessageByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(message).Error
}
