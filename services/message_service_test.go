package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/models"
)

type MessageServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc InterfaceMessageService
}

func TestMessageServiceSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}

func (s *MessageServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewMessageService(s.db, newTestConfig(s.T()))
}

func (s *MessageServiceTestSuite) seedMessages() []models.Message {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	seed := []models.Message{
		{Name: "张三", Phone: "13800000001", Content: "咨询絮凝剂价格", Status: models.MessageStatusPending, CreateTime: base},
		{Name: "李四", Phone: "13800000002", Content: "需要产品样品", Status: models.MessageStatusReplied, CreateTime: base.Add(time.Hour)},
	}
	for i := range seed {
		require.NoError(s.T(), s.db.Create(&seed[i]).Error)
	}
	return seed
}

func (s *MessageServiceTestSuite) TestCreateStartsPending() {
	message := &models.Message{
		Name:    "王五",
		Phone:   "13800000003",
		Content: "请尽快联系我",
		Status:  models.MessageStatusReplied, // 外部传入的状态被忽略
	}
	require.NoError(s.T(), s.svc.CreateMessage(message))

	var got models.Message
	require.NoError(s.T(), s.db.First(&got, message.ID).Error)
	require.Equal(s.T(), models.MessageStatusPending, got.Status)
	require.Nil(s.T(), got.ReplyTime)
}

func (s *MessageServiceTestSuite) TestListOrderAndFilters() {
	s.seedMessages()

	messages, total, err := s.svc.ListMessages(MessageListQuery{Page: 1, PageSize: 10})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 2, total)
	require.Equal(s.T(), "李四", messages[0].Name) // 创建时间降序

	_, total, err = s.svc.ListMessages(MessageListQuery{Page: 1, PageSize: 10, Status: "0"})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1, total)

	_, total, err = s.svc.ListMessages(MessageListQuery{Page: 1, PageSize: 10, Keyword: "样品"})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1, total)
}

func (s *MessageServiceTestSuite) TestReplyStampsReplyTime() {
	seed := s.seedMessages()

	updated, err := s.svc.UpdateMessage(seed[0].ID, map[string]interface{}{
		"status":     models.MessageStatusReplied,
		"reply":      "已电话联系",
		"reply_time": time.Now(),
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.MessageStatusReplied, updated.Status)
	require.Equal(s.T(), "已电话联系", updated.Reply)
	require.NotNil(s.T(), updated.ReplyTime)
}

func (s *MessageServiceTestSuite) TestUpdateEmptyFieldSetIsNoop() {
	seed := s.seedMessages()

	var before models.Message
	require.NoError(s.T(), s.db.First(&before, seed[0].ID).Error)

	updated, err := s.svc.UpdateMessage(seed[0].ID, map[string]interface{}{})
	require.NoError(s.T(), err)
	require.True(s.T(), updated.UpdateTime.Equal(before.UpdateTime))
}

func (s *MessageServiceTestSuite) TestDeleteIsPhysical() {
	seed := s.seedMessages()

	require.NoError(s.T(), s.svc.DeleteMessage(seed[0].ID))

	var count int64
	require.NoError(s.T(), s.db.Model(&models.Message{}).Count(&count).Error)
	require.EqualValues(s.T(), 1, count)

	_, err := s.svc.GetMessageByID(seed[0].ID)
	require.ErrorIs(s.T(), err, ErrMessageNotFound)
}

func (s *MessageServiceTestSuite) TestDeleteNotFound() {
	err := s.svc.DeleteMessage(9999)
	require.ErrorIs(s.T(), err, ErrMessageNotFound)
}
