package models

import "time"

// 留言状态
const (
	MessageStatusPending = 0 // 待处理
	MessageStatusReplied = 1 // 已回复
)

// Message 网站访客留言，由联系表单匿名提交，仅管理员可查看和处理
type Message struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(50);not null" json:"name"`
	Phone      string     `gorm:"type:varchar(20);not null" json:"phone"`
	Email      string     `gorm:"type:varchar(100)" json:"email"`
	Company    string     `gorm:"type:varchar(100)" json:"company"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Status     int        `gorm:"type:tinyint;default:0" json:"status"`
	Reply      string     `gorm:"type:text" json:"reply"`
	ReplyTime  *time.Time `gorm:"column:reply_time" json:"reply_time"`
	CreateTime time.Time  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}
