package models

import "time"

// 管理员状态
const (
	AdminStatusDisabled = 0 // 禁用
	AdminStatusActive   = 1 // 正常
)

// Admin 管理员账号
type Admin struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"type:varchar(100);not null" json:"-"` // bcrypt哈希，不下发
	RealName   string    `gorm:"type:varchar(50);column:real_name" json:"real_name"`
	Status     int       `gorm:"type:tinyint;default:1" json:"status"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
