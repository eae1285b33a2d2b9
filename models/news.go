package models

import "time"

// 新闻状态
const (
	NewsStatusHidden    = 0 // 未发布（含逻辑删除）
	NewsStatusPublished = 1 // 已发布
)

// News 新闻动态。删除为逻辑删除（status 置 0），与产品的物理删除不同。
type News struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	Content    string    `gorm:"type:longtext;not null" json:"content"`
	Image      string    `gorm:"type:varchar(500)" json:"image"` // 逗号拼接的多图URL串
	Type       string    `gorm:"type:varchar(50);not null" json:"type"`
	Status     int       `gorm:"type:tinyint;default:1" json:"status"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

// TableName 指定表名
func (News) TableName() string {
	return "news"
}
