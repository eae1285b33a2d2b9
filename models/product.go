package models

import "time"

// 产品状态
const (
	ProductStatusHidden = 0 // 下架
	ProductStatusActive = 1 // 上架
)

// Product 产品信息。image 为逗号拼接的多图相对URL串，
// specification 为按行分隔的 "名称:值" 规格串，调用方负责拆装。
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Category      string    `gorm:"type:varchar(50);not null" json:"category"`
	Description   string    `gorm:"type:text" json:"description"`
	Specification string    `gorm:"type:text" json:"specification"`
	Application   string    `gorm:"type:text" json:"application"`
	Image         string    `gorm:"type:varchar(500)" json:"image"`
	Sort          int       `gorm:"default:0" json:"sort"` // 展示排序，越大越靠前
	Status        int       `gorm:"type:tinyint;default:1" json:"status"`
	CreateTime    time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime    time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

// TableName 指定表名，沿用线上单数表名
func (Product) TableName() string {
	return "product"
}
