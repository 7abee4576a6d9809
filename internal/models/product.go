package models

import "strings"

// Product 商品表
type Product struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"` // 主键
	Name        string  `gorm:"column:name;not null" json:"name"`             // 名称
	Description *string `gorm:"column:description" json:"description"`        // 描述（可空）
	Price       Money   `gorm:"column:price;not null" json:"price"`           // 单价
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// DescriptionText 返回描述文本，NULL 视为空串
func (p Product) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// OptionalText 空白文本转为 NULL
func OptionalText(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
