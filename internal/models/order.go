package models

// Order 订单表
// total 在提交时固定，之后不再重算；status 是创建后唯一可变字段。
type Order struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`   // 主键
	ClientName string `gorm:"column:client_name;not null" json:"client_name"` // 客户名称
	OrderDate  string `gorm:"column:order_date;not null" json:"order_date"`   // 下单日期（YYYY-MM-DD）
	Status     string `gorm:"column:status;not null" json:"status"`           // 订单状态
	Total      Money  `gorm:"column:total;not null" json:"total"`             // 提交时总额

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
