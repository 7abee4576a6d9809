package models

// OrderItem 订单项表
// 不保存价格快照，报表时按商品表实时关联。
type OrderItem struct {
	ItemID    uint `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"` // 主键
	OrderID   uint `gorm:"column:order_id" json:"order_id"`                        // 订单ID
	ProductID uint `gorm:"column:product_id" json:"product_id"`                    // 商品ID
	Quantity  int  `gorm:"column:quantity;not null" json:"quantity"`               // 数量
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
