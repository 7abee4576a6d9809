package service

import (
	"strconv"
	"strings"

	"github.com/marcenaria-picapau/internal/models"
)

// DraftLineItem 草稿订单项
// 名称与单价在加入时快照，之后商品改价不影响草稿。
type DraftLineItem struct {
	ProductID   uint
	ProductName string
	UnitPrice   models.Money
	Quantity    int
}

// Subtotal 单价 × 数量，始终实时计算
func (i DraftLineItem) Subtotal() models.Money {
	return i.UnitPrice.Times(i.Quantity)
}

// OrderDraft 未提交的订单，由调用方会话持有
type OrderDraft struct {
	ClientName string
	items      []DraftLineItem
}

// NewOrderDraft 创建草稿
func NewOrderDraft(clientName string) *OrderDraft {
	return &OrderDraft{ClientName: clientName}
}

// Add 追加订单项
// 同一商品重复加入会生成独立的两行，不合并数量。
func (d *OrderDraft) Add(product *models.Product, quantity int) error {
	if quantity <= 0 {
		return validationError("quantity must be greater than zero, got %d", quantity)
	}
	if product == nil {
		return validationError("product is required")
	}
	d.items = append(d.items, DraftLineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	})
	return nil
}

// Items 返回订单项副本
func (d *OrderDraft) Items() []DraftLineItem {
	out := make([]DraftLineItem, len(d.items))
	copy(out, d.items)
	return out
}

// Len 订单项数量
func (d *OrderDraft) Len() int {
	return len(d.items)
}

// Total 各行小计之和
func (d *OrderDraft) Total() models.Money {
	total := models.Money{}
	for _, item := range d.items {
		total = total.Plus(item.Subtotal())
	}
	return total
}

// Clear 重置为空草稿
func (d *OrderDraft) Clear() {
	d.ClientName = ""
	d.items = nil
}

// ParseQuantity 解析界面输入的数量
func ParseQuantity(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	quantity, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, validationError("quantity %q is not a whole number", trimmed)
	}
	if quantity <= 0 {
		return 0, validationError("quantity must be greater than zero, got %d", quantity)
	}
	return quantity, nil
}
