package repository

import (
	"github.com/marcenaria-picapau/internal/models"

	"gorm.io/gorm"
)

// ReportRepository 订单报表查询接口
// 说明：只读查询，商品名称与单价按商品表实时关联。
type ReportRepository interface {
	ListOrdersNewestFirst() ([]models.Order, error)
	ListItemLines(orderID uint) ([]ReportItemRow, error)
}

// ReportItemRow 报表订单项行
type ReportItemRow struct {
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   models.Money
}

// GormReportRepository GORM 实现
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓库
func NewReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// ListOrdersNewestFirst 全量订单头，按 ID 倒序，不分页
func (r *GormReportRepository) ListOrdersNewestFirst() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.db.Model(&models.Order{}).
		Select("id", "client_name", "order_date", "status", "total").
		Order("id desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListItemLines 订单项关联商品
func (r *GormReportRepository) ListItemLines(orderID uint) ([]ReportItemRow, error) {
	rows := make([]ReportItemRow, 0)
	if err := r.db.Model(&models.OrderItem{}).
		Select(`
			order_items.product_id as product_id,
			products.name as product_name,
			order_items.quantity as quantity,
			products.price as unit_price
		`).
		Joins("JOIN products ON order_items.product_id = products.id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.item_id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
