package repository

import (
	"errors"

	"github.com/marcenaria-picapau/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
// 单用户单进程，不做乐观锁；多用户时在此实现层加锁即可，调用方不变。
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetStatus(id uint) (string, bool, error)
	UpdateStatus(id uint, status string) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create 创建订单头与订单项
// 需在事务内调用，任一订单项失败由事务整体回滚。
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	order.Items = nil
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
		if err := r.db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID 根据 ID 获取订单（含订单项）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("item_id asc")
	}).Where("id = ?", id).Take(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetStatus 读取订单状态，第二个返回值表示订单是否存在
func (r *GormOrderRepository) GetStatus(id uint) (string, bool, error) {
	var row struct {
		Status string
	}
	if err := r.db.Model(&models.Order{}).
		Select("status").
		Where("id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Status, true, nil
}

// UpdateStatus 更新订单状态，返回受影响行数
func (r *GormOrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}
