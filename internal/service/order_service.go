package service

import (
	"strings"
	"time"

	"github.com/marcenaria-picapau/internal/constants"
	"github.com/marcenaria-picapau/internal/logger"
	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单服务：草稿组装、原子提交、状态维护
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// WithClock 替换时钟（测试用）
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	if now != nil {
		s.now = now
	}
	return s
}

// AddItem 按商品 ID 向草稿追加一行，名称与单价取自当前商品记录
func (s *OrderService) AddItem(draft *OrderDraft, productID uint, quantity int) error {
	if draft == nil {
		return validationError("draft is required")
	}
	if quantity <= 0 {
		return validationError("quantity must be greater than zero, got %d", quantity)
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return storageError("load product", err)
	}
	if product == nil {
		return productNotFound(productID)
	}
	return draft.Add(product, quantity)
}

// Commit 在单个事务内写入订单头与全部订单项，返回新订单 ID
// 任一写入失败整体回滚；草稿本身不被修改，成功后由调用方清空。
func (s *OrderService) Commit(draft *OrderDraft) (uint, error) {
	if draft == nil {
		return 0, validationError("draft is required")
	}
	clientName := strings.TrimSpace(draft.ClientName)
	if clientName == "" {
		return 0, validationError("client name is required")
	}
	lines := draft.Items()
	if len(lines) == 0 {
		return 0, validationError("order must contain at least one item")
	}

	order := &models.Order{
		ClientName: clientName,
		OrderDate:  s.now().Format(constants.OrderDateLayout),
		Status:     constants.OrderStatusPending,
		Total:      draft.Total(),
	}
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	})
	if err != nil {
		logger.Errorw("order_commit_failed",
			"client_name", clientName,
			"items", len(items),
			"total", order.Total.String(),
			"error", err,
		)
		return 0, storageError("commit order", err)
	}

	logger.Infow("order_committed",
		"order_id", order.ID,
		"client_name", clientName,
		"items", len(items),
		"total", order.Total.String(),
	)
	return order.ID, nil
}

// GetOrder 读取已提交订单（含订单项）
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, storageError("load order", err)
	}
	if order == nil {
		return nil, orderNotFound(orderID)
	}
	return order, nil
}
