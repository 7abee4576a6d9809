package service

import (
	"strings"

	"github.com/marcenaria-picapau/internal/constants"
	"github.com/marcenaria-picapau/internal/logger"
)

var orderStatusLookup = buildOrderStatusLookup()

func buildOrderStatusLookup() map[string]string {
	lookup := make(map[string]string, len(constants.OrderStatuses)+len(constants.LegacyOrderStatusLabels))
	for _, status := range constants.OrderStatuses {
		lookup[statusKey(status)] = status
	}
	for label, status := range constants.LegacyOrderStatusLabels {
		lookup[statusKey(label)] = status
	}
	return lookup
}

// statusKey 忽略大小写、空格、下划线与连字符
func statusKey(raw string) string {
	replacer := strings.NewReplacer(" ", "", "_", "", "-", "")
	return replacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

// ParseOrderStatus 解析状态文本，兼容旧版葡语标签
func ParseOrderStatus(raw string) (string, bool) {
	status, ok := orderStatusLookup[statusKey(raw)]
	return status, ok
}

// Statuses 状态词表
func (s *OrderService) Statuses() []string {
	out := make([]string, len(constants.OrderStatuses))
	copy(out, constants.OrderStatuses)
	return out
}

// GetStatus 读取订单当前状态；旧库中的葡语标签会被归一化
func (s *OrderService) GetStatus(orderID uint) (string, error) {
	status, found, err := s.orderRepo.GetStatus(orderID)
	if err != nil {
		return "", storageError("load order status", err)
	}
	if !found {
		return "", orderNotFound(orderID)
	}
	if normalized, ok := ParseOrderStatus(status); ok {
		return normalized, nil
	}
	return status, nil
}

// SetStatus 设置订单状态
// 状态之间任意可达（含原地不变），不设终态。
func (s *OrderService) SetStatus(orderID uint, status string) error {
	normalized, ok := ParseOrderStatus(status)
	if !ok {
		return validationError("unknown order status %q", strings.TrimSpace(status))
	}
	affected, err := s.orderRepo.UpdateStatus(orderID, normalized)
	if err != nil {
		return storageError("update order status", err)
	}
	if affected == 0 {
		return orderNotFound(orderID)
	}
	logger.Infow("order_status_updated", "order_id", orderID, "status", normalized)
	return nil
}
