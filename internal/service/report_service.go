package service

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/marcenaria-picapau/internal/constants"
	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/repository"
)

// OrderSummary 报表中的一笔订单
type OrderSummary struct {
	ID         uint
	ClientName string
	OrderDate  string
	Status     string
	Total      models.Money
	Items      []repository.ReportItemRow
}

// Empty 订单下没有可关联的订单项
func (o OrderSummary) Empty() bool {
	return len(o.Items) == 0
}

// ReportService 订单报表服务
type ReportService struct {
	repo           repository.ReportRepository
	currencySymbol string
}

// NewReportService 创建报表服务
func NewReportService(repo repository.ReportRepository, currencySymbol string) *ReportService {
	symbol := strings.TrimSpace(currencySymbol)
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	return &ReportService{repo: repo, currencySymbol: symbol}
}

// Build 按 ID 倒序逐笔产出订单摘要
// 订单头一次性读取，订单项在产出对应订单时才查询；调用方中途停止则不再查询。
func (s *ReportService) Build() iter.Seq2[OrderSummary, error] {
	return func(yield func(OrderSummary, error) bool) {
		orders, err := s.repo.ListOrdersNewestFirst()
		if err != nil {
			yield(OrderSummary{}, storageError("list orders", err))
			return
		}
		for _, order := range orders {
			lines, err := s.repo.ListItemLines(order.ID)
			if err != nil {
				yield(OrderSummary{ID: order.ID}, storageError(fmt.Sprintf("list items of order %d", order.ID), err))
				return
			}
			status := order.Status
			if normalized, ok := ParseOrderStatus(status); ok {
				status = normalized
			}
			summary := OrderSummary{
				ID:         order.ID,
				ClientName: order.ClientName,
				OrderDate:  order.OrderDate,
				Status:     status,
				Total:      order.Total,
				Items:      lines,
			}
			if !yield(summary, nil) {
				return
			}
		}
	}
}

// Render 以文本形式输出全部订单
func (s *ReportService) Render(w io.Writer) error {
	count := 0
	for summary, err := range s.Build() {
		if err != nil {
			return err
		}
		count++
		if err := s.renderOrder(w, summary); err != nil {
			return err
		}
	}
	if count == 0 {
		_, err := fmt.Fprintln(w, "No orders registered.")
		return err
	}
	return nil
}

func (s *ReportService) renderOrder(w io.Writer, summary OrderSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Order ID: %d | Client: %s | Date: %s ---\n", summary.ID, summary.ClientName, summary.OrderDate)
	fmt.Fprintf(&b, "    Status: %s\n", summary.Status)
	fmt.Fprintf(&b, "    Total: %s\n", summary.Total.Format(s.currencySymbol))
	b.WriteString("    Items:\n")
	if summary.Empty() {
		b.WriteString("        (no items found)\n")
	}
	for _, item := range summary.Items {
		fmt.Fprintf(&b, "        - %s: %d unit(s) @ %s\n", item.ProductName, item.Quantity, item.UnitPrice.Format(s.currencySymbol))
	}
	b.WriteString(strings.Repeat("-", 60))
	b.WriteString("\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}
