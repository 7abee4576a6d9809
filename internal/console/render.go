package console

import (
	"fmt"
	"strings"

	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/service"
)

func (s *Session) renderProducts(products []models.Product) {
	if len(products) == 0 {
		s.println("No products registered.")
		return
	}
	priceHeader := fmt.Sprintf("Price (%s)", s.currency)
	s.printf("%-5s%-30s%-40s%10s\n", "ID", "Name", "Description", priceHeader)
	s.println(strings.Repeat("-", 85))
	for _, p := range products {
		s.printf("%-5d%-30s%-40s%10s\n", p.ID, p.Name, p.DescriptionText(), p.Price.String())
	}
}

func (s *Session) renderProduct(p *models.Product) {
	s.printf("Product #%d\n", p.ID)
	s.printf("  Name:        %s\n", p.Name)
	s.printf("  Description: %s\n", p.DescriptionText())
	s.printf("  Price:       %s\n", p.Price.Format(s.currency))
}

func (s *Session) renderDraft() {
	client := strings.TrimSpace(s.draft.ClientName)
	if client == "" {
		client = "(not set)"
	}
	s.printf("Client: %s\n", client)
	items := s.draft.Items()
	if len(items) == 0 {
		s.println("  (no items)")
	}
	for i, item := range items {
		s.printf("  %d. %s x%d @ %s = %s\n",
			i+1,
			item.ProductName,
			item.Quantity,
			item.UnitPrice.Format(s.currency),
			item.Subtotal().Format(s.currency),
		)
	}
	s.printf("Total: %s\n", s.draft.Total().Format(s.currency))
}

func (s *Session) renderOrder(order *models.Order) {
	s.printf("Order #%d | Client: %s | Date: %s\n", order.ID, order.ClientName, order.OrderDate)
	status := order.Status
	if normalized, ok := service.ParseOrderStatus(status); ok {
		status = normalized
	}
	s.printf("  Status: %s\n", status)
	s.printf("  Total:  %s\n", order.Total.Format(s.currency))
	for _, item := range order.Items {
		s.printf("  - product #%d: %d unit(s)\n", item.ProductID, item.Quantity)
	}
}
