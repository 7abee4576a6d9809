package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/marcenaria-picapau/internal/service"
)

func (s *Session) login(args []string) {
	if len(args) != 2 {
		s.println("Usage: login <username> <password>")
		return
	}
	user, err := s.svc.Auth.Login(args[0], args[1])
	if err != nil {
		s.fail("login", err)
		return
	}
	s.user = user
	s.draft = service.NewOrderDraft("")
	s.log.Infow("session_login", "username", user.Username)
	s.printf("Welcome, %s.\n", user.Username)
}

func (s *Session) register(args []string) {
	if len(args) != 3 {
		s.println("Usage: register <username> <password> <confirm>")
		return
	}
	user, err := s.svc.Auth.Register(args[0], args[1], args[2])
	if err != nil {
		s.fail("register", err)
		return
	}
	s.printf("User %s registered. You can log in now.\n", user.Username)
}

func (s *Session) logout() {
	s.log.Infow("session_logout", "username", s.user.Username)
	s.user = nil
	s.draft = service.NewOrderDraft("")
	s.println("Logged out.")
}

func (s *Session) product(name, args string) {
	if name == "products" {
		s.listProducts()
		return
	}
	sub, rest := splitCommand(args)
	switch sub {
	case "", "list":
		s.listProducts()
	case "show":
		id, ok := s.parseID(rest, "product show <id>")
		if !ok {
			return
		}
		product, err := s.svc.Products.Get(id)
		if err != nil {
			s.fail("product show", err)
			return
		}
		s.renderProduct(product)
	case "add":
		input, ok := s.parseProductInput(rest, "product add <name> | <description> | <price>")
		if !ok {
			return
		}
		product, err := s.svc.Products.Create(input)
		if err != nil {
			s.fail("product add", err)
			return
		}
		s.printf("Product #%d added.\n", product.ID)
	case "edit":
		idText, fields := splitCommand(rest)
		id, ok := s.parseID(idText, "product edit <id> <name> | <description> | <price>")
		if !ok {
			return
		}
		input, ok := s.parseProductInput(fields, "product edit <id> <name> | <description> | <price>")
		if !ok {
			return
		}
		if _, err := s.svc.Products.Update(id, input); err != nil {
			s.fail("product edit", err)
			return
		}
		s.printf("Product #%d updated.\n", id)
	case "delete", "remove":
		id, ok := s.parseID(rest, "product delete <id>")
		if !ok {
			return
		}
		if err := s.svc.Products.Delete(id); err != nil {
			s.fail("product delete", err)
			return
		}
		s.printf("Product #%d removed.\n", id)
	default:
		s.printf("Unknown product command %q.\n", sub)
	}
}

func (s *Session) listProducts() {
	products, err := s.svc.Products.List()
	if err != nil {
		s.fail("products", err)
		return
	}
	s.renderProducts(products)
}

func (s *Session) order(args string) {
	sub, rest := splitCommand(args)
	switch sub {
	case "new":
		s.draft = service.NewOrderDraft(rest)
		s.printf("New order for %q started.\n", strings.TrimSpace(rest))
	case "client":
		s.draft.ClientName = rest
		s.printf("Client set to %q.\n", strings.TrimSpace(rest))
	case "add":
		parts := strings.Fields(rest)
		if len(parts) != 2 {
			s.println("Usage: order add <product id> <quantity>")
			return
		}
		id, ok := s.parseID(parts[0], "order add <product id> <quantity>")
		if !ok {
			return
		}
		quantity, err := service.ParseQuantity(parts[1])
		if err != nil {
			s.fail("order add", err)
			return
		}
		if err := s.svc.Orders.AddItem(s.draft, id, quantity); err != nil {
			s.fail("order add", err)
			return
		}
		s.printf("Item added. Draft total: %s\n", s.draft.Total().Format(s.currency))
	case "", "show":
		s.renderDraft()
	case "save", "commit":
		orderID, err := s.svc.Orders.Commit(s.draft)
		if err != nil {
			s.fail("order save", err)
			return
		}
		s.draft.Clear()
		s.printf("Order #%d created.\n", orderID)
	case "clear":
		s.draft.Clear()
		s.println("Draft cleared.")
	case "get":
		id, ok := s.parseID(rest, "order get <order id>")
		if !ok {
			return
		}
		order, err := s.svc.Orders.GetOrder(id)
		if err != nil {
			s.fail("order get", err)
			return
		}
		s.renderOrder(order)
	default:
		s.printf("Unknown order command %q.\n", sub)
	}
}

func (s *Session) status(args string) {
	sub, rest := splitCommand(args)
	switch sub {
	case "", "list":
		s.println(strings.Join(s.svc.Orders.Statuses(), ", "))
	case "get":
		id, ok := s.parseID(rest, "status get <order id>")
		if !ok {
			return
		}
		status, err := s.svc.Orders.GetStatus(id)
		if err != nil {
			s.fail("status get", err)
			return
		}
		s.printf("Order #%d: %s\n", id, status)
	case "set":
		idText, value := splitCommand(rest)
		id, ok := s.parseID(idText, "status set <order id> <status>")
		if !ok {
			return
		}
		if err := s.svc.Orders.SetStatus(id, value); err != nil {
			s.fail("status set", err)
			return
		}
		status, _ := service.ParseOrderStatus(value)
		s.printf("Order #%d status updated to %s.\n", id, status)
	default:
		s.printf("Unknown status command %q.\n", sub)
	}
}

func (s *Session) report() {
	if err := s.svc.Reports.Render(s.out); err != nil {
		s.fail("report", err)
	}
}

func (s *Session) parseID(raw, usage string) (uint, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		s.printf("Usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil || id == 0 {
		s.printf("Invalid id %q.\n", trimmed)
		return 0, false
	}
	return uint(id), true
}

func (s *Session) parseProductInput(raw, usage string) (service.ProductInput, bool) {
	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		s.printf("Usage: %s\n", usage)
		return service.ProductInput{}, false
	}
	price, err := service.ParsePrice(parts[2])
	if err != nil {
		s.fail("product", err)
		return service.ProductInput{}, false
	}
	return service.ProductInput{
		Name:        strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		Price:       price,
	}, true
}

// fail 在界面边界把错误归类为可读提示
func (s *Session) fail(op string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUsernameTaken):
		s.log.Debugw("command_rejected", "command", op, "error", err)
		s.printf("Error: %v\n", err)
	case errors.Is(err, service.ErrProductInUse):
		s.log.Warnw("command_rejected", "command", op, "error", err)
		s.println("Error: the product is referenced by an order and cannot be removed.")
	default:
		s.log.Errorw("command_failed", "command", op, "error", err)
		s.printf("Error: storage failure while running %s: %v\n", op, err)
	}
}

func splitCommand(args string) (string, string) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return "", ""
	}
	head, rest, _ := strings.Cut(trimmed, " ")
	return strings.ToLower(head), strings.TrimSpace(rest)
}
