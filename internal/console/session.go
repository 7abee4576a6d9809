package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/marcenaria-picapau/internal/constants"
	"github.com/marcenaria-picapau/internal/logger"
	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Services 会话依赖的业务服务
type Services struct {
	Products *service.ProductService
	Orders   *service.OrderService
	Reports  *service.ReportService
	Auth     *service.AuthService
}

// Session 单个操作员的交互会话，持有当前登录用户与订单草稿
type Session struct {
	id       string
	in       io.Reader
	out      io.Writer
	svc      Services
	currency string
	log      *zap.SugaredLogger

	user  *models.User
	draft *service.OrderDraft
}

// NewSession 创建会话
func NewSession(in io.Reader, out io.Writer, svc Services, currencySymbol string) *Session {
	id := uuid.NewString()
	currency := strings.TrimSpace(currencySymbol)
	if currency == "" {
		currency = constants.DefaultCurrencySymbol
	}
	return &Session{
		id:       id,
		in:       in,
		out:      out,
		svc:      svc,
		currency: currency,
		log:      logger.SW("session_id", id),
		draft:    service.NewOrderDraft(""),
	}
}

// ID 会话 ID
func (s *Session) ID() string {
	return s.id
}

// Run 逐行读取命令直到 quit、输入结束或 ctx 取消
func (s *Session) Run(ctx context.Context) error {
	s.log.Infow("session_started")
	defer s.log.Infow("session_finished")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.println("Marcenaria Pica-Pau. Type 'help' for commands.")
	s.prompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if !s.Execute(line) {
				return nil
			}
			s.prompt()
		}
	}
}

// Execute 执行一行命令，返回 false 表示会话结束
func (s *Session) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name := strings.ToLower(fields[0])
	args := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch name {
	case "quit", "exit":
		s.println("Bye.")
		return false
	case "help":
		s.printHelp()
		return true
	case "login":
		s.login(fields[1:])
		return true
	case "register":
		s.register(fields[1:])
		return true
	}

	if s.user == nil {
		s.println("Please log in first (login <username> <password>).")
		return true
	}

	switch name {
	case "logout":
		s.logout()
	case "product", "products":
		s.product(name, args)
	case "order":
		s.order(args)
	case "status":
		s.status(args)
	case "report":
		s.report()
	default:
		s.printf("Unknown command %q. Type 'help' for commands.\n", fields[0])
	}
	return true
}

func (s *Session) prompt() {
	if s.user != nil {
		fmt.Fprintf(s.out, "%s> ", s.user.Username)
		return
	}
	fmt.Fprint(s.out, "> ")
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) printHelp() {
	s.println(`Commands:
  login <username> <password>
  register <username> <password> <confirm>
  logout
  products                                   list the catalog
  product show <id>
  product add <name> | <description> | <price>
  product edit <id> <name> | <description> | <price>
  product delete <id>
  order new <client name>
  order add <product id> <quantity>
  order show                                 show the current draft
  order save                                 commit the current draft
  order clear
  order get <order id>
  status list
  status get <order id>
  status set <order id> <status>
  report
  quit`)
}
