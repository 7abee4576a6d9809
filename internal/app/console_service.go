package app

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/marcenaria-picapau/internal/console"
)

// ConsoleService 交互会话服务封装
type ConsoleService struct {
	name    string
	session *console.Session

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewConsoleService 创建交互会话服务
func NewConsoleService(in io.Reader, out io.Writer, services console.Services, currencySymbol string) *ConsoleService {
	return &ConsoleService{
		name:    "console",
		session: console.NewSession(in, out, services, currencySymbol),
	}
}

// Name 服务名称
func (s *ConsoleService) Name() string {
	if s == nil || s.name == "" {
		return "console"
	}
	return s.name
}

// Start 运行会话，直到操作员退出或 ctx 取消
func (s *ConsoleService) Start(ctx context.Context) error {
	if s == nil || s.session == nil {
		return errors.New("console session not initialized")
	}
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	if err := s.session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Stop 停止会话
func (s *ConsoleService) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return nil
}
