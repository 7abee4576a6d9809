package app

import (
	"errors"

	"github.com/marcenaria-picapau/internal/provider"
)

// BuildRunner 构建服务运行器
func BuildRunner(container *provider.Container, opts Options) (*Runner, error) {
	if container == nil {
		return nil, errors.New("container is nil")
	}
	opts = normalizeOptions(opts)

	consoleService := NewConsoleService(opts.Input, opts.Output, container.ConsoleServices(), container.Config.Order.CurrencySymbol)
	return NewRunner(consoleService), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	container := provider.NewContainer(opts.Config)
	runner, err := BuildRunner(container, opts)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "name", opts.Config.App.Name, "mode", opts.Config.App.Mode, "driver", opts.Config.Database.Driver)
	return RunWithOptions(runner, opts)
}
