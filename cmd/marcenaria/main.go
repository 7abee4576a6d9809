package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/marcenaria-picapau/internal/app"
	"github.com/marcenaria-picapau/internal/cache"
	"github.com/marcenaria-picapau/internal/config"
	"github.com/marcenaria-picapau/internal/logger"
	"github.com/marcenaria-picapau/internal/models"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库
	gormLog := logger.GormLogger(cfg.App.Mode, cfg.Log.SQLLevel)
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, gormLog); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 建表（与旧版数据库文件保持一致）
	if err := models.EnsureSchema(models.DB); err != nil {
		stdLog.Fatalf("数据库建表失败: %v", err)
	}

	// 初始化默认操作员账号
	if err := models.InitDefaultUser(models.DB, cfg.Auth.DefaultUsername, cfg.Auth.DefaultPassword); err != nil {
		stdLog.Printf("警告: 初始化默认操作员失败: %v", err)
	}
	defer func() {
		_ = cache.Close()
	}()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("会话运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiGreen + ansiBold + "Marcenaria Pica-Pau" + ansiReset)
	fmt.Println(ansiDim + "Products, orders and order status for the shop floor" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
