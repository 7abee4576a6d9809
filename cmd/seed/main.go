package main

import (
	"github.com/marcenaria-picapau/internal/config"
	"github.com/marcenaria-picapau/internal/logger"
	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/repository"
	"github.com/marcenaria-picapau/internal/service"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

var demoProducts = []seedProduct{
	{Name: "Mesa de jantar", Description: "Mesa em madeira maciça para 6 lugares", Price: decimal.NewFromInt(1450)},
	{Name: "Cadeira", Description: "Cadeira de pinus com assento estofado", Price: decimal.NewFromInt(280)},
	{Name: "Estante", Description: "Estante com 5 prateleiras", Price: decimal.RequireFromString("890.50")},
	{Name: "Criado-mudo", Description: "", Price: decimal.NewFromInt(320)},
	{Name: "Banco rústico", Description: "Banco de eucalipto tratado", Price: decimal.RequireFromString("175.90")},
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, logger.GormLogger(cfg.App.Mode, cfg.Log.SQLLevel)); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.EnsureSchema(models.DB); err != nil {
		stdLog.Fatalf("Failed to create tables: %v", err)
	}
	if err := models.InitDefaultUser(models.DB, cfg.Auth.DefaultUsername, cfg.Auth.DefaultPassword); err != nil {
		stdLog.Printf("Failed to create default user: %v", err)
	}

	products := service.NewProductService(repository.NewProductRepository(models.DB))
	existing, err := products.List()
	if err != nil {
		stdLog.Fatalf("Failed to load products: %v", err)
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.Name] = true
	}

	// 按名称去重，重复执行不会产生重复商品
	for _, item := range demoProducts {
		if known[item.Name] {
			stdLog.Printf("Product already exists: %s", item.Name)
			continue
		}
		created, err := products.Create(service.ProductInput{
			Name:        item.Name,
			Description: item.Description,
			Price:       models.NewMoneyFromDecimal(item.Price),
		})
		if err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.Name, err)
			continue
		}
		stdLog.Printf("Created product #%d: %s", created.ID, created.Name)
	}

	stdLog.Println("Seed data completed")
}
