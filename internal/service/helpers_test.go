package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type serviceFixture struct {
	db       *gorm.DB
	products *ProductService
	orders   *OrderService
	reports  *ReportService
	auth     *AuthService
}

func setupServiceTest(t *testing.T) *serviceFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:service_%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), time.Now().UnixNano())
	db, err := models.OpenDB("sqlite", dsn, nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema failed: %v", err)
	}
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	fixedNow := time.Date(2026, 10, 16, 15, 4, 5, 0, time.Local)
	return &serviceFixture{
		db:       db,
		products: NewProductService(productRepo),
		orders:   NewOrderService(orderRepo, productRepo).WithClock(func() time.Time { return fixedNow }),
		reports:  NewReportService(repository.NewReportRepository(db), "R$"),
		auth:     NewAuthService(repository.NewUserRepository(db)),
	}
}

func money(t *testing.T, raw string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", raw, err)
	}
	return m
}

func mustCreateProduct(t *testing.T, svc *ProductService, name string, price int64) *models.Product {
	t.Helper()
	product, err := svc.Create(ProductInput{
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}
