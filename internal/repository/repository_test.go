package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/marcenaria-picapau/internal/constants"
	"github.com/marcenaria-picapau/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), time.Now().UnixNano())
	db, err := models.OpenDB("sqlite", dsn, nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema failed: %v", err)
	}
	return db
}

func createProduct(t *testing.T, repo *GormProductRepository, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createOrder(t *testing.T, repo *GormOrderRepository, client string, items ...models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{
		ClientName: client,
		OrderDate:  "2026-10-16",
		Status:     constants.OrderStatusPending,
		Total:      models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
	}
	err := repo.Transaction(func(tx *gorm.DB) error {
		return repo.WithTx(tx).Create(order, items)
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestProductListKeepsInsertionOrder(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewProductRepository(db)
	createProduct(t, repo, "Table", 150)
	createProduct(t, repo, "Chair", 80)
	createProduct(t, repo, "Shelf", 60)

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("products want 3 got %d", len(products))
	}
	if products[0].Name != "Table" || products[2].Name != "Shelf" {
		t.Fatalf("unexpected order: %+v", products)
	}
}

func TestProductGetUpdateDelete(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewProductRepository(db)
	product := createProduct(t, repo, "Table", 150)

	affected, err := repo.Update(product.ID, ProductUpdate{
		Name:        "Oak Table",
		Description: models.OptionalText("solid oak"),
		Price:       models.NewMoneyFromDecimal(decimal.RequireFromString("175.5")),
	})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("update affected want 1 got %d", affected)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got == nil || got.Name != "Oak Table" || got.DescriptionText() != "solid oak" || got.Price.String() != "175.50" {
		t.Fatalf("unexpected product: %+v", got)
	}

	affected, err = repo.Update(999, ProductUpdate{Name: "ghost"})
	if err != nil {
		t.Fatalf("update missing product failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("update missing affected want 0 got %d", affected)
	}

	affected, err = repo.Delete(product.ID)
	if err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("delete affected want 1 got %d", affected)
	}
	got, err = repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get deleted product failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted product should be gone")
	}
}

func TestProductDeleteReferencedFails(t *testing.T) {
	db := setupRepositoryTest(t)
	productRepo := NewProductRepository(db)
	orderRepo := NewOrderRepository(db)
	product := createProduct(t, productRepo, "Table", 150)
	createOrder(t, orderRepo, "Ana", models.OrderItem{ProductID: product.ID, Quantity: 2})

	_, err := productRepo.Delete(product.ID)
	if err == nil {
		t.Fatalf("expected referenced product delete to fail")
	}
	if !IsForeignKeyViolation(err) {
		t.Fatalf("expected foreign key violation, got: %v", err)
	}
	if countRows(t, db, &models.Product{}) != 1 {
		t.Fatalf("product row should remain")
	}
}

func TestOrderCreateAssignsIDs(t *testing.T) {
	db := setupRepositoryTest(t)
	productRepo := NewProductRepository(db)
	orderRepo := NewOrderRepository(db)
	table := createProduct(t, productRepo, "Table", 150)
	chair := createProduct(t, productRepo, "Chair", 80)

	order := createOrder(t, orderRepo, "Ana",
		models.OrderItem{ProductID: table.ID, Quantity: 2},
		models.OrderItem{ProductID: chair.ID, Quantity: 4},
	)
	if order.ID == 0 {
		t.Fatalf("order id should be assigned")
	}

	got, err := orderRepo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got == nil || len(got.Items) != 2 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.Items[0].ProductID != table.ID || got.Items[1].Quantity != 4 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
	if got.Items[0].OrderID != order.ID {
		t.Fatalf("item order id want %d got %d", order.ID, got.Items[0].OrderID)
	}
}

func TestOrderCreateRollsBackOnItemFailure(t *testing.T) {
	db := setupRepositoryTest(t)
	productRepo := NewProductRepository(db)
	orderRepo := NewOrderRepository(db)
	table := createProduct(t, productRepo, "Table", 150)

	order := &models.Order{
		ClientName: "Ana",
		OrderDate:  "2026-10-16",
		Status:     constants.OrderStatusPending,
		Total:      models.NewMoneyFromDecimal(decimal.NewFromInt(300)),
	}
	items := []models.OrderItem{
		{ProductID: table.ID, Quantity: 2},
		{ProductID: 404, Quantity: 1},
	}
	err := orderRepo.Transaction(func(tx *gorm.DB) error {
		return orderRepo.WithTx(tx).Create(order, items)
	})
	if err == nil {
		t.Fatalf("expected dangling product to fail")
	}
	if countRows(t, db, &models.Order{}) != 0 {
		t.Fatalf("order header should be rolled back")
	}
	if countRows(t, db, &models.OrderItem{}) != 0 {
		t.Fatalf("order items should be rolled back")
	}
}

func TestOrderStatusReadAndUpdate(t *testing.T) {
	db := setupRepositoryTest(t)
	orderRepo := NewOrderRepository(db)
	order := createOrder(t, orderRepo, "Ana")

	status, found, err := orderRepo.GetStatus(order.ID)
	if err != nil {
		t.Fatalf("get status failed: %v", err)
	}
	if !found || status != constants.OrderStatusPending {
		t.Fatalf("unexpected status: found=%v status=%s", found, status)
	}

	affected, err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}
	// 相同状态也算命中一行
	affected, err = orderRepo.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("no-op update failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("no-op affected want 1 got %d", affected)
	}

	_, found, err = orderRepo.GetStatus(order.ID + 100)
	if err != nil {
		t.Fatalf("get missing status failed: %v", err)
	}
	if found {
		t.Fatalf("missing order should not be found")
	}
	affected, err = orderRepo.UpdateStatus(order.ID+100, constants.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("update missing status failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("missing affected want 0 got %d", affected)
	}
}

func TestReportQueriesUseLiveProductData(t *testing.T) {
	db := setupRepositoryTest(t)
	productRepo := NewProductRepository(db)
	orderRepo := NewOrderRepository(db)
	reportRepo := NewReportRepository(db)
	table := createProduct(t, productRepo, "Table", 150)

	first := createOrder(t, orderRepo, "Ana", models.OrderItem{ProductID: table.ID, Quantity: 2})
	second := createOrder(t, orderRepo, "Bruno")

	if _, err := productRepo.Update(table.ID, ProductUpdate{
		Name:  "Walnut Table",
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(200)),
	}); err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	orders, err := reportRepo.ListOrdersNewestFirst()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatalf("unexpected order sequence: %+v", orders)
	}
	if orders[1].Total.String() != "100.00" {
		t.Fatalf("header total should stay frozen, got %s", orders[1].Total.String())
	}

	lines, err := reportRepo.ListItemLines(first.ID)
	if err != nil {
		t.Fatalf("list item lines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines want 1 got %d", len(lines))
	}
	if lines[0].ProductName != "Walnut Table" || lines[0].Quantity != 2 || lines[0].UnitPrice.String() != "200.00" {
		t.Fatalf("unexpected line: %+v", lines[0])
	}

	lines, err = reportRepo.ListItemLines(second.ID)
	if err != nil {
		t.Fatalf("list empty item lines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("empty order should have no lines")
	}
}

func TestUserRepositoryCredentials(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewUserRepository(db)
	if err := repo.Create(&models.User{Username: "oficina", Password: "pica-pau"}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	user, err := repo.GetByCredentials("oficina", "pica-pau")
	if err != nil || user == nil {
		t.Fatalf("expected credentials match, user=%v err=%v", user, err)
	}
	user, err = repo.GetByCredentials("oficina", "wrong")
	if err != nil || user != nil {
		t.Fatalf("expected no match, user=%v err=%v", user, err)
	}

	err = repo.Create(&models.User{Username: "oficina", Password: "again"})
	if !IsDuplicateKey(err) {
		t.Fatalf("expected duplicate key, got: %v", err)
	}
}

func TestStorageErrorClassification(t *testing.T) {
	if IsForeignKeyViolation(nil) || IsDuplicateKey(nil) {
		t.Fatalf("nil should not classify")
	}
	if !IsForeignKeyViolation(fmt.Errorf("wrap: %w", gorm.ErrForeignKeyViolated)) {
		t.Fatalf("gorm translated fk error should classify")
	}
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("postgres fk error should classify")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("postgres unique error is not fk")
	}
	if !IsDuplicateKey(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("postgres unique error should classify")
	}
	if !IsForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")) {
		t.Fatalf("sqlite fk message should classify")
	}
}
