package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcenaria-picapau/internal/cache"
	"github.com/marcenaria-picapau/internal/logger"
	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/repository"
)

// ProductService 商品目录服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Name        string
	Description string
	Price       models.Money
}

// ParsePrice 解析界面输入的单价
func ParsePrice(raw string) (models.Money, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Money{}, validationError("price is required")
	}
	price, err := models.NewMoneyFromString(trimmed)
	if err != nil {
		return models.Money{}, validationError("price %q is not a number", trimmed)
	}
	if price.IsNegative() {
		return models.Money{}, validationError("price must not be negative, got %s", price.String())
	}
	return price, nil
}

func normalizeProductInput(input ProductInput) (ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" {
		return input, validationError("product name is required")
	}
	if input.Price.IsNegative() {
		return input, validationError("price must not be negative, got %s", input.Price.String())
	}
	input.Price = models.NewMoneyFromDecimal(input.Price.Decimal)
	return input, nil
}

// List 商品列表（按 ID 升序）
func (s *ProductService) List() ([]models.Product, error) {
	products, err := s.repo.List()
	if err != nil {
		return nil, storageError("list products", err)
	}
	return products, nil
}

// Get 获取商品，缓存命中时直接返回快照
func (s *ProductService) Get(id uint) (*models.Product, error) {
	ctx := context.Background()
	if cached, hit, err := cache.GetProduct(ctx, id); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("product_cache_read_failed", "product_id", id, "error", err)
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storageError("load product", err)
	}
	if product == nil {
		return nil, productNotFound(id)
	}
	_ = cache.SetProduct(ctx, product)
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	normalized, err := normalizeProductInput(input)
	if err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:        normalized.Name,
		Description: models.OptionalText(normalized.Description),
		Price:       normalized.Price,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, storageError("create product", err)
	}
	logger.Infow("product_created", "product_id", product.ID, "name", product.Name, "price", product.Price.String())
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	normalized, err := normalizeProductInput(input)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Update(id, repository.ProductUpdate{
		Name:        normalized.Name,
		Description: models.OptionalText(normalized.Description),
		Price:       normalized.Price,
	})
	if err != nil {
		return nil, storageError("update product", err)
	}
	// sqlite 对值未变化的更新仍计入受影响行数，0 即不存在
	if affected == 0 {
		return nil, productNotFound(id)
	}
	s.invalidate(id)
	logger.Infow("product_updated", "product_id", id, "name", normalized.Name, "price", normalized.Price.String())

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storageError("load product", err)
	}
	if product == nil {
		return nil, productNotFound(id)
	}
	return product, nil
}

// Delete 删除商品；已被订单项引用时返回 ErrProductInUse，记录保留
func (s *ProductService) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			logger.Warnw("product_delete_rejected", "product_id", id, "reason", "in_use")
			return fmt.Errorf("%w: product_id=%d: %w", ErrProductInUse, id, err)
		}
		return storageError("delete product", err)
	}
	if affected == 0 {
		return productNotFound(id)
	}
	s.invalidate(id)
	logger.Infow("product_deleted", "product_id", id)
	return nil
}

func (s *ProductService) invalidate(id uint) {
	if err := cache.DelProduct(context.Background(), id); err != nil {
		logger.Warnw("product_cache_invalidate_failed", "product_id", id, "error", err)
	}
}
