package repository

import (
	"errors"

	"github.com/marcenaria-picapau/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(id uint, updates ProductUpdate) (int64, error)
	Delete(id uint) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

// ProductUpdate 商品可编辑字段
type ProductUpdate struct {
	Name        string
	Description *string
	Price       models.Money
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List 商品列表（按插入顺序）
func (r *GormProductRepository) List() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取商品，不存在返回 nil
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("id = ?", id).Take(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品，返回受影响行数
func (r *GormProductRepository) Update(id uint, updates ProductUpdate) (int64, error) {
	result := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        updates.Name,
		"description": updates.Description,
		"price":       updates.Price,
	})
	return result.RowsAffected, result.Error
}

// Delete 删除商品，被订单项引用时由数据库外键拒绝
func (r *GormProductRepository) Delete(id uint) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Product{})
	return result.RowsAffected, result.Error
}
