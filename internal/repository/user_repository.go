package repository

import (
	"errors"

	"github.com/marcenaria-picapau/internal/models"

	"gorm.io/gorm"
)

// UserRepository 操作员数据访问接口
type UserRepository interface {
	GetByUsername(username string) (*models.User, error)
	GetByCredentials(username, password string) (*models.User, error)
	Create(user *models.User) error
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByUsername 根据用户名获取用户
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByCredentials 用户名 + 密码查找（明文比对）
func (r *GormUserRepository) GetByCredentials(username, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND password = ?", username, password).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
