package service

import (
	"strings"

	"github.com/marcenaria-picapau/internal/logger"
	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/repository"
)

// AuthService 操作员登录与注册
// 密码按原样存储与比对，与既有数据库保持兼容。
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login 校验用户名与密码
func (s *AuthService) Login(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByCredentials(username, password)
	if err != nil {
		return nil, storageError("load user", err)
	}
	if user == nil {
		logger.Warnw("login_failed", "username", username)
		return nil, ErrInvalidCredentials
	}
	logger.Infow("login_succeeded", "username", username)
	return user, nil
}

// Register 注册新操作员
// 先查后写，两次调用之间存在竞态，由主键唯一约束兜底。
func (s *AuthService) Register(username, password, confirm string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || confirm == "" {
		return nil, validationError("username, password and confirmation are required")
	}
	if password != confirm {
		return nil, validationError("password confirmation does not match")
	}
	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, storageError("load user", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	user := &models.User{Username: username, Password: password}
	if err := s.userRepo.Create(user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrUsernameTaken
		}
		return nil, storageError("create user", err)
	}
	logger.Infow("user_registered", "username", username)
	return user, nil
}
