package models

import (
	"strings"

	"github.com/marcenaria-picapau/internal/logger"

	"gorm.io/gorm"
)

// InitDefaultUser 用户表为空时创建默认操作员账号
// 用户名或密码未配置时跳过，操作员仍可在登录界面自行注册。
func InitDefaultUser(db *gorm.DB, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&User{Username: username, Password: password}).Error; err != nil {
		return err
	}
	logger.Warnw("default_user_created", "username", username, "password_hidden", true)
	return nil
}
