package models

// User 操作员账号表
type User struct {
	Username string `gorm:"column:username;primaryKey" json:"username"` // 用户名
	Password string `gorm:"column:password;not null" json:"-"`          // 密码（明文，沿用旧库）
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
