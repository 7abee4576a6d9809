package models

import (
	"strings"

	"github.com/marcenaria-picapau/internal/constants"

	"gorm.io/gorm"
)

// sqliteSchema 与旧版桌面程序的 marcenaria.db 保持逐字一致
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
            username TEXT PRIMARY KEY,
            password TEXT NOT NULL
        )`,
	`CREATE TABLE IF NOT EXISTS products (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            description TEXT,
            price REAL NOT NULL
        )`,
	`CREATE TABLE IF NOT EXISTS orders (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            client_name TEXT NOT NULL,
            order_date TEXT NOT NULL,
            status TEXT NOT NULL,
            total REAL NOT NULL
        )`,
	`CREATE TABLE IF NOT EXISTS order_items (
            item_id INTEGER PRIMARY KEY AUTOINCREMENT,
            order_id INTEGER,
            product_id INTEGER,
            quantity INTEGER NOT NULL,
            FOREIGN KEY (order_id) REFERENCES orders(id),
            FOREIGN KEY (product_id) REFERENCES products(id)
        )`,
}

// postgresSchema 同名同列的 postgres 版本
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
            username TEXT PRIMARY KEY,
            password TEXT NOT NULL
        )`,
	`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT,
            price DOUBLE PRECISION NOT NULL
        )`,
	`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            client_name TEXT NOT NULL,
            order_date TEXT NOT NULL,
            status TEXT NOT NULL,
            total DOUBLE PRECISION NOT NULL
        )`,
	`CREATE TABLE IF NOT EXISTS order_items (
            item_id SERIAL PRIMARY KEY,
            order_id INTEGER REFERENCES orders(id),
            product_id INTEGER REFERENCES products(id),
            quantity INTEGER NOT NULL
        )`,
}

// SchemaStatements 返回指定方言的建表语句
func SchemaStatements(dialect string) []string {
	if NormalizeDriver(dialect) == constants.DBDriverPostgres {
		return postgresSchema
	}
	return sqliteSchema
}

// EnsureSchema 建表（已存在则跳过）
// 不使用 AutoMigrate：列类型需与旧库完全一致。
func EnsureSchema(db *gorm.DB) error {
	dialect := constants.DBDriverSQLite
	if db.Dialector != nil {
		dialect = strings.ToLower(db.Dialector.Name())
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range SchemaStatements(dialect) {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
