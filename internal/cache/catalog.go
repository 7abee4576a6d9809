package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/marcenaria-picapau/internal/models"
)

var catalogTTL = 5 * time.Minute

// SetCatalogTTL 设置商品快照缓存时长，非正数忽略
func SetCatalogTTL(ttl time.Duration) {
	if ttl > 0 {
		catalogTTL = ttl
	}
}

func productKey(id uint) string {
	return fmt.Sprintf("catalog:product:%d", id)
}

// GetProduct 读取商品快照
func GetProduct(ctx context.Context, id uint) (*models.Product, bool, error) {
	if id == 0 {
		return nil, false, nil
	}
	var product models.Product
	hit, err := GetJSON(ctx, productKey(id), &product)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &product, true, nil
}

// SetProduct 写入商品快照
func SetProduct(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return nil
	}
	return SetJSON(ctx, productKey(product.ID), product, catalogTTL)
}

// DelProduct 商品修改或删除后失效快照
func DelProduct(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	return Del(ctx, productKey(id))
}
