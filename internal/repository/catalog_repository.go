package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログの取得に失敗した（DB・リモート障害など）
var ErrCatalogFetch = errors.New("catalog fetch failed")

// 商品・カテゴリの読み取りだけを約束。
// 一覧は表示順で返す。
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	FindProductByID(ctx context.Context, id string) (model.Product, error)
}
