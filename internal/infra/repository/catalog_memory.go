package repository

import (
	"context"
	"sort"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 読み取り専用の静的カタログ
type catalogMemoryRepository struct {
	products   []model.Product
	categories []model.Category
}

// DI
// postgres側と同じくposition順（同じpositionは渡された順）に並べて持つ。
func NewCatalogMemoryRepository(products []model.Product, categories []model.Category) repo.CatalogRepository {
	ps := make([]model.Product, len(products))
	copy(ps, products)
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Position < ps[j].Position })

	cs := make([]model.Category, len(categories))
	copy(cs, categories)
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Position < cs[j].Position })

	return &catalogMemoryRepository{
		products:   ps,
		categories: cs,
	}
}

// 公開商品のみ（呼び出し側が書き換えてもカタログに影響しないようコピー）
func (r *catalogMemoryRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *catalogMemoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *catalogMemoryRepository) FindProductByID(ctx context.Context, id string) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.IsActive {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}
