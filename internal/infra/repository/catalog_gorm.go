package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

var _ repo.CatalogRepository = (*CatalogGormRepository)(nil)

// 公開商品のみ。並びはposition順（絞り込み・並び替えはusecase側）。
func (r *CatalogGormRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("position asc").
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrCatalogFetch, err)
	}
	return products, nil
}

func (r *CatalogGormRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := r.db.WithContext(ctx).Order("position asc").Order("id asc").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrCatalogFetch, err)
	}
	return cats, nil
}

// IDで商品を取得
func (r *CatalogGormRepository) FindProductByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("%w: %v", repo.ErrCatalogFetch, err)
	}
	return p, nil
}

// SeedCatalog は空のDBにサンプルカタログを入れる。既にデータがあれば何もしない。
func SeedCatalog(ctx context.Context, db *gorm.DB, products []model.Product, categories []model.Category) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
