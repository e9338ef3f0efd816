package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"storefront/internal/domain/listing"
	"storefront/internal/domain/model"
	"storefront/internal/domain/pricing"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// 商品詳細に出す関連商品の数
const relatedLimit = 4

type ProductUsecase struct {
	catalog repo.CatalogRepository
}

// DI
func NewProductUsecase(catalog repo.CatalogRepository) *ProductUsecase {
	return &ProductUsecase{catalog: catalog}
}

// 商品カード表示用（表示用の価格文字列・割引率を付ける）
type ProductView struct {
	model.Product
	PriceFormatted         string `json:"price_formatted"`
	OriginalPriceFormatted string `json:"original_price_formatted,omitempty"`
	DiscountPercent        *int   `json:"discount_percent,omitempty"`
	InStock                bool   `json:"in_stock"`
}

func NewProductView(p model.Product) ProductView {
	v := ProductView{
		Product:        p,
		PriceFormatted: pricing.FormatPrice(p.Price, p.Currency),
		InStock:        p.InStock(),
	}
	if p.OriginalPrice != nil {
		v.OriginalPriceFormatted = pricing.FormatPrice(*p.OriginalPrice, p.Currency)
	}
	if d, ok := pricing.GetDiscount(p.Price, p.OriginalPrice); ok {
		v.DiscountPercent = &d
	}
	return v
}

func toViews(products []model.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductView(p))
	}
	return out
}

// GET /productsの入力DTO
// nilは未指定（初期値を使う）
type ListProductsInput struct {
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRating  float64
	Sort       string
}

type ProductListOutput struct {
	Items    []ProductView   `json:"items"`
	Total    int             `json:"total"`
	Category *model.Category `json:"category,omitempty"`
	Sort     listing.SortKey `json:"sort"`
}

// 絞り込み条件を検証して Criteria にする。
func (in ListProductsInput) criteria() (listing.Criteria, error) {
	c := listing.DefaultCriteria()
	c.CategoryID = strings.TrimSpace(in.CategoryID)

	if in.MinPrice != nil {
		if in.MinPrice.IsNegative() {
			return c, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
		}
		c.PriceRange.Min = *in.MinPrice
	}
	if in.MaxPrice != nil {
		if in.MaxPrice.IsNegative() {
			return c, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
		}
		c.PriceRange.Max = *in.MaxPrice
	}
	if c.PriceRange.Min.GreaterThan(c.PriceRange.Max) {
		return c, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}

	if math.IsNaN(in.MinRating) || in.MinRating < 0 || in.MinRating > 5 {
		return c, NewHTTPError(http.StatusBadRequest, "min_rating must be between 0 and 5")
	}
	c.MinRating = in.MinRating

	sortKey, ok := listing.ParseSortKey(in.Sort)
	if !ok {
		return c, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}
	c.Sort = sortKey

	return c, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	c, err := in.criteria()
	if err != nil {
		return ProductListOutput{}, err
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return ProductListOutput{}, catalogError(err)
	}

	items := listing.Apply(products, c)
	out := ProductListOutput{
		Items: toViews(items),
		Total: len(items),
		Sort:  c.Sort,
	}

	//パンくず用のカテゴリ名
	if c.CategoryID != "" {
		cats, err := u.catalog.ListCategories(ctx)
		if err != nil {
			return ProductListOutput{}, catalogError(err)
		}
		for i := range cats {
			if cats[i].ID == c.CategoryID {
				out.Category = &cats[i]
				break
			}
		}
	}

	return out, nil
}

type ProductDetailOutput struct {
	Product ProductView        `json:"product"`
	Stars   []pricing.StarKind `json:"stars"`
	Related []ProductView      `json:"related"`
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (ProductDetailOutput, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, catalogError(err)
	}

	all, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return ProductDetailOutput{}, catalogError(err)
	}

	return ProductDetailOutput{
		Product: NewProductView(p),
		Stars:   pricing.Stars(p.Rating),
		Related: toViews(listing.Related(all, p, relatedLimit)),
	}, nil
}

func (u *ProductUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.catalog.ListCategories(ctx)
	if err != nil {
		return nil, catalogError(err)
	}
	return cats, nil
}

type HomeOutput struct {
	Categories []model.Category `json:"categories"`
	Featured   []ProductView    `json:"featured"`
	Deals      []ProductView    `json:"deals"`
}

// トップページ（カテゴリ・おすすめ・セール）
func (u *ProductUsecase) Home(ctx context.Context) (HomeOutput, error) {
	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return HomeOutput{}, catalogError(err)
	}
	cats, err := u.catalog.ListCategories(ctx)
	if err != nil {
		return HomeOutput{}, catalogError(err)
	}

	return HomeOutput{
		Categories: cats,
		Featured:   toViews(listing.Featured(products)),
		Deals:      toViews(listing.Deals(products)),
	}, nil
}

// repositoryのエラーをHTTPErrorへ
func catalogError(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "product not found")
	case errors.Is(err, repo.ErrCatalogFetch):
		return NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
