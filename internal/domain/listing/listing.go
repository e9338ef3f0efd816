// Package listing は商品一覧の絞り込みと並び替えを行う。
package listing

import (
	"sort"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	//画面上の選択肢にあるが、並びはfeaturedと同じ
	SortNewest SortKey = "newest"
)

// 価格帯の初期値（画面の初期値と同じ）
var (
	DefaultMinPrice = decimal.Zero
	DefaultMaxPrice = decimal.NewFromInt(100000)
)

// 両端を含む
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// 一覧の絞り込み条件。DefaultCriteria() から作ること。
// ゼロ値の Criteria{} は価格帯が 0〜0 になり、有料の商品はすべて外れる。
type Criteria struct {
	CategoryID string
	PriceRange PriceRange
	//0なら絞り込みなし
	MinRating float64
	Sort      SortKey
}

func DefaultCriteria() Criteria {
	return Criteria{
		PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
		Sort:       SortFeatured,
	}
}

// ParseSortKey は既知のキーかどうかを返す。空文字はfeatured。
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case "":
		return SortFeatured, true
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return SortKey(s), true
	default:
		return "", false
	}
}

// Apply はカテゴリ → 評価 → 価格帯 → 並び替え の順で処理する。
// 入力スライスは変更しない。価格帯の Max=0 は「0以下」の意味で、上限なしではない。
func Apply(products []model.Product, c Criteria) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if c.CategoryID != "" && p.CategoryID != c.CategoryID {
			continue
		}
		if c.MinRating > 0 && p.Rating < c.MinRating {
			continue
		}
		if p.Price.LessThan(c.PriceRange.Min) || p.Price.GreaterThan(c.PriceRange.Max) {
			continue
		}
		out = append(out, p)
	}

	switch c.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		//featuredを前へ（グループ内は元の順）
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}

	return out
}

// Related は同じカテゴリの別商品を最大n件返す。
func Related(products []model.Product, target model.Product, n int) []model.Product {
	out := make([]model.Product, 0, n)
	for _, p := range products {
		if len(out) >= n {
			break
		}
		if p.CategoryID == target.CategoryID && p.ID != target.ID {
			out = append(out, p)
		}
	}
	return out
}

func Featured(products []model.Product) []model.Product {
	return where(products, func(p model.Product) bool { return p.Featured })
}

func Deals(products []model.Product) []model.Product {
	return where(products, func(p model.Product) bool { return p.Deal })
}

func where(products []model.Product, keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
