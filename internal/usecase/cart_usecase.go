package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/domain/pricing"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// カートはセッションごとにSessionStoreが持ち、価格は毎回カタログの現在価格で計算します。
type CartUsecase struct {
	sessions repo.SessionStore
	catalog  repo.CatalogRepository
	currency string
}

func NewCartUsecase(
	sessions repo.SessionStore,
	catalog repo.CatalogRepository,
	currency string,
) *CartUsecase {
	if currency == "" {
		currency = pricing.DefaultCurrency
	}
	return &CartUsecase{
		sessions: sessions,
		catalog:  catalog,
		currency: currency,
	}
}

type CartItemResponse struct {
	ProductID        string            `json:"product_id"`
	Name             string            `json:"name"`
	Image            string            `json:"image,omitempty"`
	Price            decimal.Decimal   `json:"price"`
	PriceFormatted   string            `json:"price_formatted"`
	Quantity         int               `json:"quantity"`
	Subtotal         decimal.Decimal   `json:"subtotal"`
	SelectedVariants map[string]string `json:"selected_variants,omitempty"`
	InStock          bool              `json:"in_stock"`
	//カタログから消えた商品はfalse（最後に見た価格のまま）
	Available bool `json:"available"`
}

type CartResponse struct {
	Items               []CartItemResponse `json:"items"`
	TotalItems          int                `json:"total_items"`
	TotalPrice          decimal.Decimal    `json:"total_price"`
	TotalPriceFormatted string             `json:"total_price_formatted"`
	IsOpen              bool               `json:"is_open"`
}

type AddCartInput struct {
	ProductID string
	Quantity  int
	Variants  map[string]string
}

// GetCart はカート取得（価格は最新）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	return u.mutate(ctx, sessionID, func(*model.Cart) {})
}

// AddItem はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	//未指定は1
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 || in.Quantity > model.MaxLineQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return CartResponse{}, catalogError(err)
	}

	//選択バリエーションは商品の定義にあるものだけ
	for vt, opt := range in.Variants {
		if !p.HasVariantOption(vt, opt) {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
		}
	}

	return u.mutate(ctx, sessionID, func(c *model.Cart) {
		c.AddItem(p, in.Quantity, in.Variants)
	})
}

// 明細削除（無くてもエラーにしない）
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, productID string) (CartResponse, error) {
	return u.mutate(ctx, sessionID, func(c *model.Cart) {
		c.RemoveItem(productID)
	})
}

// 数量変更。0以下は削除、上限超えは400。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) (CartResponse, error) {
	if quantity > model.MaxLineQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	return u.mutate(ctx, sessionID, func(c *model.Cart) {
		c.UpdateQuantity(productID, quantity)
	})
}

// カートパネルの開閉
func (u *CartUsecase) SetOpen(ctx context.Context, sessionID string, open bool) (CartResponse, error) {
	return u.mutate(ctx, sessionID, func(c *model.Cart) {
		c.SetOpen(open)
	})
}

// セッション終了（カート破棄）
func (u *CartUsecase) EndSession(ctx context.Context, sessionID string) error {
	if err := u.sessions.End(ctx, sessionID); err != nil {
		if errors.Is(err, repo.ErrSessionNotFound) {
			return NewHTTPError(http.StatusNotFound, "session not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}

// 最新カタログを先に取り、セッションをロックして fn → 価格更新 → レスポンス作成。
func (u *CartUsecase) mutate(ctx context.Context, sessionID string, fn func(c *model.Cart)) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "no session")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return CartResponse{}, catalogError(err)
	}
	live := make(map[string]model.Product, len(products))
	for _, p := range products {
		live[p.ID] = p
	}
	lookup := func(id string) (model.Product, bool) {
		p, ok := live[id]
		return p, ok
	}

	var out CartResponse
	err = u.sessions.WithCart(ctx, sessionID, func(c *model.Cart) error {
		fn(c)
		c.Refresh(lookup)
		out = u.buildCartResponse(c, live)
		return nil
	})
	if errors.Is(err, repo.ErrSessionNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "no session")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return out, nil
}

// 明細をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(c *model.Cart, live map[string]model.Product) CartResponse {
	items := c.Items()
	respItems := make([]CartItemResponse, 0, len(items))

	for _, it := range items {
		_, available := live[it.Product.ID]
		var image string
		if len(it.Product.Images) > 0 {
			image = it.Product.Images[0]
		}

		respItems = append(respItems, CartItemResponse{
			ProductID:        it.Product.ID,
			Name:             it.Product.Name,
			Image:            image,
			Price:            it.Product.Price,
			PriceFormatted:   pricing.FormatPrice(it.Product.Price, u.currencyOf(it.Product)),
			Quantity:         it.Quantity,
			Subtotal:         it.Subtotal(),
			SelectedVariants: it.SelectedVariants,
			InStock:          it.Product.InStock(),
			Available:        available,
		})
	}

	total := c.TotalPrice()
	return CartResponse{
		Items:               respItems,
		TotalItems:          c.TotalItems(),
		TotalPrice:          total,
		TotalPriceFormatted: pricing.FormatPrice(total, u.currency),
		IsOpen:              c.IsOpen(),
	}
}

func (u *CartUsecase) currencyOf(p model.Product) string {
	if p.Currency != "" {
		return p.Currency
	}
	return u.currency
}
