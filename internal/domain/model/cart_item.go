package model

import "github.com/shopspring/decimal"

// カートの明細
// 価格は追加時点のスナップショットを持たず、Productの現在価格を使う。
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	//バリエーション軸名 → 選択したoption
	SelectedVariants map[string]string `json:"selected_variants,omitempty"`
}

// 単価 × 数量
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func copyVariants(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
