package model

import "github.com/shopspring/decimal"

// 1セッションにつき1つのカート。
// 同一商品の明細は1行だけ（追加は数量加算）。
// 合計値はフィールドに持たず、毎回明細から計算する。
type Cart struct {
	items  []LineItem
	isOpen bool
}

// 1明細あたりの数量上限。これを超える分は切り捨てる。
const MaxLineQuantity = 999

func NewCart() *Cart {
	return &Cart{}
}

// AddItem はカートに追加する（同一商品は数量加算、選択済みバリエーションは上書きしない）。
// 加算後の数量は MaxLineQuantity で頭打ちになる。
func (c *Cart) AddItem(p Product, quantity int, variants map[string]string) {
	if quantity < 1 {
		quantity = 1
	}
	quantity = min(quantity, MaxLineQuantity)

	if i := c.indexOf(p.ID); i >= 0 {
		// 両方とも上限以下なのでオーバーフローしない
		c.items[i].Quantity = min(c.items[i].Quantity+quantity, MaxLineQuantity)
		return
	}

	c.items = append(c.items, LineItem{
		Product:          p,
		Quantity:         quantity,
		SelectedVariants: copyVariants(variants),
	})
}

// 明細削除（無ければ何もしない）
func (c *Cart) RemoveItem(productID string) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// 数量を直接設定する。0以下なら明細ごと削除、上限超えは MaxLineQuantity。
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity = min(quantity, MaxLineQuantity)
	}
}

// 数量の合計
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// 単価 × 数量の合計
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// 明細のコピー（追加順）
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, it := range c.items {
		out[i] = it
		out[i].SelectedVariants = copyVariants(it.SelectedVariants)
	}
	return out
}

// 明細があるか
func (c *Cart) Has(productID string) bool {
	return c.indexOf(productID) >= 0
}

func (c *Cart) IsOpen() bool {
	return c.isOpen
}

// カートパネルの開閉（明細とは独立）
func (c *Cart) SetOpen(open bool) {
	c.isOpen = open
}

// 明細をカタログの最新商品に差し替える。
// lookupで見つからない商品は今の値のまま残す。
func (c *Cart) Refresh(lookup func(productID string) (Product, bool)) {
	for i := range c.items {
		if p, ok := lookup(c.items[i].Product.ID); ok {
			c.items[i].Product = p
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) indexOf(productID string) int {
	for i, it := range c.items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}
