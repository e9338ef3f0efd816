package model_test

import (
	"math"
	"testing"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) model.Product {
	return model.Product{ID: id, Name: "P-" + id, Price: decimal.NewFromInt(price), Currency: "ETB", StockCount: 10}
}

// 合計が明細からの再計算と一致するか
func assertTotalsConsistent(t *testing.T, c *model.Cart) {
	t.Helper()

	qty := 0
	price := decimal.Zero
	for _, it := range c.Items() {
		qty += it.Quantity
		price = price.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.Equal(t, qty, c.TotalItems())
	assert.True(t, price.Equal(c.TotalPrice()), "total price %s != %s", c.TotalPrice(), price)
}

func TestCart_AddItem_SameProductIncrementsQuantity(t *testing.T) {
	c := model.NewCart()

	c.AddItem(product("a", 100), 2, nil)
	c.AddItem(product("a", 100), 3, nil)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.TotalItems())
	assert.True(t, decimal.NewFromInt(500).Equal(c.TotalPrice()))
}

func TestCart_AddItem_KeepsFirstVariants(t *testing.T) {
	c := model.NewCart()

	c.AddItem(product("a", 100), 1, map[string]string{"Size": "M"})
	c.AddItem(product("a", 100), 1, map[string]string{"Size": "XL"})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "M", items[0].SelectedVariants["Size"])
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_AddItem_PreservesInsertionOrder(t *testing.T) {
	c := model.NewCart()

	c.AddItem(product("b", 10), 1, nil)
	c.AddItem(product("a", 20), 1, nil)
	c.AddItem(product("c", 30), 1, nil)
	c.AddItem(product("b", 10), 1, nil)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "b", items[0].Product.ID)
	assert.Equal(t, "a", items[1].Product.ID)
	assert.Equal(t, "c", items[2].Product.ID)
}

func TestCart_AddItem_QuantityBelowOneBecomesOne(t *testing.T) {
	c := model.NewCart()

	c.AddItem(product("a", 100), 0, nil)

	assert.Equal(t, 1, c.TotalItems())
}

func TestCart_RemoveItem_AbsentIsNoop(t *testing.T) {
	c := model.NewCart()
	c.AddItem(product("a", 100), 1, nil)

	c.RemoveItem("zzz")

	assert.Equal(t, 1, c.TotalItems())
	assertTotalsConsistent(t, c)
}

func TestCart_UpdateQuantity_ZeroRemoves(t *testing.T) {
	c := model.NewCart()
	c.AddItem(product("a", 100), 2, nil)
	c.AddItem(product("b", 50), 1, nil)

	c.UpdateQuantity("a", 0)

	assert.False(t, c.Has("a"))
	assert.Equal(t, 1, c.TotalItems())
	assert.True(t, decimal.NewFromInt(50).Equal(c.TotalPrice()))
}

func TestCart_UpdateQuantity_NegativeRemoves(t *testing.T) {
	c := model.NewCart()
	c.AddItem(product("a", 100), 2, nil)

	c.UpdateQuantity("a", -3)

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestCart_UpdateQuantity_SetsExactValueWithoutStockClamp(t *testing.T) {
	c := model.NewCart()
	c.AddItem(product("a", 100), 1, nil)

	c.UpdateQuantity("a", 50)

	assert.Equal(t, 50, c.TotalItems())
}

// 巨大な数量を重ねても負にならず上限で止まる
func TestCart_AddItem_SaturatesAtMaxLineQuantity(t *testing.T) {
	c := model.NewCart()
	p := product("a", 100)

	c.AddItem(p, math.MaxInt, nil)
	c.AddItem(p, 2, nil)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, model.MaxLineQuantity, items[0].Quantity)
	assert.Equal(t, model.MaxLineQuantity, c.TotalItems())
	assert.True(t, c.TotalPrice().IsPositive())
	assertTotalsConsistent(t, c)
}

func TestCart_AddItem_MergeStopsAtMaxLineQuantity(t *testing.T) {
	c := model.NewCart()
	p := product("a", 100)

	c.AddItem(p, model.MaxLineQuantity-1, nil)
	c.AddItem(p, 5, nil)

	assert.Equal(t, model.MaxLineQuantity, c.TotalItems())
}

func TestCart_UpdateQuantity_ClampsToMaxLineQuantity(t *testing.T) {
	c := model.NewCart()
	c.AddItem(product("a", 100), 1, nil)

	c.UpdateQuantity("a", math.MaxInt)

	assert.Equal(t, model.MaxLineQuantity, c.TotalItems())
	assertTotalsConsistent(t, c)
}

func TestCart_UpdateQuantity_AbsentIsNoop(t *testing.T) {
	c := model.NewCart()

	c.UpdateQuantity("nope", 4)

	assert.Empty(t, c.Items())
}

func TestCart_TotalsNeverDrift(t *testing.T) {
	c := model.NewCart()

	steps := []func(){
		func() { c.AddItem(product("a", 120), 2, nil) },
		func() { c.AddItem(product("b", 35), 1, nil) },
		func() { c.UpdateQuantity("a", 7) },
		func() { c.AddItem(product("c", 999), 4, nil) },
		func() { c.RemoveItem("b") },
		func() { c.UpdateQuantity("c", 0) },
		func() { c.AddItem(product("b", 35), 3, nil) },
		func() { c.RemoveItem("missing") },
		func() { c.UpdateQuantity("a", 1) },
	}
	for _, step := range steps {
		step()
		assertTotalsConsistent(t, c)
	}
}

func TestCart_Refresh_UsesLivePrice(t *testing.T) {
	c := model.NewCart()
	c.AddItem(product("a", 100), 2, nil)
	c.AddItem(product("b", 10), 1, nil)

	c.Refresh(func(id string) (model.Product, bool) {
		if id == "a" {
			return product("a", 80), true
		}
		return model.Product{}, false
	})

	assert.True(t, decimal.NewFromInt(170).Equal(c.TotalPrice()))
}

func TestCart_SetOpen_IndependentOfItems(t *testing.T) {
	c := model.NewCart()
	assert.False(t, c.IsOpen())

	c.SetOpen(true)
	c.AddItem(product("a", 1), 1, nil)
	c.Clear()

	assert.True(t, c.IsOpen())
	assert.Empty(t, c.Items())
}

func TestCart_Items_ReturnsCopy(t *testing.T) {
	c := model.NewCart()
	c.AddItem(product("a", 100), 1, map[string]string{"Color": "Red"})

	items := c.Items()
	items[0].Quantity = 99
	items[0].SelectedVariants["Color"] = "Blue"

	again := c.Items()
	assert.Equal(t, 1, again[0].Quantity)
	assert.Equal(t, "Red", again[0].SelectedVariants["Color"])
}
