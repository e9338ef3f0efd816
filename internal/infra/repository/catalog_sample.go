package repository

import (
	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

func etb(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func etbPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var (
	sellerAddis   = model.Seller{ID: "s1", Name: "Addis Electronics", Rating: 4.7, Verified: true}
	sellerMerkato = model.Seller{ID: "s2", Name: "Merkato Fashion House", Rating: 4.4, Verified: true}
	sellerHabesha = model.Seller{ID: "s3", Name: "Habesha Crafts", Rating: 4.9, Verified: false}
	sellerBuna    = model.Seller{ID: "s4", Name: "Buna Coffee Roasters", Rating: 4.8, Verified: true}
)

// SampleProducts はデモ用の商品データ（表示順）。
func SampleProducts() []model.Product {
	products := []model.Product{
		{
			ID: "p1", Name: "Samsung Galaxy A54 5G", Description: "6.4\" Super AMOLED, 128GB storage, 50MP camera.",
			Price: etb(32999), OriginalPrice: etbPtr(38999), Currency: "ETB",
			Images: []string{"/images/galaxy-a54.jpg"}, CategoryID: "electronics", Brand: "Samsung",
			Rating: 4.5, ReviewCount: 234, StockCount: 15,
			Variants: []model.ProductVariant{{Type: "Color", Options: []string{"Black", "Lime", "Violet"}}},
			Seller:   sellerAddis, Tags: []string{"phone", "5g"}, Featured: true, Deal: true, IsActive: true,
		},
		{
			ID: "p2", Name: "Traditional Habesha Kemis", NameAm: "የሀበሻ ቀሚስ", Description: "Handwoven cotton dress with tibeb border.",
			Price: etb(4500), OriginalPrice: etbPtr(5200), Currency: "ETB",
			Images: []string{"/images/kemis-1.jpg", "/images/kemis-2.jpg"}, CategoryID: "fashion",
			Rating: 4.8, ReviewCount: 89, StockCount: 8,
			Variants: []model.ProductVariant{{Type: "Size", Options: []string{"S", "M", "L", "XL"}}},
			Seller:   sellerMerkato, Tags: []string{"traditional", "women"}, Featured: true, IsActive: true,
		},
		{
			ID: "p3", Name: "Yirgacheffe Coffee Beans 1kg", NameAm: "ይርጋጨፌ ቡና", Description: "Single-origin washed Arabica, medium roast.",
			Price: etb(850), Currency: "ETB",
			Images: []string{"/images/yirgacheffe.jpg"}, CategoryID: "food",
			Rating: 4.9, ReviewCount: 512, StockCount: 120,
			Variants: []model.ProductVariant{{Type: "Grind", Options: []string{"Whole Bean", "Espresso", "Filter"}}},
			Seller:   sellerBuna, Tags: []string{"coffee"}, Featured: true, IsActive: true,
		},
		{
			ID: "p4", Name: "Jebena Clay Coffee Pot", NameAm: "ጀበና", Description: "Hand-made black clay jebena for coffee ceremony.",
			Price: etb(650), OriginalPrice: etbPtr(800), Currency: "ETB",
			Images: []string{"/images/jebena.jpg"}, CategoryID: "home",
			Rating: 4.6, ReviewCount: 77, StockCount: 30,
			Seller: sellerHabesha, Tags: []string{"coffee", "handmade"}, Deal: true, IsActive: true,
		},
		{
			ID: "p5", Name: "HP Laptop 15s Core i5", Description: "15.6\" FHD, 8GB RAM, 512GB SSD.",
			Price: etb(68500), Currency: "ETB",
			Images: []string{"/images/hp-15s.jpg"}, CategoryID: "electronics", Brand: "HP",
			Rating: 4.2, ReviewCount: 41, StockCount: 4,
			Seller: sellerAddis, Tags: []string{"laptop"}, IsActive: true,
		},
		{
			ID: "p6", Name: "Men's Leather Sandals", Description: "Genuine leather, made in Addis Ababa.",
			Price: etb(1200), OriginalPrice: etbPtr(1500), Currency: "ETB",
			Images: []string{"/images/sandals.jpg"}, CategoryID: "fashion",
			Rating: 3.9, ReviewCount: 23, StockCount: 0,
			Variants: []model.ProductVariant{{Type: "Size", Options: []string{"40", "41", "42", "43", "44"}}},
			Seller:   sellerMerkato, Deal: true, IsActive: true,
		},
		{
			ID: "p7", Name: "Mesob Woven Basket Table", NameAm: "መሶብ", Description: "Colourful woven basket table for injera.",
			Price: etb(2800), Currency: "ETB",
			Images: []string{"/images/mesob.jpg"}, CategoryID: "home",
			Rating: 4.7, ReviewCount: 56, StockCount: 6,
			Seller: sellerHabesha, Tags: []string{"handmade"}, Featured: true, IsActive: true,
		},
		{
			ID: "p8", Name: "Berbere Spice Mix 500g", NameAm: "በርበሬ", Description: "Traditional sun-dried chili blend.",
			Price: etb(320), Currency: "ETB",
			Images: []string{"/images/berbere.jpg"}, CategoryID: "food",
			Rating: 4.4, ReviewCount: 301, StockCount: 200,
			Seller: sellerBuna, Tags: []string{"spice"}, IsActive: true,
		},
	}

	for i := range products {
		products[i].Position = i + 1
	}
	return products
}

// SampleCategories は SampleProducts に対応するカテゴリ。
// ProductCount は商品データから数える。
func SampleCategories() []model.Category {
	cats := []model.Category{
		{ID: "electronics", Name: "Electronics", NameAm: "ኤሌክትሮኒክስ", Icon: "📱"},
		{ID: "fashion", Name: "Fashion", NameAm: "ፋሽን", Icon: "👗"},
		{ID: "home", Name: "Home & Living", NameAm: "ቤት", Icon: "🏠"},
		{ID: "food", Name: "Food & Coffee", NameAm: "ምግብ", Icon: "☕"},
	}

	counts := map[string]int{}
	for _, p := range SampleProducts() {
		counts[p.CategoryID]++
	}
	for i := range cats {
		cats[i].ProductCount = counts[cats[i].ID]
		cats[i].Position = i + 1
	}
	return cats
}
