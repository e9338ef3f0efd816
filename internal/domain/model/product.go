package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品のバリエーション軸（例: Size → S/M/L）
type ProductVariant struct {
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// 出品者
type Seller struct {
	ID       string  `gorm:"column:id;type:varchar(64)" json:"id"`
	Name     string  `gorm:"column:name;type:varchar(255)" json:"name"`
	Rating   float64 `gorm:"column:rating" json:"rating"`
	Verified bool    `gorm:"column:verified;not null;default:false" json:"verified"`
}

// カタログの商品。カートからは読み取り専用。
type Product struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	NameAm      string `gorm:"type:varchar(255)" json:"name_am,omitempty"`
	Description string `gorm:"type:text" json:"description"`

	Price decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	//値引き前の価格（任意）
	OriginalPrice *decimal.Decimal `gorm:"type:numeric(14,2)" json:"original_price,omitempty"`
	Currency      string           `gorm:"type:varchar(8);not null;default:'ETB'" json:"currency"`

	//先頭がメイン画像
	Images     []string `gorm:"serializer:json" json:"images"`
	CategoryID string   `gorm:"type:varchar(64);index" json:"category_id"`
	Brand      string   `gorm:"type:varchar(255)" json:"brand,omitempty"`
	Tags       []string `gorm:"serializer:json" json:"tags,omitempty"`

	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int     `gorm:"not null;default:0" json:"review_count"`
	StockCount  int     `gorm:"not null;default:0" json:"stock_count"`

	Variants []ProductVariant `gorm:"serializer:json" json:"variants,omitempty"`
	Seller   Seller           `gorm:"embedded;embeddedPrefix:seller_" json:"seller"`

	Featured bool `gorm:"column:is_featured;not null;default:false" json:"featured"`
	Deal     bool `gorm:"column:is_deal;not null;default:false" json:"deal"`
	//falseも保存されるようにdefaultは付けない
	IsActive bool `gorm:"not null" json:"-"`
	//カタログの表示順（小さいほど先）
	Position int `gorm:"not null;default:0;index" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// 在庫表示用（カートでは在庫を強制しない）
func (p Product) InStock() bool {
	return p.StockCount > 0
}

// そのバリエーション軸に option があるか
func (p Product) HasVariantOption(variantType, option string) bool {
	for _, v := range p.Variants {
		if v.Type != variantType {
			continue
		}
		for _, o := range v.Options {
			if o == option {
				return true
			}
		}
	}
	return false
}
