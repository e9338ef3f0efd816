package model

// 商品カテゴリ
type Category struct {
	ID           string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	NameAm       string `gorm:"type:varchar(255)" json:"name_am,omitempty"`
	Icon         string `gorm:"type:varchar(32)" json:"icon"`
	ProductCount int    `gorm:"not null;default:0" json:"product_count"`
	ImageURL     string `gorm:"type:text" json:"image,omitempty"`
	Position     int    `gorm:"not null;default:0" json:"-"`
}
