package model

import "time"

// メニューの商品。起動時にシードされ、読み取り専用で配信する。
type MenuItem struct {
	ID          string      `gorm:"type:varchar(32);primaryKey" json:"id"`
	Type        ProductType `gorm:"type:varchar(20);not null;index" json:"type"`
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Price       int64       `gorm:"not null" json:"price"`
	Image       string      `gorm:"type:varchar(255)" json:"image"`
	Description string      `gorm:"type:text" json:"description"`
	Sort        int         `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"-"`
}

// カテゴリ毎のトッピング／シーズニング候補。追加料金は無し。
type AddonOption struct {
	ID    int64       `gorm:"primaryKey;autoIncrement" json:"-"`
	Type  ProductType `gorm:"type:varchar(20);not null;index" json:"type"`
	Label string      `gorm:"type:varchar(100);not null" json:"label"`
	Sort  int         `gorm:"not null;default:0" json:"-"`
}

// カテゴリ毎のサイズ候補。surcharge は基本価格への上乗せ。
type SizeVariant struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"-"`
	Type      ProductType `gorm:"type:varchar(20);not null;index" json:"type"`
	Label     string      `gorm:"type:varchar(100);not null" json:"label"`
	Surcharge int64       `gorm:"not null;default:0" json:"price"`
	Sort      int         `gorm:"not null;default:0" json:"-"`
}
